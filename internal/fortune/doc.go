// Package fortune invokes the external fortune generator for the
// fortune-cat service.
//
// The generator is executed via os/exec rather than by linking a fortune
// database reader, because the reference deployment ships the standard
// fortune binary and its datfiles as an opaque unit. The Runner passes
// the -s flag to request a short fortune, captures standard output, and
// treats any non-zero exit as a hard failure with no fallback text.
package fortune
