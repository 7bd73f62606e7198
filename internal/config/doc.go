// Package config handles configuration loading and validation for the
// fortune-cat service.
//
// Configuration can come from three sources, applied in order of
// increasing precedence:
//
//  1. Built-in defaults (Default)
//  2. An optional config file — YAML or JSONC, chosen by file extension
//  3. Environment variable overrides (ApplyEnv)
//
// JSONC (JSON with Comments) is supported via github.com/tidwall/jsonc,
// so config files can carry explanatory comments the same way
// devcontainer.json files commonly do.
//
// Resolution happens once at process startup. The resulting Config value
// is treated as immutable and passed explicitly into the server and
// runner constructors, so tests can substitute a stub fortune executable
// path or a local upstream double without touching process-wide state.
package config
