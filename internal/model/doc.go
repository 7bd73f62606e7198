// Package model defines the shared error and exit-code types for the
// fortune-cat service.
//
// This package contains pure declarations with no external dependencies.
// It exists so that the CLI layer, the fortune runner, and the HTTP server
// can agree on how failures are classified without importing each other.
//
// The central types are ExitCode, which enumerates process exit codes per
// failure class, and CLIError, a custom error type that carries an exit
// code for proper OS process exit handling.
package model
