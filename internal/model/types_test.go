package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLIError_Error verifies that the error message includes the
// underlying error when present and omits it otherwise.
func TestCLIError_Error(t *testing.T) {
	bare := NewCLIError(ExitFortuneError, "fortune generator failed")
	assert.Equal(t, "fortune generator failed", bare.Error())

	wrapped := WrapCLIError(ExitFortuneError, "fortune generator failed", errors.New("exit status 1"))
	assert.Equal(t, "fortune generator failed: exit status 1", wrapped.Error())
}

// TestCLIError_Unwrap verifies that errors.Is and errors.As can see
// through the CLIError wrapper to the underlying error.
func TestCLIError_Unwrap(t *testing.T) {
	underlying := errors.New("no such file or directory")
	wrapped := WrapCLIError(ExitFortuneError, "fortune generator missing", underlying)

	assert.True(t, errors.Is(wrapped, underlying))

	// A CLIError wrapped further (e.g. with %w) must still be extractable.
	outer := fmt.Errorf("request failed: %w", wrapped)
	var cliErr *CLIError
	require.True(t, errors.As(outer, &cliErr))
	assert.Equal(t, ExitFortuneError, cliErr.Code)
}

// TestExitCodes verifies the documented exit code values. These values
// are part of the CLI contract and must not drift.
func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, int(ExitSuccess))
	assert.Equal(t, 1, int(ExitGeneralError))
	assert.Equal(t, 2, int(ExitConfigError))
	assert.Equal(t, 3, int(ExitFortuneError))
	assert.Equal(t, 4, int(ExitServerError))
}
