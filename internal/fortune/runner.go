package fortune

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kyokley/build-demo/internal/model"
)

// shortFlag asks the generator for a terse fortune. This mitigates but
// does not bound output length; long fortunes are handled by wrapping
// further down the pipeline.
const shortFlag = "-s"

// Runner executes the external fortune generator.
//
// The executable path is fixed at construction time and read-only
// afterwards, so a single Runner is safe for concurrent use by the
// HTTP handler.
type Runner struct {
	// path is the filesystem path of the fortune executable.
	path string
}

// NewRunner creates a Runner for the fortune executable at the given path.
// The path is not checked for existence here; a missing or non-executable
// binary surfaces as an error from Get, matching the reference behavior
// of failing per-request rather than at startup.
func NewRunner(path string) *Runner {
	return &Runner{path: path}
}

// Path returns the configured fortune executable path.
func (r *Runner) Path() string {
	return r.path
}

// Get runs the fortune generator once and returns its standard output
// with surrounding whitespace trimmed.
//
// It captures stdout and stderr separately so stderr can be included in
// error messages while stdout is returned on success. If the binary is
// missing or exits with a non-zero status, Get returns a model.CLIError
// with ExitFortuneError and no fallback text. Empty output is returned
// as-is — the reference performs no validation.
func (r *Runner) Get(ctx context.Context) (string, error) {
	// #nosec G204 — the path comes from configuration, not request input
	cmd := exec.CommandContext(ctx, r.path, shortFlag)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		message := fmt.Sprintf("fortune generator %s failed", r.path)
		if stderrStr := strings.TrimSpace(stderr.String()); stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", model.WrapCLIError(model.ExitFortuneError, message, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
