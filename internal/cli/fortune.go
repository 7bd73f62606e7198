// Package cli — fortune.go implements the "fortune-cat fortune" command.
//
// The fortune command runs the generator once and prints the wrapped
// result to stdout, exercising the same fortune and textwrap path the
// HTTP handler uses. It is useful for checking a deployment's fortune
// binary and wrap settings without starting the server.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kyokley/build-demo/internal/fortune"
	"github.com/kyokley/build-demo/internal/textwrap"
)

// fortuneFlags holds the flag values for the fortune command.
type fortuneFlags struct {
	// configPath is the optional path to a YAML or JSONC config file.
	configPath string

	// fortunePath overrides the generator executable path.
	fortunePath string

	// width overrides the wrap width. Zero means "use config".
	width int
}

// NewFortuneCommand creates the "fortune" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewFortuneCommand() *cobra.Command {
	flags := &fortuneFlags{}

	cmd := &cobra.Command{
		Use:   "fortune",
		Short: "Print one wrapped fortune and exit",
		Long: `Run the external fortune generator once, reflow the output to the
configured wrap width, and print it.

Examples:
  fortune-cat fortune
  fortune-cat fortune --fortune-path /opt/fortune/bin/fortune
  fortune-cat fortune --width 40 --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runFortune(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "",
		"Path to config file (.yaml, .yml, .json, or .jsonc)")
	cmd.Flags().StringVar(&flags.fortunePath, "fortune-path", "",
		"Path to the fortune executable (overrides config)")
	cmd.Flags().IntVar(&flags.width, "width", 0,
		"Wrap width (overrides config)")

	return cmd
}

// runFortune is the main logic function for the fortune command.
func runFortune(cmd *cobra.Command, flags *fortuneFlags) error {
	cfg, err := resolveConfig(flags.configPath, "")
	if err != nil {
		return err
	}
	if flags.fortunePath != "" {
		cfg.FortunePath = flags.fortunePath
	}
	if flags.width > 0 {
		cfg.WrapWidth = flags.width
	}

	runner := fortune.NewRunner(cfg.FortunePath)
	text, err := runner.Get(cmd.Context())
	if err != nil {
		// Runner errors are already CLIErrors with ExitFortuneError.
		return err
	}

	wrapped := textwrap.Wrap(text, cfg.WrapWidth)
	printFortuneResult(cmd, wrapped)
	return nil
}

// printFortuneResult outputs the wrapped fortune in text or JSON format,
// depending on the global --json flag. Output goes through the cobra
// command's writer so tests can capture it.
func printFortuneResult(cmd *cobra.Command, lines []string) {
	if IsJSONOutput() {
		type resultJSON struct {
			Fortune string   `json:"fortune"`
			Lines   []string `json:"lines"`
		}
		result := resultJSON{
			Fortune: strings.Join(lines, "\n"),
			// Empty slice instead of nil so JSON shows [] rather than null.
			Lines: append([]string{}, lines...),
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return
	}

	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
