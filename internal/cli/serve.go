// Package cli — serve.go implements the "fortune-cat serve" command.
//
// The serve command resolves configuration (defaults, optional config
// file, environment overrides, flag overrides — in that order), starts
// the HTTP gateway, and blocks until SIGINT or SIGTERM triggers a
// graceful shutdown.
package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kyokley/build-demo/internal/config"
	"github.com/kyokley/build-demo/internal/model"
	"github.com/kyokley/build-demo/internal/server"
)

// serveFlags holds the flag values for the serve command.
// These are bound to cobra flags in NewServeCommand.
type serveFlags struct {
	// configPath is the optional path to a YAML or JSONC config file.
	// When empty, built-in defaults plus environment overrides are used.
	configPath string

	// listenAddr overrides the listen address from config/defaults.
	listenAddr string
}

// NewServeCommand creates the "serve" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewServeCommand() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the fortune-cat HTTP gateway",
		Long: `Start the HTTP server and serve cat images with fortunes.

Configuration precedence, lowest to highest:
  built-in defaults < config file < environment < flags

Environment variables:
  FORTUNE_PATH     path to the fortune executable
  CATAAS_BASE_URL  upstream image service base URL

Examples:
  fortune-cat serve
  fortune-cat serve --config fortune-cat.yaml
  fortune-cat serve --listen 127.0.0.1:9000 --verbose`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "",
		"Path to config file (.yaml, .yml, .json, or .jsonc)")
	cmd.Flags().StringVar(&flags.listenAddr, "listen", "",
		"Listen address (overrides config)")

	return cmd
}

// runServe is the main logic function for the serve command.
func runServe(flags *serveFlags) error {
	cfg, err := resolveConfig(flags.configPath, flags.listenAddr)
	if err != nil {
		return err
	}

	log := newLogger()
	srv := server.New(cfg, log)

	// Serve until interrupted. NotifyContext cancels the context on
	// SIGINT/SIGTERM, which makes Run drain in-flight requests and
	// return.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return model.WrapCLIError(model.ExitServerError, "server failed", err)
	}
	return nil
}

// resolveConfig produces the final immutable configuration for this
// process: defaults, then the optional config file, then environment
// variables, then flag overrides. Validation runs on the final result.
func resolveConfig(configPath, listenAddr string) (*config.Config, error) {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitConfigError, "failed to load config", err)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	cfg.ApplyEnv()

	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, "invalid configuration", err)
	}
	return cfg, nil
}
