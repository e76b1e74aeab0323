// Package main provides the CLI entrypoint for dashbrand.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/dashbrand/internal/branding"
	"github.com/jmylchreest/dashbrand/internal/config"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		kittifyDir string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dashbrand",
	Short: "Custom branding for the Spec Kitty dashboard",
	Long: `dashbrand applies project branding to the Spec Kitty dashboard.

Branding is read from .kittify/branding.json (or branding.yaml/.toml) in the
nearest project directory. Any field left out keeps the Spec Kitty default.
Files placed in .kittify/static/ replace the bundled static assets.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/dashbrand/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.kittifyDir, "kittify-dir", "k", "",
		"Path to the .kittify directory (default: search upwards from the working directory)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// kittifyDir resolves the .kittify directory from the flag, the config file
// and finally the working directory. Returns "" if none is found.
func kittifyDir() string {
	if globalOpts.kittifyDir != "" {
		return globalOpts.kittifyDir
	}
	if cfg != nil && cfg.Branding.KittifyDir != "" {
		return cfg.Branding.KittifyDir
	}
	return branding.FindKittifyDir("")
}
