package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "empower",
		Short: "empower - power-assert enhancement playground",
		Long: `empower - power-assert enhancement playground.

Runs hand-instrumented assertions against an enhanced standard assertion
object and prints the rendered diagnostics.

Available commands:
  run    - Evaluate the built-in scenarios
  config - Show the resolved enhancement configuration

Configuration is read from --config, EMPOWER_* environment variables and
flags, in increasing order of precedence.

Examples:
  empower run                      # Eager mode
  empower run --modify-message     # Lazy mode, diagnostic on failure only
  empower config --save-context    # Show the resolved configuration`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().Bool("modify-message", false, "Render the diagnostic only when an assertion fails")
	rootCmd.PersistentFlags().Bool("save-context", false, "Attach the captured context to failures")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Enable debug logs")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Evaluate the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			cfg.Logger = newLogger(cmd)
			return runScenarios(cmd.OutOrStdout(), cfg)
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved enhancement configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg.Settings())
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetCount("verbose"); verbose > 0 {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

