package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the footprint CLI.
// It loads configuration, wires up logging and tracing, and registers the
// activity, profile, report, cities, reset, tui and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Personal carbon footprint calculator",
		Long: `footprint estimates your daily carbon footprint from self-reported activities
(driving, AI tool usage, public transport, device usage, electricity and meat
consumption) and compares it with city, country and global averages.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
				cfg.Storage.Dir = dataDir
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("data-dir", "", "directory holding saved activities and profile (overrides config)")
	cmd.PersistentFlags().String("config", "", "path to a config file (default ~/.footprint/config.yaml)")

	cmd.AddCommand(
		newActivityCmd(), newProfileCmd(), NewReportCmd(), newCitiesCmd(),
		NewResetCmd(), NewTUICmd(), newConfigCmd(),
	)

	return cmd
}

// loadConfig reads --config when given, otherwise the default config file.
// A --config file that does not exist yet yields the defaults, so that
// `config init --config <path>` can create it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.New(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := config.New()
		cfg.SetConfigPath(path)
		return cfg, nil
	}
	return config.Load(path)
}

const rootCmdExample = `  # Record today's driving and meat consumption
  footprint activity add --driving 40 --food 0.3

  # Set your email and city for local comparisons
  footprint profile set --email you@example.com --city Paris

  # Show your report
  footprint report

  # Walk through the interactive calculator
  footprint tui

  # Find a city name
  footprint cities suggest par

  # Erase everything
  footprint reset --force`

// newActivityCmd creates the activity command group.
func newActivityCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "activity", Short: "Record and manage activities"}
	cmd.AddCommand(
		NewActivityAddCmd(), NewActivityListCmd(),
		NewActivityRemoveCmd(), NewActivityImportCmd(),
	)
	return cmd
}

// newProfileCmd creates the profile command group.
func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "profile", Short: "Manage your email, city and country"}
	cmd.AddCommand(NewProfileSetCmd(), NewProfileShowCmd())
	return cmd
}

// newCitiesCmd creates the cities command group.
func newCitiesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cities", Short: "Browse the city and country reference data"}
	cmd.AddCommand(NewCitiesSuggestCmd(), NewCitiesShowCmd(), NewCitiesListCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
