package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file at ~/.footprint/config.yaml for syntax and semantic correctness.

This includes:
- Output format and precision
- Report display unit and loading delay
- Logging level and format`,
		Example: `  # Validate current configuration
  footprint config validate

  # Validate and show detailed information
  footprint config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration details:")
	fmt.Fprintf(cmd.OutOrStdout(), "  Config file: %s\n", cfg.ConfigPath())
	fmt.Fprintf(cmd.OutOrStdout(), "  Data directory: %s\n", cfg.DataDir())
	fmt.Fprintf(cmd.OutOrStdout(), "  Output format: %s\n", cfg.Output.DefaultFormat)
	fmt.Fprintf(cmd.OutOrStdout(), "  Output precision: %d\n", cfg.Output.Precision)
	fmt.Fprintf(cmd.OutOrStdout(), "  Display unit: %s\n", cfg.Report.DisplayUnit)
	fmt.Fprintf(cmd.OutOrStdout(), "  Loading delay: %dms\n", cfg.Report.LoadingDelayMS)
	fmt.Fprintf(cmd.OutOrStdout(), "  Logging level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(cmd.OutOrStdout(), "  Log file: %s\n", cfg.Logging.File)
}
