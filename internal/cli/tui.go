package cli

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/tui"
)

// NewTUICmd creates the tui command, which runs the interactive calculator.
func NewTUICmd() *cobra.Command {
	var noDelay bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive calculator",
		Long: `Walks through entering today's activities, your email and city, and then
shows the report. On the report screen press n for a new calculation, x to
erase everything, or q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if tui.DetectOutputMode(false, false, false) != tui.OutputModeInteractive {
				return errors.New("the interactive calculator needs a terminal; use 'footprint activity add' and 'footprint report' instead")
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			cfg := config.GetGlobalConfig()
			opts := tui.Options{
				Unit:            cfg.Report.DisplayUnit,
				LoadingDelay:    time.Duration(cfg.Report.LoadingDelayMS) * time.Millisecond,
				HideEquivalency: !cfg.Report.ShowEquivalencies,
				Precision:       cfg.Output.Precision,
			}
			if noDelay {
				opts.LoadingDelay = 0
			}

			p := tea.NewProgram(tui.NewAppModel(cmd.Context(), st, opts),
				tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, runErr := p.Run(); runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
				return fmt.Errorf("failed to run interactive TUI: %w", runErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "skip the loading screen before the report")
	return cmd
}
