package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/store"
	"github.com/rshade/footprint/internal/tui"
)

const defaultTermWidth = 80

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	var (
		output string
		unit   string
		share  bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show your carbon footprint report",
		Long: `Shows the total of all recorded activities, its impact rating, a comparison
with city, country and global averages, and recommendations.`,
		Example: `  footprint report
  footprint report --unit g
  footprint report --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, output, unit, share)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")
	cmd.Flags().StringVar(&unit, "unit", "", "display unit: g, kg, t or lb (default from config)")
	cmd.Flags().BoolVar(&share, "share", false, "print a one-line summary to share")

	return cmd
}

func runReport(cmd *cobra.Command, output, unit string, share bool) error {
	format, err := resolveOutputFormat(output, outputTable, outputJSON)
	if err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	if unit == "" {
		unit = cfg.Report.DisplayUnit
	}
	if !greenops.IsRecognizedUnit(unit) {
		return fmt.Errorf("%w: %q (use g, kg, t or lb)", greenops.ErrInvalidUnit, unit)
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}

	var profile *store.Profile
	if p, ok := st.Profile(); ok {
		profile = &p
	}

	r := engine.BuildReport(st.Activities(), profile, engine.ReportOptions{
		Now:             time.Now(),
		Unit:            unit,
		HideEquivalency: !cfg.Report.ShowEquivalencies,
		Precision:       cfg.Output.Precision,
	})

	logger.Debug().Ctx(cmd.Context()).
		Int("activities", r.ActivityCount).
		Float64("total_kg", r.TotalKg).
		Msg("report built")

	if share {
		fmt.Fprintln(cmd.OutOrStdout(), r.ShareText())
		return nil
	}

	if format == outputJSON {
		return engine.RenderReportAsJSON(cmd.OutOrStdout(), r)
	}

	// Styling is only applied when writing straight to a capable terminal.
	if f, ok := cmd.OutOrStdout().(*os.File); ok && f == os.Stdout &&
		tui.DetectOutputMode(false, false, false) != tui.OutputModePlain {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(r, tui.TerminalWidth(defaultTermWidth)))
		return nil
	}
	return engine.RenderReportAsTable(cmd.OutOrStdout(), r)
}
