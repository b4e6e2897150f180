package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/ingest"
	"github.com/rshade/footprint/internal/store"
)

// activityFlagName turns an activity type into its add flag, e.g.
// ai_usage -> ai-usage.
func activityFlagName(t greenops.ActivityType) string {
	return strings.ReplaceAll(string(t), "_", "-")
}

// NewActivityAddCmd creates the activity add command, with one quantity flag
// per activity type.
func NewActivityAddCmd() *cobra.Command {
	values := make(map[greenops.ActivityType]*float64)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record one or more activities",
		Long: `Records today's activities. Pass one flag per activity you want to record;
zero and omitted flags are skipped. At least one non-zero quantity is required.`,
		Example: `  # 40 km of driving and 0.3 kg of meat
  footprint activity add --driving 40 --food 0.3

  # Two hours of AI tool usage
  footprint activity add --ai-usage 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := make(map[greenops.ActivityType]float64, len(values))
			for t, v := range values {
				form[t] = *v
			}
			return runActivityAdd(cmd, form)
		},
	}

	for _, t := range greenops.AllActivityTypes() {
		v := new(float64)
		values[t] = v
		cmd.Flags().Float64Var(v, activityFlagName(t), 0,
			fmt.Sprintf("%s in %s", t.Label(), t.Unit()))
	}

	return cmd
}

func runActivityAdd(cmd *cobra.Command, form map[greenops.ActivityType]float64) error {
	activities, err := store.ActivitiesFromForm(form, time.Now())
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	if addErr := st.Add(cmd.Context(), activities...); addErr != nil {
		return fmt.Errorf("saving activities: %w", addErr)
	}

	precision := config.GetOutputPrecision()
	for _, a := range activities {
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s %s (%s) [%s]\n",
			a.Type.Label(), greenops.FormatFloat(a.Value, 1), a.Unit,
			greenops.FormatKg(a.Emissions(), precision), a.ID)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Total: %s across %d activities\n",
		greenops.FormatKg(st.Total(), precision), len(st.Activities()))
	return nil
}

// NewActivityListCmd creates the activity list command.
func NewActivityListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded activities",
		Example: `  footprint activity list
  footprint activity list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output, outputTable, outputJSON, outputNDJSON)
			if err != nil {
				return err
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			activities := st.Activities()

			switch format {
			case outputJSON:
				return engine.RenderActivitiesAsJSON(cmd.OutOrStdout(), activities)
			case outputNDJSON:
				return engine.RenderActivitiesAsNDJSON(cmd.OutOrStdout(), activities)
			default:
				if len(activities) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No activities recorded. Add some with 'footprint activity add'.")
					return nil
				}
				return engine.RenderActivitiesAsTable(cmd.OutOrStdout(), activities, config.GetOutputPrecision())
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or ndjson")
	return cmd
}

// NewActivityRemoveCmd creates the activity remove command.
func NewActivityRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove one activity by ID",
		Example: `  footprint activity remove 01JAB3XG5M6Y1Q2W3E4R5T6Y7U`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			removed, err := st.Remove(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("removing activity: %w", err)
			}
			if !removed {
				return fmt.Errorf("no activity with ID %q", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed activity %s\n", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", greenops.FormatKg(st.Total(), config.GetOutputPrecision()))
			return nil
		},
	}
}

// NewActivityImportCmd creates the activity import command.
func NewActivityImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import activities from a YAML or JSON file",
		Long: `Imports activities from a YAML or JSON document of the form:

  activities:
    - type: driving
      value: 40
    - type: food
      value: 0.3

The whole file is rejected if any entry has an unknown type or a negative value.`,
		Example: `  footprint activity import today.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := ingest.ImportActivities(cmd.Context(), args[0], time.Now())
			if err != nil {
				return err
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			if addErr := st.Add(cmd.Context(), activities...); addErr != nil {
				return fmt.Errorf("saving activities: %w", addErr)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d activities from %s\n", len(activities), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", greenops.FormatKg(st.Total(), config.GetOutputPrecision()))
			return nil
		},
	}
}
