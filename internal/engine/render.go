package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rshade/footprint/internal/greenops"
)

const tabwriterPadding = 2

// barWidth is the widest comparison bar in the text report.
const barWidth = 30

// RenderReportAsTable writes the report as aligned plain text.
func RenderReportAsTable(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "DAILY CARBON FOOTPRINT: %s\n\n", r.Headline()); err != nil {
		return fmt.Errorf("writing headline: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "ACTIVITY\tQUANTITY\tEMISSIONS\n--------\t--------\t---------\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range r.Breakdown {
		if _, err := fmt.Fprintf(tw, "%s\t%s %s\t%s\n",
			row.Label,
			greenops.FormatFloat(row.Quantity, 1), row.Unit,
			greenops.FormatInUnit(row.Emissions, r.DisplayUnit, r.decimals()),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if len(r.Breakdown) == 0 {
		if _, err := fmt.Fprintf(tw, "(no activities)\t\t\n"); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if err := renderComparisons(w, r); err != nil {
		return fmt.Errorf("writing comparisons: %w", err)
	}

	if len(r.Recommendations) > 0 {
		if _, err := fmt.Fprintf(w, "\nRECOMMENDATIONS\n"); err != nil {
			return err
		}
		for i, rec := range r.Recommendations {
			if _, err := fmt.Fprintf(w, "%d. %s (save ~%s)\n   %s\n",
				i+1, rec.Title, greenops.FormatKg(rec.ImpactKg, r.decimals()), rec.Description); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\nINSIGHTS\n"); err != nil {
		return err
	}
	for _, line := range r.Insights {
		if _, err := fmt.Fprintf(w, "- %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func renderComparisons(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "\nCOMPARISON (kg CO2e per day)\n"); err != nil {
		return err
	}

	maxVal := 0.0
	for _, c := range r.Comparisons {
		maxVal = max(maxVal, c.ValueKg)
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	for _, c := range r.Comparisons {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
			c.Label, greenops.FormatFloat(c.ValueKg, 1), Bar(c.ValueKg, maxVal, barWidth)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Bar draws value as a run of block characters scaled against maxVal.
func Bar(value, maxVal float64, width int) string {
	if maxVal <= 0 || value <= 0 || width <= 0 {
		return ""
	}
	n := int(value / maxVal * float64(width))
	n = max(1, min(n, width))
	return strings.Repeat("█", n)
}

// RenderReportAsJSON writes the report as one indented JSON document.
func RenderReportAsJSON(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderActivitiesAsTable writes one line per activity, with a total footer.
// Emissions are shown with precision decimals; zero means DefaultPrecision.
func RenderActivitiesAsTable(w io.Writer, activities []greenops.Activity, precision int) error {
	if precision <= 0 {
		precision = DefaultPrecision
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "ID\tTYPE\tQUANTITY\tEMISSIONS\tRECORDED\n--\t----\t--------\t---------\t--------\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, a := range activities {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\t%s\n",
			a.ID,
			a.Type.Label(),
			greenops.FormatFloat(a.Value, 1), a.Unit,
			greenops.FormatKg(a.Emissions(), precision),
			a.Timestamp.Local().Format(time.DateTime),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "\t\t\t\t\nTOTAL\t%d activities\t\t%s\t\n",
		len(activities), greenops.FormatKg(greenops.CalculateTotal(activities), precision)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	return tw.Flush()
}

// ActivitiesJSONOutput is the `activity list --output json` document.
type ActivitiesJSONOutput struct {
	Activities []greenops.Activity `json:"activities"`
	TotalKg    float64             `json:"total_kg"`
}

// RenderActivitiesAsJSON writes the activity list and total as one document.
func RenderActivitiesAsJSON(w io.Writer, activities []greenops.Activity) error {
	if activities == nil {
		activities = []greenops.Activity{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(ActivitiesJSONOutput{
		Activities: activities,
		TotalKg:    greenops.CalculateTotal(activities),
	}); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderActivitiesAsNDJSON writes each activity as a separate JSON line.
func RenderActivitiesAsNDJSON(w io.Writer, activities []greenops.Activity) error {
	for _, a := range activities {
		data, marshalErr := json.Marshal(a)
		if marshalErr != nil {
			return fmt.Errorf("marshaling activity: %w", marshalErr)
		}
		if _, writeErr := fmt.Fprintf(w, "%s\n", data); writeErr != nil {
			return fmt.Errorf("writing NDJSON line: %w", writeErr)
		}
	}
	return nil
}
