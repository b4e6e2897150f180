package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/greenops"
)

const (
	minBarWidth       = 10
	maxBarWidth       = 40
	barLabelWidth     = 24
	barValueWidth     = 8
	reportSideMargins = 8
)

// RenderReport draws a report with lipgloss styling. It is used by the
// report screen and by `footprint report` on a styled terminal.
func RenderReport(r engine.Report, width int) string {
	var b strings.Builder

	prec := r.Precision
	if prec <= 0 {
		prec = engine.DefaultPrecision
	}

	b.WriteString("\n" + HeaderStyle.Render("Your Daily Carbon Footprint") + "\n\n")

	total := ValueStyle.Render(greenops.FormatInUnit(r.TotalKg, r.DisplayUnit, prec)) +
		LabelStyle.Render(" CO2e per day  ") +
		ImpactStyle(r.Impact).Render(r.Impact.String())
	b.WriteString(BoxStyle.Render(total) + "\n\n")

	b.WriteString(HeaderStyle.Render("How You Compare") + "\n")
	b.WriteString(renderComparisonChart(r.Comparisons, width) + "\n")
	b.WriteString(verdictStyle(r).Render(r.Verdict) + "\n\n")

	b.WriteString(HeaderStyle.Render("Your Activities") + "\n")
	if len(r.Breakdown) == 0 {
		b.WriteString(SubtleStyle.Render("  No activities recorded.") + "\n")
	}
	for _, row := range r.Breakdown {
		fmt.Fprintf(&b, "  %s %s %s\n",
			LabelStyle.Render(fmt.Sprintf("%-*s", barLabelWidth, row.Label)),
			ValueStyle.Render(fmt.Sprintf("%s %s", greenops.FormatFloat(row.Quantity, 1), row.Unit)),
			SubtleStyle.Render("→ "+greenops.FormatInUnit(row.Emissions, r.DisplayUnit, prec)),
		)
	}
	b.WriteString("\n")

	if len(r.Recommendations) > 0 {
		b.WriteString(HeaderStyle.Render("Recommendations") + "\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "  %s %s\n    %s\n",
				ValueStyle.Render(rec.Title),
				OKStyle.Render("save ~"+greenops.FormatKg(rec.ImpactKg, prec)),
				LabelStyle.Render(rec.Description),
			)
		}
		b.WriteString("\n")
	}

	b.WriteString(HeaderStyle.Render("Insights") + "\n")
	for _, line := range r.Insights {
		b.WriteString("  • " + LabelStyle.Render(line) + "\n")
	}

	b.WriteString("\n" + SubtleStyle.Render("n new calculation • x reset everything • q quit") + "\n")
	return b.String()
}

func verdictStyle(r engine.Report) lipgloss.Style {
	if r.BelowAverage {
		return OKStyle
	}
	return WarningStyle
}

// renderComparisonChart draws one horizontal bar per comparison, scaled to
// the largest value. The user's bar is highlighted.
func renderComparisonChart(bars []engine.ComparisonBar, width int) string {
	barWidth := width - barLabelWidth - barValueWidth - reportSideMargins
	barWidth = max(minBarWidth, min(barWidth, maxBarWidth))

	maxVal := 0.0
	for _, c := range bars {
		maxVal = max(maxVal, c.ValueKg)
	}

	var b strings.Builder
	for _, c := range bars {
		style := BorderStyle
		if c.Kind == engine.ComparisonUser {
			style = InfoStyle
		}
		fmt.Fprintf(&b, "  %s %s %s\n",
			LabelStyle.Render(fmt.Sprintf("%-*s", barLabelWidth, c.Label)),
			ValueStyle.Render(fmt.Sprintf("%*s", barValueWidth-2, greenops.FormatFloat(c.ValueKg, 1))),
			style.Render(engine.Bar(c.ValueKg, maxVal, barWidth)),
		)
	}
	return b.String()
}
