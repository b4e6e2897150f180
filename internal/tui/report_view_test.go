package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/store"
)

func TestRenderReport(t *testing.T) {
	driving, err := greenops.NewActivity(greenops.ActivityDriving, 100, testNow)
	require.NoError(t, err)

	r := engine.BuildReport([]greenops.Activity{driving},
		&store.Profile{Email: "a@b.c", City: "London"},
		engine.ReportOptions{Now: testNow})

	out := RenderReport(r, 100)

	assert.Contains(t, out, "20.00 kg")
	assert.Contains(t, out, "High Impact")
	assert.Contains(t, out, "London Average")
	assert.Contains(t, out, "United Kingdom Average")
	assert.Contains(t, out, "Car Driving")
	assert.Contains(t, out, "Reduce Car Usage")
	assert.Contains(t, out, "above the average person's footprint in London")
	assert.Contains(t, out, "█")
}

func TestRenderReport_Empty(t *testing.T) {
	r := engine.BuildReport(nil, nil, engine.ReportOptions{Now: testNow})

	out := RenderReport(r, 0)

	assert.Contains(t, out, "No activities recorded.")
	assert.NotContains(t, out, "Recommendations")
}

func TestRenderComparisonChart_ScalesToLargest(t *testing.T) {
	bars := []engine.ComparisonBar{
		{Kind: engine.ComparisonUser, Label: "Your Footprint", ValueKg: 20},
		{Kind: engine.ComparisonGlobal, Label: "Global Average", ValueKg: 10},
	}

	lines := strings.Split(strings.TrimRight(renderComparisonChart(bars, 200), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, maxBarWidth, strings.Count(lines[0], "█"))
	assert.Equal(t, maxBarWidth/2, strings.Count(lines[1], "█"))
}
