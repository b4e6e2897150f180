package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/greenops"
)

var testNow = time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)

func mustActivity(t *testing.T, typ greenops.ActivityType, value float64) greenops.Activity {
	t.Helper()
	a, err := greenops.NewActivity(typ, value, testNow)
	require.NoError(t, err)
	return a
}

func titles(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestGenerateRecommendations(t *testing.T) {
	tests := []struct {
		name       string
		activities func(t *testing.T) []greenops.Activity
		want       []string
		impacts    []float64
	}{
		{
			name:       "no activities",
			activities: func(*testing.T) []greenops.Activity { return nil },
			want:       []string{"Track More Activities"},
			impacts:    []float64{1.5},
		},
		{
			name: "heavy driving only",
			activities: func(t *testing.T) []greenops.Activity {
				return []greenops.Activity{mustActivity(t, greenops.ActivityDriving, 40)}
			},
			want:    []string{"Reduce Car Usage", "Track More Activities"},
			impacts: []float64{0.8, 1.5},
		},
		{
			name: "threshold is exclusive",
			activities: func(t *testing.T) []greenops.Activity {
				return []greenops.Activity{
					mustActivity(t, greenops.ActivityDriving, 30),
					mustActivity(t, greenops.ActivityAIUsage, 3),
					mustActivity(t, greenops.ActivityElectricity, 10),
					mustActivity(t, greenops.ActivityFood, 0.5),
				}
			},
			want:    []string{"Track More Activities"},
			impacts: []float64{1.5},
		},
		{
			name: "quantities summed per type",
			activities: func(t *testing.T) []greenops.Activity {
				return []greenops.Activity{
					mustActivity(t, greenops.ActivityDriving, 20),
					mustActivity(t, greenops.ActivityDriving, 20),
					mustActivity(t, greenops.ActivityFood, 1),
				}
			},
			want:    []string{"Reduce Car Usage", "Reduce Meat Consumption"},
			impacts: []float64{0.8, 0.75},
		},
		{
			name: "every rule fires in rule order",
			activities: func(t *testing.T) []greenops.Activity {
				return []greenops.Activity{
					mustActivity(t, greenops.ActivityFood, 2),
					mustActivity(t, greenops.ActivityElectricity, 20),
					mustActivity(t, greenops.ActivityAIUsage, 5),
					mustActivity(t, greenops.ActivityDriving, 100),
				}
			},
			want: []string{
				"Reduce Car Usage",
				"Optimize AI Usage",
				"Reduce Energy Consumption",
				"Reduce Meat Consumption",
			},
			impacts: []float64{2.0, 0.1, 1.5, 1.5},
		},
		{
			name: "untracked types never trigger",
			activities: func(t *testing.T) []greenops.Activity {
				return []greenops.Activity{
					mustActivity(t, greenops.ActivityCommute, 500),
					mustActivity(t, greenops.ActivityPhone, 24),
				}
			},
			want:    []string{"Track More Activities"},
			impacts: []float64{1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := GenerateRecommendations(tt.activities(t))
			assert.Equal(t, tt.want, titles(recs))
			require.Len(t, recs, len(tt.impacts))
			for i, want := range tt.impacts {
				assert.InDelta(t, want, recs[i].ImpactKg, 1e-9, recs[i].Title)
				assert.NotEmpty(t, recs[i].Description)
			}
		})
	}
}

func TestGenerateRecommendations_Descriptions(t *testing.T) {
	recs := GenerateRecommendations([]greenops.Activity{mustActivity(t, greenops.ActivityDriving, 31)})
	require.Len(t, recs, 2)
	assert.Equal(t, "Consider carpooling, using public transport, or cycling for short distances.", recs[0].Description)
	assert.Equal(t, "Add more of your daily activities to get personalized recommendations.", recs[1].Description)
}

func TestPotentialReduction(t *testing.T) {
	assert.Zero(t, PotentialReduction(nil))
	assert.InDelta(t, 2.3, PotentialReduction([]Recommendation{{ImpactKg: 0.8}, {ImpactKg: 1.5}}), 1e-9)
}
