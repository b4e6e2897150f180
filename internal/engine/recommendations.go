package engine

import (
	"github.com/rshade/footprint/internal/greenops"
)

// Recommendation thresholds, on the summed quantity of one activity type.
const (
	drivingThresholdKm      = 30.0
	aiUsageThresholdHours   = 3.0
	electricityThresholdKWh = 10.0
	foodThresholdKg         = 0.5
)

// Assumed reduction share for each rule.
const (
	drivingReductionShare     = 0.1
	aiUsageReductionShare     = 0.2
	electricityReductionShare = 0.15
	foodReductionShare        = 0.3
)

// minRecommendations is the count below which the tracking tip is appended.
const minRecommendations = 2

// trackMoreImpactKg is the fixed impact of the tracking tip.
const trackMoreImpactKg = 1.5

// Recommendation is one reduction tip with its estimated daily saving.
type Recommendation struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImpactKg    float64 `json:"impact_kg"`
}

type recommendationRule struct {
	typ         greenops.ActivityType
	threshold   float64
	share       float64
	title       string
	description string
}

// Evaluated in this order; output order follows it.
//
//nolint:gochecknoglobals // Immutable rule table.
var recommendationRules = []recommendationRule{
	{
		typ:         greenops.ActivityDriving,
		threshold:   drivingThresholdKm,
		share:       drivingReductionShare,
		title:       "Reduce Car Usage",
		description: "Consider carpooling, using public transport, or cycling for short distances.",
	},
	{
		typ:         greenops.ActivityAIUsage,
		threshold:   aiUsageThresholdHours,
		share:       aiUsageReductionShare,
		title:       "Optimize AI Usage",
		description: "Batch your AI tasks and be more specific with prompts to reduce processing time.",
	},
	{
		typ:         greenops.ActivityElectricity,
		threshold:   electricityThresholdKWh,
		share:       electricityReductionShare,
		title:       "Reduce Energy Consumption",
		description: "Turn off lights and unplug devices when not in use. Consider energy-efficient appliances.",
	},
	{
		typ:         greenops.ActivityFood,
		threshold:   foodThresholdKg,
		share:       foodReductionShare,
		title:       "Reduce Meat Consumption",
		description: "Try incorporating more plant-based meals into your diet.",
	},
}

// GenerateRecommendations returns reduction tips for activities.
//
// Quantities are summed per type and each rule fires when its type's total is
// strictly above the threshold. When fewer than two rules fire a generic
// "Track More Activities" tip is appended.
func GenerateRecommendations(activities []greenops.Activity) []Recommendation {
	quantities := greenops.QuantitiesByType(activities)

	recs := make([]Recommendation, 0, len(recommendationRules)+1)
	for _, r := range recommendationRules {
		q := quantities[r.typ]
		if q <= r.threshold {
			continue
		}
		recs = append(recs, Recommendation{
			Title:       r.title,
			Description: r.description,
			ImpactKg:    q * r.share * r.typ.Factor(),
		})
	}

	if len(recs) < minRecommendations {
		recs = append(recs, Recommendation{
			Title:       "Track More Activities",
			Description: "Add more of your daily activities to get personalized recommendations.",
			ImpactKg:    trackMoreImpactKg,
		})
	}

	return recs
}

// PotentialReduction sums the impact of recs.
func PotentialReduction(recs []Recommendation) float64 {
	var sum float64
	for _, r := range recs {
		sum += r.ImpactKg
	}
	return sum
}
