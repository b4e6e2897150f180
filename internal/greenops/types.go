// Package greenops computes personal carbon emissions from self-reported
// daily activities.
//
// Every activity type carries a fixed emission factor (kg CO2e per unit of
// quantity) and a display unit. Totals are the sum of quantity times factor
// across all activities. The package also converts totals into relatable
// equivalencies like "miles driven" or "smartphones charged" using
// EPA-published conversion factors.
package greenops

import (
	"fmt"
	"time"
)

// ActivityType identifies one of the fixed categories a user can report.
type ActivityType string

const (
	// ActivityDriving is distance driven by car, in km.
	ActivityDriving ActivityType = "driving"

	// ActivityAIUsage is time spent using AI tools, in hours.
	ActivityAIUsage ActivityType = "ai_usage"

	// ActivityCommute is distance travelled on public transport, in km.
	ActivityCommute ActivityType = "commute"

	// ActivityPhone is time spent on a phone or other device, in hours.
	ActivityPhone ActivityType = "phone"

	// ActivityElectricity is household electricity consumption, in kWh.
	ActivityElectricity ActivityType = "electricity"

	// ActivityFood is meat consumption, in kg.
	ActivityFood ActivityType = "food"
)

// String returns the wire name of the activity type.
func (t ActivityType) String() string {
	return string(t)
}

// Activity is one user-reported quantity of a single activity type.
//
// Build values with NewActivity so the type and quantity invariants hold.
type Activity struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Value     float64      `json:"value"`
	Unit      string       `json:"unit"`
	Timestamp time.Time    `json:"timestamp"`
}

// Emissions returns this activity's contribution in kg CO2e.
func (a Activity) Emissions() float64 {
	return EmissionOf(a.Type, a.Value)
}

// TypeEmission aggregates all activities of one type.
type TypeEmission struct {
	Type      ActivityType `json:"type"`
	Label     string       `json:"label"`
	Quantity  float64      `json:"quantity"`
	Unit      string       `json:"unit"`
	Emissions float64      `json:"emissions_kg"`
}

// ImpactLevel buckets a daily total into a coarse rating.
type ImpactLevel int

const (
	// ImpactLow is a total below ImpactMediumThresholdKg.
	ImpactLow ImpactLevel = iota

	// ImpactMedium is a total below ImpactHighThresholdKg.
	ImpactMedium

	// ImpactHigh is everything else.
	ImpactHigh
)

// String returns a human-readable representation of the ImpactLevel.
func (l ImpactLevel) String() string {
	switch l {
	case ImpactLow:
		return "Low Impact"
	case ImpactMedium:
		return "Medium Impact"
	case ImpactHigh:
		return "High Impact"
	default:
		return fmt.Sprintf("ImpactLevel(%d)", l)
	}
}

// MarshalText renders the level as its display string.
func (l ImpactLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput represents carbon emission data for equivalency calculation.
type CarbonInput struct {
	// Value is the numeric carbon emission amount.
	Value float64 `json:"value"`

	// Unit is the measurement unit (g, kg, t, gCO2e, kgCO2e, tCO2e, lb, lbCO2e).
	Unit string `json:"unit"`
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input value in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	// Results contains calculated equivalencies in priority order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the full prose format for CLI/TUI output.
	// Example: "Equivalent to driving ~781 miles or charging ~18,248 smartphones"
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated format for constrained outputs.
	// Example: "(≈ 781 mi, 18,248 phones)"
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}
