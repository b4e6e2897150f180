package greenops

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// Calculate converts a CarbonInput to kilograms and computes EPA-based
// equivalencies expressed as miles driven and smartphones charged.
//
// If normalization fails, Calculate returns an empty output and the
// normalization error. Inputs below MinEquivalencyThresholdKg produce an empty
// output with InputKg set and no error.
//
// Example:
//
//	output, err := Calculate(CarbonInput{Value: 150.0, Unit: "kg"})
//	// output.DisplayText == "Equivalent to driving ~781 miles or charging ~18,248 smartphones"
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor

	if math.IsInf(miles, 0) || math.IsNaN(miles) ||
		math.IsInf(phones, 0) || math.IsNaN(phones) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}

	milesFormatted := formatEquivalencyValue(miles)
	phonesFormatted := formatEquivalencyValue(phones)

	results := []EquivalencyResult{
		{
			Type:           EquivalencyMilesDriven,
			Value:          miles,
			FormattedValue: milesFormatted,
			Label:          "miles driven",
		},
		{
			Type:           EquivalencySmartphonesCharged,
			Value:          phones,
			FormattedValue: phonesFormatted,
			Label:          "smartphones charged",
		},
	}

	return EquivalencyOutput{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			milesFormatted, phonesFormatted),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", milesFormatted, phonesFormatted),
		IsEmpty:     false,
	}, nil
}

// CalculateForActivities computes equivalencies for the total emissions of
// activities. Failures are logged and reported as an empty output so report
// rendering never aborts on a cosmetic section.
func CalculateForActivities(activities []Activity) EquivalencyOutput {
	total := CalculateTotal(activities)
	output, err := Calculate(CarbonInput{Value: total, Unit: "kg"})
	if err != nil {
		log.Warn().
			Str("component", "greenops").
			Err(err).
			Float64("total_kg", total).
			Msg("equivalency calculation failed")
		return EquivalencyOutput{IsEmpty: true}
	}
	return output
}

// formatEquivalencyValue uses large-number scaling at or above
// LargeNumberThreshold, otherwise a rounded comma-separated integer.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
