package greenops

import (
	"math"
	"strings"
)

// carbonUnit is a mass unit totals can be reported in.
type carbonUnit struct {
	symbol string
	toKg   float64
}

// carbonUnits lists the accepted units. Input may add a "CO2e" suffix and
// any letter case.
//
//nolint:gochecknoglobals // Immutable lookup table.
var carbonUnits = []carbonUnit{
	{symbol: "g", toKg: GramsToKg},
	{symbol: "kg", toKg: KgToKg},
	{symbol: "t", toKg: TonsToKg},
	{symbol: "lb", toKg: PoundsToKg},
}

func lookupUnit(unit string) (carbonUnit, bool) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(unit)), "co2e")
	for _, u := range carbonUnits {
		if u.symbol == name {
			return u, true
		}
	}
	return carbonUnit{}, false
}

func checkCarbonValue(v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ErrCalculationOverflow
	}
	if v < 0 {
		return ErrNegativeValue
	}
	return nil
}

// NormalizeToKg converts a carbon quantity from unit to kilograms.
// Returns ErrNegativeValue for value < 0, ErrInvalidUnit for an unknown unit
// and ErrCalculationOverflow for Inf/NaN input or an overflowing product.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if err := checkCarbonValue(value); err != nil {
		return 0, err
	}
	u, ok := lookupUnit(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	kg := value * u.toKg
	if math.IsInf(kg, 0) {
		return 0, ErrCalculationOverflow
	}
	return kg, nil
}

// ConvertFromKg converts kilograms into unit, the inverse of NormalizeToKg.
func ConvertFromKg(kg float64, unit string) (float64, error) {
	if err := checkCarbonValue(kg); err != nil {
		return 0, err
	}
	u, ok := lookupUnit(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return kg / u.toKg, nil
}

// UnitSymbol returns the display symbol for unit, e.g. "t" for "tCO2e".
func UnitSymbol(unit string) (string, bool) {
	u, ok := lookupUnit(unit)
	return u.symbol, ok
}

// IsRecognizedUnit reports whether unit is a supported carbon unit.
func IsRecognizedUnit(unit string) bool {
	_, ok := lookupUnit(unit)
	return ok
}
