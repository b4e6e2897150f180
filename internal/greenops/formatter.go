package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the given precision and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}

	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	intPart, fracPart, found := strings.Cut(formatted, ".")
	if !found {
		return formatted
	}

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}

	grouped := FormatNumber(n)
	// "-0.50" parses to 0 and loses its sign.
	if n == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-" + grouped
	}
	return grouped + "." + fracPart
}

// FormatKg renders a kilogram value as "1,234.57 kg CO2e".
func FormatKg(kg float64, precision int) string {
	return FormatFloat(kg, precision) + " kg CO2e"
}

// FormatInUnit renders kg converted into unit, e.g. "2.50 t CO2e".
// Unknown units fall back to kilograms.
func FormatInUnit(kg float64, unit string, precision int) string {
	converted, err := ConvertFromKg(kg, unit)
	if err != nil {
		return FormatKg(kg, precision)
	}
	symbol, _ := UnitSymbol(unit)
	return fmt.Sprintf("%s %s CO2e", FormatFloat(converted, precision), symbol)
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Values below LargeNumberThreshold use comma-separated format, values at or
// above it use "~X.X million", and values at or above BillionThreshold use
// "~X.X billion".
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}

	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}

	return FormatNumber(int64(math.Round(n)))
}
