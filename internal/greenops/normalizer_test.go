package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A driving=40 day emits 8 kg; these cases show that total in every report unit.
func TestConvertFromKg_DailyTotal(t *testing.T) {
	const dailyKg = 8.0

	tests := []struct {
		unit string
		want float64
	}{
		{unit: "kg", want: 8},
		{unit: "g", want: 8000},
		{unit: "t", want: 0.008},
		{unit: "lb", want: 17.636995},
		{unit: "tCO2e", want: 0.008},
		{unit: "LB", want: 17.636995},
		{unit: " kg ", want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, err := ConvertFromKg(dailyKg, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)

			back, err := NormalizeToKg(got, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, dailyKg, back, 1e-9, "round trip back to kg")
		})
	}
}

func TestNormalizeToKg_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    string
		wantErr error

		// normalizeOnly marks inputs that only overflow when multiplied.
		normalizeOnly bool
	}{
		{name: "unit from config typo", value: 1, unit: "kgs", wantErr: ErrInvalidUnit},
		{name: "bare suffix", value: 1, unit: "CO2e", wantErr: ErrInvalidUnit},
		{name: "empty unit", value: 1, unit: "", wantErr: ErrInvalidUnit},
		{name: "negative total", value: -0.5, unit: "kg", wantErr: ErrNegativeValue},
		{name: "not a number", value: math.NaN(), unit: "g", wantErr: ErrCalculationOverflow},
		{name: "infinite", value: math.Inf(1), unit: "kg", wantErr: ErrCalculationOverflow},
		{name: "product overflows", value: math.MaxFloat64 / 10, unit: "t", wantErr: ErrCalculationOverflow, normalizeOnly: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeToKg(tt.value, tt.unit)
			require.ErrorIs(t, err, tt.wantErr)

			if tt.normalizeOnly {
				return
			}
			_, convErr := ConvertFromKg(tt.value, tt.unit)
			assert.ErrorIs(t, convErr, tt.wantErr)
		})
	}
}

func TestUnitSymbol(t *testing.T) {
	for in, want := range map[string]string{
		"kg": "kg", "KGCO2E": "kg", "gCO2e": "g", "tCO2e": "t", "Lb": "lb",
	} {
		got, ok := UnitSymbol(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := UnitSymbol("stone")
	assert.False(t, ok)
}

func TestIsRecognizedUnit(t *testing.T) {
	for _, unit := range []string{"g", "kg", "t", "lb", "gCO2e", "TCO2E"} {
		assert.True(t, IsRecognizedUnit(unit), unit)
	}
	for _, unit := range []string{"", "oz", "ton", "stone", "co2e"} {
		assert.False(t, IsRecognizedUnit(unit), unit)
	}
}
