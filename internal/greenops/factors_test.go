package greenops

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorTable(t *testing.T) {
	tests := []struct {
		typ    ActivityType
		factor float64
		unit   string
		label  string
	}{
		{ActivityDriving, 0.2, "km", "Car Driving"},
		{ActivityAIUsage, 0.1, "hours", "AI Tool Usage"},
		{ActivityCommute, 0.15, "km", "Public Transportation"},
		{ActivityPhone, 0.05, "hours", "Phone/Device Usage"},
		{ActivityElectricity, 0.5, "kWh", "Electricity Consumption"},
		{ActivityFood, 2.5, "kg", "Food (Meat) Consumption"},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.True(t, tt.typ.IsValid())
			assert.InDelta(t, tt.factor, tt.typ.Factor(), 1e-12)
			assert.Equal(t, tt.unit, tt.typ.Unit())
			assert.Equal(t, tt.label, tt.typ.Label())
		})
	}
}

func TestAllActivityTypes_Order(t *testing.T) {
	assert.Equal(t, []ActivityType{
		ActivityDriving,
		ActivityAIUsage,
		ActivityCommute,
		ActivityPhone,
		ActivityElectricity,
		ActivityFood,
	}, AllActivityTypes())
}

func TestParseActivityType(t *testing.T) {
	tests := []struct {
		input   string
		want    ActivityType
		wantErr bool
	}{
		{input: "driving", want: ActivityDriving},
		{input: "  AI_Usage ", want: ActivityAIUsage},
		{input: "FOOD", want: ActivityFood},
		{input: "flying", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseActivityType(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownActivityType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownType(t *testing.T) {
	unknown := ActivityType("flying")

	assert.False(t, unknown.IsValid())
	assert.Equal(t, "flying", unknown.Label())
	assert.Panics(t, func() { _ = unknown.Factor() })
	assert.Panics(t, func() { _ = unknown.Unit() })
}

func TestNewActivity(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	t.Run("derives unit and assigns id", func(t *testing.T) {
		a, err := NewActivity(ActivityElectricity, 12, now)
		require.NoError(t, err)

		assert.NotEmpty(t, a.ID)
		assert.Len(t, a.ID, 26, "ULID string length")
		assert.Equal(t, ActivityElectricity, a.Type)
		assert.Equal(t, "kWh", a.Unit)
		assert.InDelta(t, 12.0, a.Value, 1e-12)
		assert.Equal(t, now, a.Timestamp)
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			a, err := NewActivity(ActivityPhone, 1, now)
			require.NoError(t, err)
			assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
			seen[a.ID] = true
		}
	})

	t.Run("zero quantity is allowed", func(t *testing.T) {
		_, err := NewActivity(ActivityFood, 0, now)
		require.NoError(t, err)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		_, err := NewActivity(ActivityDriving, -1, now)
		require.ErrorIs(t, err, ErrNegativeQuantity)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := NewActivity(ActivityType("flying"), 1, now)
		require.ErrorIs(t, err, ErrUnknownActivityType)
	})
}
