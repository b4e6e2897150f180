package greenops

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// activitySpec is one row of the fixed emission factor table.
type activitySpec struct {
	typ    ActivityType
	factor float64
	unit   string
	label  string
}

// activityTable lists every supported activity type in display order.
//
//nolint:gochecknoglobals // Immutable lookup table.
var activityTable = []activitySpec{
	{ActivityDriving, DrivingFactor, "km", "Car Driving"},
	{ActivityAIUsage, AIUsageFactor, "hours", "AI Tool Usage"},
	{ActivityCommute, CommuteFactor, "km", "Public Transportation"},
	{ActivityPhone, PhoneFactor, "hours", "Phone/Device Usage"},
	{ActivityElectricity, ElectricityFactor, "kWh", "Electricity Consumption"},
	{ActivityFood, FoodFactor, "kg", "Food (Meat) Consumption"},
}

// lookupSpec returns the table row for t.
func lookupSpec(t ActivityType) (activitySpec, bool) {
	for _, spec := range activityTable {
		if spec.typ == t {
			return spec, true
		}
	}
	return activitySpec{}, false
}

// AllActivityTypes returns every activity type in table order.
func AllActivityTypes() []ActivityType {
	types := make([]ActivityType, len(activityTable))
	for i, spec := range activityTable {
		types[i] = spec.typ
	}
	return types
}

// ParseActivityType converts a wire name into an ActivityType.
// Matching ignores case and surrounding whitespace.
// Returns ErrUnknownActivityType for anything outside the enumeration.
func ParseActivityType(s string) (ActivityType, error) {
	candidate := ActivityType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := lookupSpec(candidate); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownActivityType, s)
	}
	return candidate, nil
}

// IsValid reports whether t belongs to the enumeration.
func (t ActivityType) IsValid() bool {
	_, ok := lookupSpec(t)
	return ok
}

// Factor returns kg CO2e per unit of quantity.
//
// Calling Factor on a type outside the enumeration is a programming error and
// panics; values are validated when activities are constructed.
func (t ActivityType) Factor() float64 {
	return t.mustSpec().factor
}

// Unit returns the quantity unit for t (km, hours, kWh, kg).
func (t ActivityType) Unit() string {
	return t.mustSpec().unit
}

// Label returns the human-readable name for t.
// Unknown types return their raw name so renderers never fail.
func (t ActivityType) Label() string {
	if spec, ok := lookupSpec(t); ok {
		return spec.label
	}
	return string(t)
}

func (t ActivityType) mustSpec() activitySpec {
	spec, ok := lookupSpec(t)
	if !ok {
		panic(fmt.Sprintf("greenops: activity type %q is not in the factor table", string(t)))
	}
	return spec
}

// NewActivity builds a validated Activity with a fresh ULID identifier.
// The unit is derived from the type. Returns ErrUnknownActivityType or
// ErrNegativeQuantity when an invariant would be violated.
func NewActivity(t ActivityType, value float64, now time.Time) (Activity, error) {
	spec, ok := lookupSpec(t)
	if !ok {
		return Activity{}, fmt.Errorf("%w: %q", ErrUnknownActivityType, string(t))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Activity{}, fmt.Errorf("%w: %s=%g", ErrCalculationOverflow, t, value)
	}
	if value < 0 {
		return Activity{}, fmt.Errorf("%w: %s=%g", ErrNegativeQuantity, t, value)
	}

	return Activity{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Type:      t,
		Value:     value,
		Unit:      spec.unit,
		Timestamp: now,
	}, nil
}
