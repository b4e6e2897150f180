package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/rshade/footprint/internal/greenops"
)

// ErrNoActivities is returned when a form submission holds no non-zero value.
var ErrNoActivities = errors.New("Please enter at least one activity before continuing.") //nolint:revive,staticcheck // User-facing message.

// NewActivity builds a validated activity stamped with now.
func NewActivity(t greenops.ActivityType, value float64, now time.Time) (greenops.Activity, error) {
	return greenops.NewActivity(t, value, now)
}

// ActivitiesFromForm turns one submission of the activity form into
// activities, in table order. Zero values are dropped; a negative value
// fails the whole submission.
func ActivitiesFromForm(values map[greenops.ActivityType]float64, now time.Time) ([]greenops.Activity, error) {
	for t := range values {
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: %q", greenops.ErrUnknownActivityType, string(t))
		}
	}

	var out []greenops.Activity
	for _, t := range greenops.AllActivityTypes() {
		v, ok := values[t]
		if !ok || v == 0 {
			continue
		}
		a, err := NewActivity(t, v, now)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	if len(out) == 0 {
		return nil, ErrNoActivities
	}
	return out, nil
}
