// Package store owns the user's activity list, profile and running total,
// and persists all three through a kvstore.Store after every change.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/kvstore"
	"github.com/rshade/footprint/internal/logging"
)

// Persisted keys.
const (
	KeyActivities     = "carbon_calculator_activities"
	KeyUserData       = "carbon_calculator_user_data"
	KeyTotalEmissions = "carbon_calculator_total_emissions"
)

// Activity identity errors.
var (
	ErrMissingID   = errors.New("activity has no ID")
	ErrDuplicateID = errors.New("duplicate activity ID")
)

// totalTolerance is how far a persisted total may drift from the recomputed
// one before it is treated as stale.
const totalTolerance = 1e-9

// Store is the single mutation path for activities, profile and total.
// Reads return copies. Safe for concurrent use.
type Store struct {
	kv kvstore.Store

	mu         sync.RWMutex
	activities []greenops.Activity
	profile    *Profile
	total      float64
}

// Open loads persisted state from kv. Missing or corrupt entries fall back to
// their defaults with a warning; they never fail the open.
func Open(ctx context.Context, kv kvstore.Store) (*Store, error) {
	if kv == nil {
		return nil, errors.New("store: nil kvstore")
	}
	log := logging.FromContext(ctx)

	s := &Store{kv: kv}

	var activities []greenops.Activity
	if load(ctx, kv, KeyActivities, &activities) {
		s.activities = sanitize(ctx, activities)
	}

	var profile Profile
	if load(ctx, kv, KeyUserData, &profile) && profile.Email != "" {
		s.profile = &profile
	}

	s.total = greenops.CalculateTotal(s.activities)

	var persisted float64
	if load(ctx, kv, KeyTotalEmissions, &persisted) && math.Abs(persisted-s.total) > totalTolerance {
		log.Warn().
			Float64("persisted_kg", persisted).
			Float64("recomputed_kg", s.total).
			Msg("persisted total disagrees with activities, using recomputed value")
		if err := s.saveTotal(); err != nil {
			log.Warn().Err(err).Msg("could not rewrite total")
		}
	}

	log.Debug().
		Int("activities", len(s.activities)).
		Bool("has_profile", s.profile != nil).
		Float64("total_kg", s.total).
		Msg("store opened")

	return s, nil
}

// load decodes key into dst. It returns false, logging a warning for
// anything but a missing key, when dst should keep its default.
func load(ctx context.Context, kv kvstore.Store, key string, dst any) bool {
	raw, err := kv.Get(key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false
	}
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("could not read stored data, using default")
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("stored data is corrupt, using default")
		return false
	}
	return true
}

// sanitize drops loaded activities that violate the activity invariants or
// repeat an earlier ID, and re-derives units from type.
func sanitize(ctx context.Context, in []greenops.Activity) []greenops.Activity {
	out := make([]greenops.Activity, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		err := checkActivity(a)
		if _, dup := seen[a.ID]; err == nil && dup {
			err = ErrDuplicateID
		}
		if err != nil {
			logging.FromContext(ctx).Warn().
				Err(err).
				Str("id", a.ID).
				Str("type", string(a.Type)).
				Float64("value", a.Value).
				Msg("dropping invalid stored activity")
			continue
		}
		seen[a.ID] = struct{}{}
		a.Unit = a.Type.Unit()
		out = append(out, a)
	}
	return out
}

// Activities returns a copy of the activity list in insertion order.
func (s *Store) Activities() []greenops.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.activities)
}

// Profile returns the current profile and whether one is set.
func (s *Store) Profile() (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return Profile{}, false
	}
	return *s.profile, true
}

// Total returns the total emissions of the current activity set in kg CO2e.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Add appends activities and persists the new list and total. Every
// activity needs a type from the table, a finite non-negative value and an
// ID not already stored or repeated in the batch; the unit is re-derived
// from the type. Nothing is added when any activity is rejected.
func (s *Store) Add(ctx context.Context, activities ...greenops.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.activities)+len(activities))
	for _, a := range s.activities {
		seen[a.ID] = struct{}{}
	}

	batch := make([]greenops.Activity, 0, len(activities))
	for _, a := range activities {
		if err := checkActivity(a); err != nil {
			return err
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, a.ID)
		}
		seen[a.ID] = struct{}{}
		a.Unit = a.Type.Unit()
		batch = append(batch, a)
	}

	prev := s.activities
	s.activities = append(slices.Clone(prev), batch...)
	if err := s.saveActivitiesLocked(); err != nil {
		s.activities = prev
		s.total = greenops.CalculateTotal(prev)
		return err
	}

	logging.FromContext(ctx).Info().
		Int("added", len(batch)).
		Float64("total_kg", s.total).
		Msg("activities added")
	return nil
}

// checkActivity reports why a can not be stored, or nil.
func checkActivity(a greenops.Activity) error {
	switch {
	case a.ID == "":
		return fmt.Errorf("%w: %s", ErrMissingID, a.Type)
	case !a.Type.IsValid():
		return fmt.Errorf("%w: %q", greenops.ErrUnknownActivityType, string(a.Type))
	case math.IsNaN(a.Value) || math.IsInf(a.Value, 0):
		return fmt.Errorf("%w: %s=%g", greenops.ErrCalculationOverflow, a.Type, a.Value)
	case a.Value < 0:
		return fmt.Errorf("%w: %s=%g", greenops.ErrNegativeQuantity, a.Type, a.Value)
	}
	return nil
}

// Remove deletes the activity with id. It reports whether anything was
// removed; an unknown id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.activities, func(a greenops.Activity) bool { return a.ID == id })
	if idx < 0 {
		logging.FromContext(ctx).Debug().Str("id", id).Msg("remove: no such activity")
		return false, nil
	}

	prev := s.activities
	s.activities = slices.Delete(slices.Clone(prev), idx, idx+1)
	if err := s.saveActivitiesLocked(); err != nil {
		s.activities = prev
		s.total = greenops.CalculateTotal(prev)
		return false, err
	}

	logging.FromContext(ctx).Info().Str("id", id).Float64("total_kg", s.total).Msg("activity removed")
	return true, nil
}

// SetProfile validates p and replaces the stored profile with it.
func (s *Store) SetProfile(ctx context.Context, p Profile) (Profile, error) {
	p, err := ValidateProfile(p)
	if err != nil {
		return p, err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return p, fmt.Errorf("marshaling profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if setErr := s.kv.Set(KeyUserData, data); setErr != nil {
		return p, fmt.Errorf("saving profile: %w", setErr)
	}
	s.profile = &p

	logging.FromContext(ctx).Info().Str("city", p.City).Str("country", p.Country).Msg("profile saved")
	return p, nil
}

// Clear empties activities, profile and total and erases their persisted
// copies.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = nil
	s.profile = nil
	s.total = 0

	var errs []error
	for _, key := range []string{KeyActivities, KeyUserData, KeyTotalEmissions} {
		if err := s.kv.Delete(key); err != nil {
			errs = append(errs, fmt.Errorf("deleting %s: %w", key, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	logging.FromContext(ctx).Info().Msg("all data cleared")
	return nil
}

// saveActivitiesLocked recomputes the total and persists list and total.
// Must be called with mu held.
func (s *Store) saveActivitiesLocked() error {
	s.total = greenops.CalculateTotal(s.activities)

	list := s.activities
	if list == nil {
		list = []greenops.Activity{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshaling activities: %w", err)
	}
	if setErr := s.kv.Set(KeyActivities, data); setErr != nil {
		return fmt.Errorf("saving activities: %w", setErr)
	}
	return s.saveTotal()
}

func (s *Store) saveTotal() error {
	data, err := json.Marshal(s.total)
	if err != nil {
		return fmt.Errorf("marshaling total: %w", err)
	}
	if setErr := s.kv.Set(KeyTotalEmissions, data); setErr != nil {
		return fmt.Errorf("saving total: %w", setErr)
	}
	return nil
}
