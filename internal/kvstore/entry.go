package kvstore

import (
	"encoding/json"
	"errors"
	"time"
)

// Entry is the on-disk envelope for one stored value.
type Entry struct {
	// Key is the logical key the value was stored under.
	Key string `json:"key"`

	// Data is the stored value (raw JSON).
	Data json.RawMessage `json:"data"`

	// UpdatedAt is the time of the last write.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEntry wraps data for key, stamped with the current time.
func NewEntry(key string, data json.RawMessage) *Entry {
	return &Entry{
		Key:       key,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
}

// Age returns how long ago the entry was written.
func (e *Entry) Age() time.Duration {
	return time.Since(e.UpdatedAt)
}

// MarshalJSON writes UpdatedAt as RFC3339.
func (e *Entry) MarshalJSON() ([]byte, error) {
	type Alias Entry
	return json.Marshal(&struct {
		*Alias

		UpdatedAt string `json:"updated_at"`
	}{
		Alias:     (*Alias)(e),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	})
}

// UnmarshalJSON parses the RFC3339 UpdatedAt written by MarshalJSON.
func (e *Entry) UnmarshalJSON(data []byte) error {
	if e == nil {
		return errors.New("cannot unmarshal into nil Entry")
	}
	type Alias Entry
	aux := &struct {
		*Alias

		UpdatedAt string `json:"updated_at"`
	}{
		Alias: (*Alias)(e),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.UpdatedAt == "" {
		e.UpdatedAt = time.Time{}
		return nil
	}

	var err error
	e.UpdatedAt, err = time.Parse(time.RFC3339, aux.UpdatedAt)
	return err
}
