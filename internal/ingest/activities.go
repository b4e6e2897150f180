// Package ingest loads activity batches from YAML or JSON files for
// `footprint activity import`.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/logging"
)

// ErrEmptyImport is returned when a document holds no activities.
var ErrEmptyImport = errors.New("import file contains no activities")

// ActivityFile is the import document.
//
//	activities:
//	  - type: driving
//	    value: 42
//	  - type: food
//	    value: 0.3
//	    timestamp: 2026-10-19T12:00:00Z
type ActivityFile struct {
	Activities []ActivityRecord `json:"activities" yaml:"activities"`
}

// ActivityRecord is one entry of an ActivityFile.
type ActivityRecord struct {
	Type      string     `json:"type"                yaml:"type"`
	Value     float64    `json:"value"               yaml:"value"`
	Timestamp *time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// ParseActivityFile decodes data as JSON when format is "json" and as YAML
// otherwise.
func ParseActivityFile(ctx context.Context, data []byte, format string) (*ActivityFile, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "ingest").
		Str("operation", "parse_activities").
		Str("format", format).
		Int("data_size_bytes", len(data)).
		Msg("parsing activity import")

	var doc ActivityFile
	var err error
	if format == "json" {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		log.Error().Str("component", "ingest").Err(err).Msg("failed to parse activity import")
		return nil, fmt.Errorf("parsing %s activity import: %w", format, err)
	}
	return &doc, nil
}

// LoadActivityFile reads path, choosing the decoder from its extension.
func LoadActivityFile(ctx context.Context, path string) (*ActivityFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.FromContext(ctx).Error().
			Str("component", "ingest").
			Err(err).
			Str("import_path", path).
			Msg("failed to read activity import")
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	return ParseActivityFile(ctx, data, format)
}

// ToActivities validates every record and builds activities. Records
// without a timestamp are stamped with now. The first invalid record fails
// the whole batch, naming its index.
func (f *ActivityFile) ToActivities(now time.Time) ([]greenops.Activity, error) {
	if f == nil || len(f.Activities) == 0 {
		return nil, ErrEmptyImport
	}

	out := make([]greenops.Activity, 0, len(f.Activities))
	for i, rec := range f.Activities {
		typ, err := greenops.ParseActivityType(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("activity %d: %w", i, err)
		}

		ts := now
		if rec.Timestamp != nil {
			ts = *rec.Timestamp
		}

		a, err := greenops.NewActivity(typ, rec.Value, ts)
		if err != nil {
			return nil, fmt.Errorf("activity %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// ImportActivities loads path and converts it with ToActivities.
func ImportActivities(ctx context.Context, path string, now time.Time) ([]greenops.Activity, error) {
	doc, err := LoadActivityFile(ctx, path)
	if err != nil {
		return nil, err
	}

	activities, err := doc.ToActivities(now)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("component", "ingest").
		Str("import_path", path).
		Int("activity_count", len(activities)).
		Float64("total_kg", greenops.CalculateTotal(activities)).
		Msg("activity import parsed")

	return activities, nil
}
