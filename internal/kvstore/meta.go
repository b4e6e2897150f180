package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog/log"
)

// SchemaVersion is the on-disk layout version written to meta.json.
// Bump the major component when existing files can no longer be read.
const SchemaVersion = "1.0.0"

const metaFileName = "meta.json"

// Meta is the content of meta.json.
type Meta struct {
	SchemaVersion string    `json:"schema_version"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReadMeta loads meta.json from directory.
func ReadMeta(directory string) (*Meta, error) {
	raw, err := os.ReadFile(filepath.Join(directory, metaFileName))
	if err != nil {
		return nil, err
	}
	var m Meta
	if unmarshalErr := json.Unmarshal(raw, &m); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptMeta, unmarshalErr)
	}
	if _, verErr := semver.NewVersion(m.SchemaVersion); verErr != nil {
		return nil, fmt.Errorf("%w: schema version %q: %w", ErrCorruptMeta, m.SchemaVersion, verErr)
	}
	return &m, nil
}

// ensureMeta writes meta.json for a fresh directory, or checks that an
// existing one is compatible with SchemaVersion. An unreadable meta.json is
// rewritten with a warning; entries are left untouched.
func ensureMeta(directory string) error {
	m, err := ReadMeta(directory)
	if os.IsNotExist(err) {
		return writeMeta(directory)
	}
	if errors.Is(err, ErrCorruptMeta) {
		log.Warn().
			Str("component", "kvstore").
			Str("directory", directory).
			Err(err).
			Msg("rewriting unreadable store metadata")
		return writeMeta(directory)
	}
	if err != nil {
		return err
	}
	return checkCompatible(m.SchemaVersion)
}

func writeMeta(directory string) error {
	data, err := json.MarshalIndent(Meta{
		SchemaVersion: SchemaVersion,
		CreatedAt:     time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", metaFileName, err)
	}
	return writeFileAtomic(filepath.Join(directory, metaFileName), data)
}

// checkCompatible accepts any stored version sharing SchemaVersion's major.
func checkCompatible(stored string) error {
	current := semver.MustParse(SchemaVersion)

	constraint, err := semver.NewConstraint(fmt.Sprintf("^%d.0.0", current.Major()))
	if err != nil {
		return fmt.Errorf("building schema constraint: %w", err)
	}

	v, err := semver.NewVersion(stored)
	if err != nil {
		return fmt.Errorf("%w: schema version %q: %w", ErrCorruptMeta, stored, err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: store has %s, this build reads %s", ErrIncompatibleSchema, v, current)
	}
	return nil
}
