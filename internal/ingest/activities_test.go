package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/greenops"
)

var importNow = time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImportActivities_YAML(t *testing.T) {
	path := writeFile(t, "day.yaml", `
activities:
  - type: driving
    value: 42
  - type: Food
    value: 0.3
    timestamp: 2026-10-18T12:00:00Z
`)

	got, err := ImportActivities(context.Background(), path, importNow)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, greenops.ActivityDriving, got[0].Type)
	assert.Equal(t, "km", got[0].Unit)
	assert.Equal(t, importNow, got[0].Timestamp)

	assert.Equal(t, greenops.ActivityFood, got[1].Type)
	assert.Equal(t, time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC), got[1].Timestamp.UTC())
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestImportActivities_JSON(t *testing.T) {
	path := writeFile(t, "day.JSON", `{"activities":[{"type":"electricity","value":12.5}]}`)

	got, err := ImportActivities(context.Background(), path, importNow)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 6.25, got[0].Emissions(), 1e-9)
}

func TestImportActivities_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		is      error
		msg     string
	}{
		{
			name:    "unknown type",
			file:    "a.yaml",
			content: "activities:\n  - {type: driving, value: 1}\n  - {type: flying, value: 2}\n",
			is:      greenops.ErrUnknownActivityType,
			msg:     "activity 1",
		},
		{
			name:    "negative value",
			file:    "a.yaml",
			content: "activities:\n  - {type: phone, value: -2}\n",
			is:      greenops.ErrNegativeQuantity,
			msg:     "activity 0",
		},
		{
			name:    "empty list",
			file:    "a.yaml",
			content: "activities: []\n",
			is:      ErrEmptyImport,
		},
		{
			name:    "malformed json",
			file:    "a.json",
			content: "{",
			msg:     "parsing json activity import",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportActivities(context.Background(), writeFile(t, tt.file, tt.content), importNow)
			require.Error(t, err)
			if tt.is != nil {
				require.ErrorIs(t, err, tt.is)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestLoadActivityFile_Missing(t *testing.T) {
	_, err := LoadActivityFile(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading import file")
}

func TestToActivities_Nil(t *testing.T) {
	var f *ActivityFile
	_, err := f.ToActivities(importNow)
	require.ErrorIs(t, err, ErrEmptyImport)
}
