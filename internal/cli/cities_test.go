package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/refdata"
)

func TestCitiesSuggest(t *testing.T) {
	setupCLITest(t)

	out := mustExecute(t, "cities", "suggest", "par")
	assert.Equal(t, "Paris\n", out)

	out, errOut, err := execute(t, "cities", "suggest", "a")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `No cities match "a"`)
}

func TestCitiesShow(t *testing.T) {
	setupCLITest(t)

	t.Run("city", func(t *testing.T) {
		out := mustExecute(t, "cities", "show", "tokyo")
		assert.Contains(t, out, "Tokyo")
		assert.Contains(t, out, "Japan")
		assert.Contains(t, out, "9.8 kg CO2e per day")
	})

	t.Run("country", func(t *testing.T) {
		out := mustExecute(t, "cities", "show", "Canada")
		assert.Contains(t, out, "Toronto, Montreal, Vancouver, Calgary, Ottawa")
	})

	t.Run("unknown with suggestion", func(t *testing.T) {
		_, _, err := execute(t, "cities", "show", "Pari")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "did you mean Paris")
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := execute(t, "cities", "show", "Atlantis")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "did you mean")
	})
}

func TestCitiesList(t *testing.T) {
	setupCLITest(t)

	out := mustExecute(t, "cities", "list", "-o", "json")
	var cities []refdata.CityData
	require.NoError(t, json.Unmarshal([]byte(out), &cities))
	assert.Len(t, cities, len(refdata.Cities()))

	out = mustExecute(t, "cities", "list", "--country", "united kingdom")
	assert.Contains(t, out, "London")
	assert.NotContains(t, out, "Paris")

	_, _, err := execute(t, "cities", "list", "--country", "Atlantis")
	require.Error(t, err)
}
