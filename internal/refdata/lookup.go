// Package refdata holds the static city and country footprint averages that
// reports compare a user's daily total against.
//
// All tables are immutable and ordered; every lookup is case-insensitive and
// ignores surrounding whitespace.
package refdata

import (
	"slices"
	"strings"
)

const (
	// MinSuggestQueryLength is the shortest trimmed query Suggest answers.
	MinSuggestQueryLength = 2

	// MaxSuggestions caps the number of names Suggest returns.
	MaxSuggestions = 5
)

// CityData is one row of the city table.
type CityData struct {
	Name             string  `json:"name,omitempty"`
	Country          string  `json:"country"`
	AverageFootprint float64 `json:"average_footprint_kg"`
}

// CountryData is one row of the country table.
type CountryData struct {
	Name             string  `json:"name"`
	AverageFootprint float64 `json:"average_footprint_kg"`
}

// Comparison is the resolved reference set for a report.
type Comparison struct {
	City           string  `json:"city,omitempty"`
	CityKnown      bool    `json:"city_known"`
	CityAverage    float64 `json:"city_average_kg"`
	Country        string  `json:"country,omitempty"`
	CountryAverage float64 `json:"country_average_kg"`
	AveragePerson  float64 `json:"average_person_kg"`
	GlobalAverage  float64 `json:"global_average_kg"`
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func findCity(name string) (CityData, bool) {
	key := normalize(name)
	if key == "" {
		return CityData{}, false
	}
	for _, c := range cityTable {
		if strings.ToLower(c.Name) == key {
			return c, true
		}
	}
	return CityData{}, false
}

func findCountry(name string) (CountryData, bool) {
	key := normalize(name)
	if key == "" {
		return CountryData{}, false
	}
	for _, c := range countryTable {
		if strings.ToLower(c.Name) == key {
			return c, true
		}
	}
	return CountryData{}, false
}

// LookupCity returns the reference row for name. Unknown cities yield an
// empty country and the global average.
func LookupCity(name string) CityData {
	if c, ok := findCity(name); ok {
		return c
	}
	return CityData{Country: "", AverageFootprint: GlobalAverage}
}

// CountryAverage returns the average daily footprint for country, or
// GlobalAverage when the country is not in the table.
func CountryAverage(country string) float64 {
	if c, ok := findCountry(country); ok {
		return c.AverageFootprint
	}
	return GlobalAverage
}

// Canonical returns the display spelling of a known city.
func Canonical(name string) (string, bool) {
	c, ok := findCity(name)
	return c.Name, ok
}

// CanonicalCountry returns the display spelling of a known country.
func CanonicalCountry(name string) (string, bool) {
	c, ok := findCountry(name)
	return c.Name, ok
}

// Suggest returns up to MaxSuggestions city names containing query, in table
// order. Queries shorter than MinSuggestQueryLength after trimming return nil.
func Suggest(query string) []string {
	// Length is measured after trimming, so " a" or two spaces match nothing
	// rather than every city containing "a" or the whole table.
	q := normalize(query)
	if len(q) < MinSuggestQueryLength {
		return nil
	}

	var out []string
	for _, c := range cityTable {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c.Name)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// Cities returns a copy of the city table in definition order.
func Cities() []CityData {
	return slices.Clone(cityTable)
}

// Countries returns a copy of the country table in definition order.
func Countries() []CountryData {
	return slices.Clone(countryTable)
}

// CitiesIn returns the cities belonging to country, in table order.
func CitiesIn(country string) []CityData {
	key := normalize(country)
	var out []CityData
	for _, c := range cityTable {
		if strings.ToLower(c.Country) == key {
			out = append(out, c)
		}
	}
	return out
}

// Compare resolves the averages a report is measured against.
//
// The country is taken from the city table when the city is known, otherwise
// from declaredCountry. The average person is the country average when a
// country resolves and the global average otherwise.
func Compare(city, declaredCountry string) Comparison {
	cmp := Comparison{
		City:          strings.TrimSpace(city),
		CityAverage:   GlobalAverage,
		GlobalAverage: GlobalAverage,
		AveragePerson: GlobalAverage,
	}

	if c, ok := findCity(city); ok {
		cmp.City = c.Name
		cmp.CityKnown = true
		cmp.CityAverage = c.AverageFootprint
		cmp.Country = c.Country
	} else if name, ok := CanonicalCountry(declaredCountry); ok {
		cmp.Country = name
	} else {
		cmp.Country = strings.TrimSpace(declaredCountry)
	}

	cmp.CountryAverage = CountryAverage(cmp.Country)
	if cmp.Country != "" {
		cmp.AveragePerson = cmp.CountryAverage
	}
	return cmp
}
