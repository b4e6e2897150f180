package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/refdata"
	"github.com/rshade/footprint/internal/store"
)

// ComparisonKind identifies a bar in the comparison chart.
type ComparisonKind string

// Comparison kinds, in display order.
const (
	ComparisonUser    ComparisonKind = "user"
	ComparisonCity    ComparisonKind = "city"
	ComparisonCountry ComparisonKind = "country"
	ComparisonAverage ComparisonKind = "average"
	ComparisonGlobal  ComparisonKind = "global"
)

// ComparisonBar is one labelled value in the comparison chart.
type ComparisonBar struct {
	Kind    ComparisonKind `json:"kind"`
	Label   string         `json:"label"`
	ValueKg float64        `json:"value_kg"`
}

// Contributor is the single activity with the largest emission.
type Contributor struct {
	ActivityID  string                `json:"activity_id"`
	Type        greenops.ActivityType `json:"type"`
	Label       string                `json:"label"`
	EmissionsKg float64               `json:"emissions_kg"`
}

// ReportOptions tunes BuildReport.
type ReportOptions struct {
	// Now stamps the report; zero means time.Now.
	Now time.Time

	// Unit is the display unit for rendered totals (g, kg, t, lb).
	// Empty means kg.
	Unit string

	// HideEquivalency omits the "equivalent to" line.
	HideEquivalency bool

	// Precision is the number of decimals in rendered totals. Zero means
	// DefaultPrecision.
	Precision int
}

// DefaultPrecision is the decimal count used when none is configured.
const DefaultPrecision = 2

// Report is everything the report screen and `report` command show.
type Report struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Profile     *store.Profile `json:"profile,omitempty"`
	DisplayUnit string         `json:"display_unit"`
	Precision   int            `json:"-"`

	ActivityCount int                     `json:"activity_count"`
	TotalKg       float64                 `json:"total_kg"`
	Impact        greenops.ImpactLevel    `json:"impact"`
	Breakdown     []greenops.TypeEmission `json:"breakdown"`

	Reference   refdata.Comparison `json:"reference"`
	Comparisons []ComparisonBar    `json:"comparisons"`

	BelowAverage bool   `json:"below_average"`
	Verdict      string `json:"verdict"`

	BiggestContributor *Contributor `json:"biggest_contributor,omitempty"`

	Recommendations      []Recommendation `json:"recommendations"`
	PotentialReductionKg float64          `json:"potential_reduction_kg"`

	Equivalency string   `json:"equivalency,omitempty"`
	Insights    []string `json:"insights"`
}

// BuildReport assembles the report for activities and an optional profile.
// It is pure apart from reading the clock when opts.Now is zero.
func BuildReport(activities []greenops.Activity, profile *store.Profile, opts ReportOptions) Report {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	unit := opts.Unit
	if unit == "" || !greenops.IsRecognizedUnit(unit) {
		unit = "kg"
	}

	precision := opts.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}

	var city, country string
	if profile != nil {
		p := *profile
		profile = &p
		city, country = p.City, p.Country
	}
	ref := refdata.Compare(city, country)

	total := greenops.CalculateTotal(activities)

	r := Report{
		GeneratedAt:   now,
		Profile:       profile,
		DisplayUnit:   unit,
		Precision:     precision,
		ActivityCount: len(activities),
		TotalKg:       total,
		Impact:        greenops.ClassifyImpact(total),
		Breakdown:     greenops.Breakdown(activities),
		Reference:     ref,
		BelowAverage:  total < ref.AveragePerson,
	}
	if r.Breakdown == nil {
		r.Breakdown = []greenops.TypeEmission{}
	}

	r.Comparisons = comparisonBars(total, ref)

	if len(activities) > 0 {
		r.Recommendations = GenerateRecommendations(activities)
	} else {
		r.Recommendations = []Recommendation{}
	}
	r.PotentialReductionKg = PotentialReduction(r.Recommendations)
	r.BiggestContributor = biggestContributor(activities)

	if eq := greenops.CalculateForActivities(activities); !eq.IsEmpty && !opts.HideEquivalency {
		r.Equivalency = eq.DisplayText
	}

	r.Verdict = verdict(r)
	r.Insights = insights(r)
	return r
}

func comparisonBars(total float64, ref refdata.Comparison) []ComparisonBar {
	cityLabel := "City"
	if ref.City != "" {
		cityLabel = ref.City
	}
	countryLabel := "Country"
	if ref.Country != "" {
		countryLabel = ref.Country
	}

	return []ComparisonBar{
		{Kind: ComparisonUser, Label: "Your Footprint", ValueKg: total},
		{Kind: ComparisonCity, Label: cityLabel + " Average", ValueKg: ref.CityAverage},
		{Kind: ComparisonCountry, Label: countryLabel + " Average", ValueKg: ref.CountryAverage},
		{Kind: ComparisonAverage, Label: "Average Person", ValueKg: ref.AveragePerson},
		{Kind: ComparisonGlobal, Label: "Global Average", ValueKg: ref.GlobalAverage},
	}
}

// biggestContributor picks the activity with the largest emission; the
// earliest one wins a tie.
func biggestContributor(activities []greenops.Activity) *Contributor {
	var best *Contributor
	for _, a := range activities {
		e := a.Emissions()
		if best != nil && e <= best.EmissionsKg {
			continue
		}
		best = &Contributor{
			ActivityID:  a.ID,
			Type:        a.Type,
			Label:       a.Type.Label(),
			EmissionsKg: e,
		}
	}
	return best
}

func verdict(r Report) string {
	where := ""
	if r.Reference.City != "" {
		where = " in " + r.Reference.City
	}
	if r.BelowAverage {
		return fmt.Sprintf("Your carbon footprint is below the average person's footprint%s. "+
			"Great job! You're already making choices that help the environment.", where)
	}
	return fmt.Sprintf("Your carbon footprint is above the average person's footprint%s. "+
		"There are opportunities to reduce your environmental impact.", where)
}

func insights(r Report) []string {
	out := []string{r.Verdict}

	if r.Reference.City != "" {
		out = append(out, fmt.Sprintf("The average person in %s produces about %s kg CO2e per day.",
			r.Reference.City, greenops.FormatFloat(r.Reference.CityAverage, 1)))
	}
	if r.Reference.Country != "" {
		out = append(out, fmt.Sprintf("In %s, the national average is %s kg CO2e per day.",
			r.Reference.Country, greenops.FormatFloat(r.Reference.CountryAverage, 1)))
	}

	label := "unknown"
	if r.BiggestContributor != nil {
		label = r.BiggestContributor.Label
	}
	out = append(out, fmt.Sprintf("The biggest contributor to your carbon footprint is %s. "+
		"Focusing on reducing this activity would have the most significant impact.", label))

	out = append(out, fmt.Sprintf("If you implemented all our recommendations, you could reduce "+
		"your carbon footprint by approximately %s kg CO2e.", greenops.FormatFloat(r.PotentialReductionKg, 2)))

	if r.Equivalency != "" {
		out = append(out, r.Equivalency+".")
	}
	return out
}

// Headline is the one-line summary, e.g. "8.00 kg CO2e per day (Low Impact)".
func (r Report) Headline() string {
	return fmt.Sprintf("%s per day (%s)",
		greenops.FormatInUnit(r.TotalKg, r.DisplayUnit, r.decimals()), r.Impact)
}

func (r Report) decimals() int {
	if r.Precision <= 0 {
		return DefaultPrecision
	}
	return r.Precision
}

// ShareText is a short plain-text summary suitable for pasting elsewhere.
func (r Report) ShareText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "My daily carbon footprint is %s", greenops.FormatKg(r.TotalKg, 2))
	if r.Reference.City != "" {
		fmt.Fprintf(&b, " (%s average: %s)", r.Reference.City, greenops.FormatKg(r.Reference.CityAverage, 1))
	}
	b.WriteString(". Calculate yours with footprint.")
	return b.String()
}
