package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/refdata"
)

// NewCitiesSuggestCmd creates the cities suggest command.
func NewCitiesSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query>",
		Short: "Suggest city names containing a query",
		Long: fmt.Sprintf(`Prints up to %d known city names whose name contains the query,
ignoring case. Queries shorter than %d characters match nothing.`,
			refdata.MaxSuggestions, refdata.MinSuggestQueryLength),
		Example: `  footprint cities suggest par`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := refdata.Suggest(args[0])
			if len(matches) == 0 {
				cmd.PrintErrf("No cities match %q\n", args[0])
				return nil
			}
			for _, name := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// NewCitiesShowCmd creates the cities show command. It also accepts a
// country name.
func NewCitiesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <city|country>",
		Short: "Show reference averages for a city or country",
		Example: `  footprint cities show Paris
  footprint cities show Japan`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, profileTabPadding, ' ', 0)

			if city, ok := refdata.Canonical(name); ok {
				data := refdata.LookupCity(city)
				fmt.Fprintf(tw, "City:\t%s\n", data.Name)
				fmt.Fprintf(tw, "Country:\t%s\n", data.Country)
				fmt.Fprintf(tw, "City average:\t%.1f kg CO2e per day\n", data.AverageFootprint)
				fmt.Fprintf(tw, "Country average:\t%.1f kg CO2e per day\n", refdata.CountryAverage(data.Country))
				fmt.Fprintf(tw, "Global average:\t%.1f kg CO2e per day\n", refdata.GlobalAverage)
				return tw.Flush()
			}

			if country, ok := refdata.CanonicalCountry(name); ok {
				var names []string
				for _, c := range refdata.CitiesIn(country) {
					names = append(names, c.Name)
				}
				fmt.Fprintf(tw, "Country:\t%s\n", country)
				fmt.Fprintf(tw, "Country average:\t%.1f kg CO2e per day\n", refdata.CountryAverage(country))
				fmt.Fprintf(tw, "Global average:\t%.1f kg CO2e per day\n", refdata.GlobalAverage)
				if len(names) > 0 {
					fmt.Fprintf(tw, "Cities:\t%s\n", strings.Join(names, ", "))
				}
				return tw.Flush()
			}

			if matches := refdata.Suggest(name); len(matches) > 0 {
				return fmt.Errorf("unknown city or country %q (did you mean %s?)", name, strings.Join(matches, ", "))
			}
			return fmt.Errorf("unknown city or country %q", name)
		},
	}
}

// NewCitiesListCmd creates the cities list command.
func NewCitiesListCmd() *cobra.Command {
	var (
		country string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every known city",
		Example: `  footprint cities list
  footprint cities list --country Canada
  footprint cities list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output, outputTable, outputJSON)
			if err != nil {
				return err
			}

			cities := refdata.Cities()
			if country != "" {
				cities = refdata.CitiesIn(country)
				if len(cities) == 0 {
					return fmt.Errorf("no cities known for country %q", country)
				}
			}

			if format == outputJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(cities)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, profileTabPadding, ' ', 0)
			fmt.Fprintln(tw, "CITY\tCOUNTRY\tAVERAGE (kg CO2e/day)")
			fmt.Fprintln(tw, "----\t-------\t---------------------")
			for _, c := range cities {
				fmt.Fprintf(tw, "%s\t%s\t%.1f\n", c.Name, c.Country, c.AverageFootprint)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "only list cities in this country")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")
	return cmd
}
