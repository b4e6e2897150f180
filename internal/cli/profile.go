package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/refdata"
	"github.com/rshade/footprint/internal/store"
)

const profileTabPadding = 2

// NewProfileSetCmd creates the profile set command.
func NewProfileSetCmd() *cobra.Command {
	var p store.Profile

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set your email, city and country",
		Long: `Replaces the stored profile. The email is required. When the city is in the
reference table the country is filled in automatically.`,
		Example: `  footprint profile set --email you@example.com --city Paris
  footprint profile set --email you@example.com --city Springfield --country "United States"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			saved, err := st.SetProfile(cmd.Context(), p)
			if errors.Is(err, store.ErrEmailRequired) {
				return err
			}
			if err != nil {
				return fmt.Errorf("saving profile: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			return printProfile(cmd, saved)
		},
	}

	cmd.Flags().StringVar(&p.Email, "email", "", "your email address (required)")
	cmd.Flags().StringVar(&p.City, "city", "", "the city you live in")
	cmd.Flags().StringVar(&p.Country, "country", "", "the country you live in (defaults from city)")

	return cmd
}

// NewProfileShowCmd creates the profile show command.
func NewProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			p, ok := st.Profile()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile set. Set one with 'footprint profile set --email <email>'.")
				return nil
			}
			return printProfile(cmd, p)
		},
	}
}

func printProfile(cmd *cobra.Command, p store.Profile) error {
	ref := refdata.Compare(p.City, p.Country)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, profileTabPadding, ' ', 0)
	fmt.Fprintf(tw, "Email:\t%s\n", p.Email)
	fmt.Fprintf(tw, "City:\t%s\n", orDash(p.City))
	fmt.Fprintf(tw, "Country:\t%s\n", orDash(p.Country))
	fmt.Fprintf(tw, "Comparison average:\t%.1f kg CO2e per day\n", ref.AveragePerson)
	if p.City != "" && !ref.CityKnown {
		fmt.Fprintf(tw, "Note:\t%q is not in the reference table; the global average is used for it\n", p.City)
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
