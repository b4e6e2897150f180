package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewResetCmd creates the reset command, which erases all stored data.
func NewResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all activities and the profile",
		Long: `Deletes every recorded activity, the stored profile and the running total.
Asks for confirmation unless --force is given. Non-interactive sessions must
pass --force.`,
		Example: `  footprint reset
  footprint reset --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			if !force {
				if !isTerminal(os.Stdin) {
					return errors.New("refusing to reset without confirmation; use --force")
				}
				res := ConfirmReset(cmd.ErrOrStderr(), cmd.InOrStdin(), len(st.Activities()))
				if !res.Accepted {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
					return nil
				}
			}

			if clearErr := st.Clear(cmd.Context()); clearErr != nil {
				return clearErr
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
