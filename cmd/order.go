package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/loadout/internal/engine"
	"github.com/papapumpkin/loadout/internal/ui"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Print the selection in install order",
	Long: `Order prints the selected skills so that every skill comes after the
skills it requires. Ties keep catalog order; skills the catalog does not
know come last.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		ids, err := engine.InstallOrder(s.catalog, s.selection.Skills)
		if err != nil {
			return err
		}
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return ui.PrintJSON(cmd.OutOrStdout(), ids)
		}
		ui.New(cmd.ErrOrStderr()).InstallOrder(s.catalog, ids)
		return nil
	},
}

func init() {
	orderCmd.Flags().Bool("json", false, "print the order as JSON to stdout")
	rootCmd.AddCommand(orderCmd)
}
