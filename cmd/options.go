package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/loadout/internal/engine"
	"github.com/papapumpkin/loadout/internal/ui"
)

var optionsCmd = &cobra.Command{
	Use:   "options <category>",
	Short: "List the skills of a category and whether they can be selected",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		cat := s.catalog.Category(args[0])
		if cat == nil {
			return fmt.Errorf("unknown category %q", args[0])
		}

		opts := engine.AvailableSkills(s.catalog, cat.ID, s.selection.Skills, s.opts)
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return ui.PrintJSON(cmd.OutOrStdout(), opts)
		}

		title := cat.Name
		if title == "" {
			title = cat.ID
		}
		ui.New(cmd.ErrOrStderr()).Options(title, opts)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the category tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		ui.New(cmd.ErrOrStderr()).CategoryTree(s.catalog, s.selection.Skills, s.opts)
		return nil
	},
}

func init() {
	optionsCmd.Flags().Bool("json", false, "print the options as JSON to stdout")
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(categoriesCmd)
}
