package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/loadout/internal/catalog"
	"github.com/papapumpkin/loadout/internal/ui"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check the catalog for structural problems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Load(cfg.CatalogDir, logger)
		if err != nil {
			return fmt.Errorf("loading catalog %s: %w", cfg.CatalogDir, err)
		}
		errs := catalog.Lint(c)
		ui.New(cmd.ErrOrStderr()).LintResult(catalogName(c), c.Len(), errs)
		if len(errs) > 0 {
			return fmt.Errorf("catalog has %d problem(s)", len(errs))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
