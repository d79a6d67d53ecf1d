package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/loadout/internal/engine"
	"github.com/papapumpkin/loadout/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [skill...]",
	Short: "Validate a selection against the catalog",
	Long: `Validate checks the given skills, or the selection file when none are
given, for conflicts, missing requirements, and exclusive categories.
Missing recommendations are reported as warnings.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Bool("json", false, "print the result as JSON to stdout")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	name, skills := cfg.SelectionFile, s.selection.Skills
	if len(args) > 0 {
		name, skills = "arguments", args
	}

	res := engine.Validate(s.catalog, skills)
	logger.Debug("validated selection",
		zap.String("selection", name),
		zap.Int("errors", len(res.Errors)),
		zap.Int("warnings", len(res.Warnings)))

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		if err := ui.PrintJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	} else {
		ui.New(cmd.ErrOrStderr()).ValidationResult(name, len(skills), res)
	}

	if !res.Valid {
		return fmt.Errorf("selection %q has %d error(s)", name, len(res.Errors))
	}
	return nil
}
