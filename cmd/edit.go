package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/loadout/internal/catalog"
	"github.com/papapumpkin/loadout/internal/engine"
	"github.com/papapumpkin/loadout/internal/selection"
	"github.com/papapumpkin/loadout/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <skill>",
	Short: "Add a skill to the selection file",
	Long: `Add appends a skill (by ID or alias) to the selection file. Skills that
conflict with the selection or have unmet requirements are refused unless
expert mode is on. Discouraged skills are added with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove <skill>",
	Short: "Remove a skill from the selection file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	printer := ui.New(cmd.ErrOrStderr())

	sk := s.catalog.Lookup(args[0])
	if sk == nil {
		return fmt.Errorf("unknown skill %q", args[0])
	}
	if isSelected(s.catalog, s.selection.Skills, sk.ID) {
		printer.Info(fmt.Sprintf("%s is already selected", sk.DisplayName()))
		return nil
	}

	current := s.selection.Skills
	if reason, disabled := engine.DisableReason(s.catalog, sk.ID, current, s.opts); disabled {
		return fmt.Errorf("cannot add %s: %s (use --expert to override)", sk.DisplayName(), reason)
	}
	if reason, discouraged := engine.DiscourageReason(s.catalog, sk.ID, current); discouraged {
		printer.Warn(fmt.Sprintf("%s is discouraged: %s", sk.DisplayName(), reason))
	}

	s.selection.Add(sk.ID)
	if err := selection.Save(cfg.SelectionFile, s.selection); err != nil {
		return err
	}
	logger.Debug("skill added", zap.String("skill", sk.ID), zap.String("selection_file", cfg.SelectionFile))
	printer.Success(fmt.Sprintf("added %s", sk.DisplayName()))

	res := engine.Validate(s.catalog, s.selection.Skills)
	for _, w := range res.Warnings {
		if w.Kind == engine.KindMissingRecommendation && len(w.Skills) > 0 && w.Skills[0] == sk.ID {
			printer.Info(w.Message)
		}
	}
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	printer := ui.New(cmd.ErrOrStderr())

	id := s.catalog.Resolve(args[0])
	removed := s.selection.RemoveFunc(func(ref string) bool {
		return s.catalog.Resolve(ref) == id
	})
	if !removed {
		return fmt.Errorf("%s is not selected", args[0])
	}

	if err := selection.Save(cfg.SelectionFile, s.selection); err != nil {
		return err
	}
	logger.Debug("skill removed", zap.String("skill", id), zap.String("selection_file", cfg.SelectionFile))
	printer.Success(fmt.Sprintf("removed %s", s.catalog.Name(id)))

	// Removing a skill can leave others with unmet requirements.
	res := engine.Validate(s.catalog, s.selection.Skills)
	for _, e := range res.Errors {
		if e.Kind == engine.KindMissingRequirement {
			printer.Warn(e.Message)
		}
	}
	return nil
}

// isSelected reports whether any entry of selection resolves to id.
func isSelected(c *catalog.Catalog, selection []string, id string) bool {
	for _, have := range c.ResolveAll(selection) {
		if have == id {
			return true
		}
	}
	return false
}
