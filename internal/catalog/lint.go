package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/papapumpkin/loadout/internal/dag"
)

// Lint checks a catalog for integrity problems the fail-open engine would
// silently ignore: missing fields, duplicate IDs, unknown categories and
// skill references, self references, alias collisions, requirement cycles,
// and exclusivity flags that disagree with their category.
func Lint(c *Catalog) []LintError {
	var errs []LintError

	for _, dup := range c.duplicates {
		first := c.skills[dup.ID]
		errs = append(errs, LintError{
			Category:   LintDuplicateID,
			SkillID:    dup.ID,
			SourceFile: dup.SourceFile,
			Err:        fmt.Errorf("%w: %q already defined in %s", ErrDuplicateID, dup.ID, first.SourceFile),
		})
	}

	for _, catID := range c.categoryIDs {
		cat := c.categories[catID]
		if cat.Parent != "" && c.categories[cat.Parent] == nil {
			errs = append(errs, LintError{
				Category: LintUnknownCategory,
				Field:    "categories.parent",
				Err:      fmt.Errorf("%w: category %q has parent %q", ErrUnknownCategory, cat.ID, cat.Parent),
			})
		}
	}

	for _, s := range c.Skills() {
		errs = append(errs, lintSkill(c, s)...)
	}

	errs = append(errs, lintAliases(c)...)
	errs = append(errs, lintRequirementCycles(c)...)
	return errs
}

func lintSkill(c *Catalog, s *Skill) []LintError {
	var errs []LintError
	add := func(cat LintCategory, field string, err error) {
		errs = append(errs, LintError{
			Category:   cat,
			SkillID:    s.ID,
			SourceFile: s.SourceFile,
			Field:      field,
			Err:        err,
		})
	}

	if s.ID == "" {
		add(LintMissingField, "id", fmt.Errorf("%w: id", ErrMissingField))
		return errs
	}
	if s.Category == "" {
		add(LintMissingField, "category", fmt.Errorf("%w: category", ErrMissingField))
	} else if cat := c.categories[s.Category]; cat == nil {
		add(LintUnknownCategory, "category", fmt.Errorf("%w: %q", ErrUnknownCategory, s.Category))
	} else if s.CategoryExclusive && !cat.Exclusive {
		add(LintExclusiveMismatch, "category_exclusive", fmt.Errorf("%w: %q", ErrExclusiveMismatch, s.Category))
	}

	checkRef := func(field, ref string) {
		id := c.Resolve(ref)
		switch {
		case id == s.ID:
			add(LintSelfRef, field, fmt.Errorf("%w: %s", ErrSelfRef, field))
		case c.skills[id] == nil:
			add(LintUnknownRef, field, fmt.Errorf("%w: %q in %s", ErrUnknownRef, ref, field))
		}
	}
	for _, r := range s.ConflictsWith {
		checkRef("conflicts_with", r.SkillID)
	}
	for _, r := range s.Recommends {
		checkRef("recommends", r.SkillID)
	}
	for _, r := range s.Discourages {
		checkRef("discourages", r.SkillID)
	}
	for _, req := range s.Requires {
		if len(req.SkillIDs) == 0 {
			add(LintMissingField, "requires.skills", fmt.Errorf("%w: requires.skills", ErrMissingField))
		}
		for _, ref := range req.SkillIDs {
			checkRef("requires", ref)
		}
	}
	for _, alt := range s.Alternatives {
		checkRef("alternatives", alt.SkillID)
	}
	return errs
}

func lintAliases(c *Catalog) []LintError {
	shorts := make([]string, 0, len(c.aliases))
	for short := range c.aliases {
		shorts = append(shorts, short)
	}
	sort.Strings(shorts)

	var errs []LintError
	for _, short := range shorts {
		id := c.aliases[short]
		if other := c.skills[short]; other != nil && short != id {
			errs = append(errs, LintError{
				Category:   LintAliasCollision,
				SkillID:    short,
				SourceFile: other.SourceFile,
				Field:      "aliases",
				Err:        fmt.Errorf("%w: alias %q shadows skill ID %q", ErrAliasCollision, short, short),
			})
		}
		if c.skills[id] == nil {
			errs = append(errs, LintError{
				Category: LintAliasCollision,
				Field:    "aliases",
				Err:      fmt.Errorf("%w: alias %q points to unknown skill %q", ErrAliasCollision, short, id),
			})
		}
	}
	return errs
}

// lintRequirementCycles reports AND requirements that loop back on
// themselves. Skills on such a cycle can never be selected without
// expert mode.
func lintRequirementCycles(c *Catalog) []LintError {
	g := dag.New()
	for i, id := range c.skillIDs {
		_ = g.AddNode(id, i)
	}

	var errs []LintError
	for _, s := range c.Skills() {
		for _, req := range s.Requires {
			if req.NeedsAny {
				continue
			}
			for _, ref := range req.SkillIDs {
				to := c.Resolve(ref)
				if to == s.ID || !g.Has(to) {
					continue // reported as self_ref / unknown_ref
				}
				err := g.AddEdge(s.ID, to)
				var cycle *dag.CycleError
				if errors.As(err, &cycle) {
					errs = append(errs, LintError{
						Category:   LintRequirementCycle,
						SkillID:    s.ID,
						SourceFile: s.SourceFile,
						Field:      "requires",
						Err:        fmt.Errorf("%w: %s", ErrRequirementCycle, strings.Join(cycle.Path, " → ")),
					})
				}
			}
		}
	}
	return errs
}
