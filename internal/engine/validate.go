package engine

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/loadout/internal/catalog"
)

// Validate audits a final selection as a whole. Aliases are resolved and
// repeated skills collapse to their first occurrence before the pass.
//
// Conflicts are only detected in the declaring direction and in selection
// order: with A declaring a conflict with B, [A, B] reports one conflict
// and [B, A] reports none. IsDisabled checks both directions and is what
// keeps such selections from being built interactively.
//
// Expert mode has no influence here.
func Validate(c *catalog.Catalog, selection []string) Result {
	ids := dedupe(c.ResolveAll(selection))
	res := Result{
		Errors:   []ValidationError{},
		Warnings: []ValidationWarning{},
	}
	if len(ids) == 0 {
		res.Valid = true
		return res
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	res.Errors = append(res.Errors, conflictErrors(c, ids)...)
	res.Errors = append(res.Errors, requirementErrors(c, ids, set)...)
	res.Errors = append(res.Errors, exclusiveErrors(c, ids)...)
	res.Warnings = append(res.Warnings, recommendationWarnings(c, ids, set)...)

	res.Valid = len(res.Errors) == 0
	return res
}

func conflictErrors(c *catalog.Catalog, ids []string) []ValidationError {
	var errs []ValidationError
	for i, a := range ids {
		sa := c.Skill(a)
		if sa == nil {
			continue
		}
		for _, b := range ids[i+1:] {
			r, ok := names(c, sa.ConflictsWith, b)
			if !ok {
				continue
			}
			errs = append(errs, ValidationError{
				Kind:    KindConflict,
				Skills:  []string{a, b},
				Message: withColon(fmt.Sprintf("%s conflicts with %s", c.Name(a), c.Name(b)), r.Reason),
			})
		}
	}
	return errs
}

func requirementErrors(c *catalog.Catalog, ids []string, set map[string]bool) []ValidationError {
	var errs []ValidationError
	for _, id := range ids {
		for _, u := range unmetRequirements(c, c.Skill(id), set) {
			var msg string
			if u.needAny {
				msg = fmt.Sprintf("%s requires one of %s", c.Name(id), joinNames(c, u.ids, false))
			} else {
				msg = fmt.Sprintf("%s requires %s", c.Name(id), joinNames(c, u.ids, false))
			}
			errs = append(errs, ValidationError{
				Kind:    KindMissingRequirement,
				Skills:  append([]string{id}, u.ids...),
				Message: withColon(msg, u.req.Reason),
			})
		}
	}
	return errs
}

func exclusiveErrors(c *catalog.Catalog, ids []string) []ValidationError {
	var errs []ValidationError
	for _, cat := range c.Categories() {
		if !cat.Exclusive {
			continue
		}
		var members []string
		for _, id := range ids {
			if s := c.Skill(id); s != nil && s.Category == cat.ID {
				members = append(members, id)
			}
		}
		if len(members) < 2 {
			continue
		}
		errs = append(errs, ValidationError{
			Kind:   KindCategoryExclusive,
			Skills: members,
			Message: fmt.Sprintf("only one skill from %s may be selected, got %s",
				categoryName(cat), joinNames(c, members, false)),
		})
	}
	return errs
}

// recommendationWarnings skips recommendations that are unknown or that
// would conflict with the current selection if added.
func recommendationWarnings(c *catalog.Catalog, ids []string, set map[string]bool) []ValidationWarning {
	var warns []ValidationWarning
	for _, id := range ids {
		s := c.Skill(id)
		if s == nil {
			continue
		}
		for _, rec := range s.Recommends {
			target := c.Resolve(rec.SkillID)
			if set[target] || c.Skill(target) == nil {
				continue
			}
			if _, conflicts := findConflict(c, target, ids, set); conflicts {
				continue
			}
			warns = append(warns, ValidationWarning{
				Kind:    KindMissingRecommendation,
				Skills:  []string{id, target},
				Message: withColon(fmt.Sprintf("%s recommends %s", c.Name(id), c.Name(target)), rec.Reason),
			})
		}
	}
	return warns
}

// dedupe drops repeated IDs, keeping the first occurrence.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func categoryName(cat *catalog.Category) string {
	if cat.Name != "" {
		return cat.Name
	}
	return cat.ID
}

func withColon(msg, reason string) string {
	if strings.TrimSpace(reason) == "" {
		return msg
	}
	return msg + ": " + reason
}
