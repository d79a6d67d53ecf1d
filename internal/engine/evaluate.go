// Package engine evaluates skill relations against a selection. Every
// function here is pure: it reads the catalog and the caller's selection,
// never mutates either, and keeps no state between calls, so the same
// catalog may be evaluated from any number of goroutines at once.
//
// Candidates and selections may contain aliases; they are resolved
// through the catalog before comparison. References to skills the catalog
// does not know have no effect.
package engine

import "github.com/papapumpkin/loadout/internal/catalog"

// Options carries caller-controlled evaluation flags.
type Options struct {
	// ExpertMode suppresses conflict- and requirement-based disabling
	// during interactive selection. It never affects Validate.
	ExpertMode bool
}

// IsDisabled reports whether candidate cannot be selected next to selection:
// it conflicts with a selected skill in either direction, or one of its
// requirements is unmet. Always false in expert mode.
func IsDisabled(c *catalog.Catalog, candidate string, selection []string, opts Options) bool {
	if opts.ExpertMode {
		return false
	}
	id := c.Resolve(candidate)
	set := selectedSet(c, selection)
	if _, ok := findConflict(c, id, selection, set); ok {
		return true
	}
	return len(unmetRequirements(c, c.Skill(id), set)) > 0
}

// IsDiscouraged reports whether candidate and a selected skill discourage
// each other, in either direction. Expert mode does not apply.
func IsDiscouraged(c *catalog.Catalog, candidate string, selection []string) bool {
	id := c.Resolve(candidate)
	_, ok := findDiscouraged(c, id, selection, selectedSet(c, selection))
	return ok
}

// IsRecommended reports whether some selected skill recommends candidate.
// The direction matters: candidate recommending a selected skill does not
// count.
func IsRecommended(c *catalog.Catalog, candidate string, selection []string) bool {
	_, ok := findRecommender(c, c.Resolve(candidate), selection)
	return ok
}

// hit is a relation match between the candidate and another skill.
type hit struct {
	other  string // canonical ID of the opposing skill
	reason string
}

// unmet is a requirement that the selection does not satisfy.
type unmet struct {
	req     catalog.Requirement
	ids     []string // resolved IDs: the missing ones (AND) or every alternative (OR)
	needAny bool
}

// selectedSet resolves selection into a membership set.
func selectedSet(c *catalog.Catalog, selection []string) map[string]bool {
	set := make(map[string]bool, len(selection))
	for _, ref := range selection {
		set[c.Resolve(ref)] = true
	}
	return set
}

// names reports whether rels contains a relation to id after alias resolution.
func names(c *catalog.Catalog, rels []catalog.Relation, id string) (catalog.Relation, bool) {
	for _, r := range rels {
		if c.Resolve(r.SkillID) == id {
			return r, true
		}
	}
	return catalog.Relation{}, false
}

// findConflict returns the first conflict between id and a selected skill.
// The candidate's own declarations are checked first, then each selected
// skill's declarations in selection order.
func findConflict(c *catalog.Catalog, id string, selection []string, set map[string]bool) (hit, bool) {
	return findBidirectional(c, id, selection, set, func(s *catalog.Skill) []catalog.Relation {
		return s.ConflictsWith
	})
}

// findDiscouraged is findConflict for the discourages relation.
func findDiscouraged(c *catalog.Catalog, id string, selection []string, set map[string]bool) (hit, bool) {
	return findBidirectional(c, id, selection, set, func(s *catalog.Skill) []catalog.Relation {
		return s.Discourages
	})
}

func findBidirectional(c *catalog.Catalog, id string, selection []string, set map[string]bool, rels func(*catalog.Skill) []catalog.Relation) (hit, bool) {
	if len(set) == 0 {
		return hit{}, false
	}
	if self := c.Skill(id); self != nil {
		for _, r := range rels(self) {
			if other := c.Resolve(r.SkillID); set[other] {
				return hit{other: other, reason: r.Reason}, true
			}
		}
	}
	for _, ref := range selection {
		sel := c.Lookup(ref)
		if sel == nil {
			continue
		}
		if r, ok := names(c, rels(sel), id); ok {
			return hit{other: sel.ID, reason: r.Reason}, true
		}
	}
	return hit{}, false
}

// findRecommender returns the first selected skill whose recommends list
// names id.
func findRecommender(c *catalog.Catalog, id string, selection []string) (hit, bool) {
	for _, ref := range selection {
		sel := c.Lookup(ref)
		if sel == nil {
			continue
		}
		if r, ok := names(c, sel.Recommends, id); ok {
			return hit{other: sel.ID, reason: r.Reason}, true
		}
	}
	return hit{}, false
}

// unmetRequirements returns every requirement of s that set does not
// satisfy, in declaration order. A nil skill has no requirements. An OR
// group with no alternatives is treated as satisfied.
func unmetRequirements(c *catalog.Catalog, s *catalog.Skill, set map[string]bool) []unmet {
	if s == nil {
		return nil
	}
	var out []unmet
	for _, req := range s.Requires {
		ids := c.ResolveAll(req.SkillIDs)
		if req.NeedsAny {
			if len(ids) == 0 || anyIn(ids, set) {
				continue
			}
			out = append(out, unmet{req: req, ids: ids, needAny: true})
			continue
		}
		var missing []string
		for _, id := range ids {
			if !set[id] {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			out = append(out, unmet{req: req, ids: missing})
		}
	}
	return out
}

func anyIn(ids []string, set map[string]bool) bool {
	for _, id := range ids {
		if set[id] {
			return true
		}
	}
	return false
}
