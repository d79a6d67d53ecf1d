package engine

import (
	"strings"

	"github.com/papapumpkin/loadout/internal/catalog"
)

// DisableReason explains why candidate is disabled: the first conflict,
// otherwise the first unmet requirement. The boolean is false when the
// candidate is not disabled, including in expert mode.
func DisableReason(c *catalog.Catalog, candidate string, selection []string, opts Options) (string, bool) {
	if opts.ExpertMode {
		return "", false
	}
	id := c.Resolve(candidate)
	set := selectedSet(c, selection)
	if h, ok := findConflict(c, id, selection, set); ok {
		return conflictReason(c, h), true
	}
	if missing := unmetRequirements(c, c.Skill(id), set); len(missing) > 0 {
		return requirementReason(c, missing[0]), true
	}
	return "", false
}

// DiscourageReason explains why candidate is discouraged.
func DiscourageReason(c *catalog.Catalog, candidate string, selection []string) (string, bool) {
	h, ok := findDiscouraged(c, c.Resolve(candidate), selection, selectedSet(c, selection))
	if !ok {
		return "", false
	}
	return withReason(h.reason, "discouraged with "+c.Name(h.other)), true
}

// RecommendReason explains which selected skill recommends candidate.
func RecommendReason(c *catalog.Catalog, candidate string, selection []string) (string, bool) {
	h, ok := findRecommender(c, c.Resolve(candidate), selection)
	if !ok {
		return "", false
	}
	return withReason(h.reason, "recommended by "+c.Name(h.other)), true
}

func conflictReason(c *catalog.Catalog, h hit) string {
	return withReason(h.reason, "conflicts with "+c.Name(h.other))
}

func requirementReason(c *catalog.Catalog, u unmet) string {
	return withReason(u.req.Reason, "requires "+joinNames(c, u.ids, u.needAny))
}

// joinNames lists display names, separated by "or" for OR groups.
func joinNames(c *catalog.Catalog, ids []string, needAny bool) string {
	display := make([]string, len(ids))
	for i, id := range ids {
		display[i] = c.Name(id)
	}
	if needAny {
		return strings.Join(display, " or ")
	}
	return strings.Join(display, ", ")
}

// withReason prefixes detail with the declared reason, when there is one.
func withReason(reason, detail string) string {
	if reason == "" {
		return detail
	}
	return reason + " (" + detail + ")"
}
