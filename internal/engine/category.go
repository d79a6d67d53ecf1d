package engine

import (
	"sort"

	"github.com/papapumpkin/loadout/internal/catalog"
)

// Option is a display-ready view of one skill against a selection.
type Option struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Selected          bool   `json:"selected"`
	Disabled          bool   `json:"disabled"`
	DisabledReason    string `json:"disabled_reason,omitempty"`
	Discouraged       bool   `json:"discouraged"`
	DiscouragedReason string `json:"discouraged_reason,omitempty"`
	Recommended       bool   `json:"recommended"`
	RecommendedReason string `json:"recommended_reason,omitempty"`
}

// SkillsByCategory returns the skills in categoryID, in catalog order.
func SkillsByCategory(c *catalog.Catalog, categoryID string) []*catalog.Skill {
	var out []*catalog.Skill
	for _, s := range c.Skills() {
		if s.Category == categoryID {
			out = append(out, s)
		}
	}
	return out
}

// TopLevelCategories returns the IDs of categories without a parent,
// sorted by Order. Equal orders keep catalog order.
func TopLevelCategories(c *catalog.Catalog) []string {
	var top []*catalog.Category
	for _, cat := range c.Categories() {
		if cat.Parent == "" {
			top = append(top, cat)
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Order < top[j].Order
	})
	ids := make([]string, len(top))
	for i, cat := range top {
		ids[i] = cat.ID
	}
	return ids
}

// Subcategories returns the IDs of categories whose parent is parentID,
// in catalog order.
func Subcategories(c *catalog.Catalog, parentID string) []string {
	var ids []string
	for _, cat := range c.Categories() {
		if cat.Parent == parentID && parentID != "" {
			ids = append(ids, cat.ID)
		}
	}
	return ids
}

// IsCategoryAllDisabled reports whether every skill in categoryID is
// disabled against selection. An empty category is never all disabled,
// and under expert mode no category is. The reason carries the first
// skill's disable reason.
func IsCategoryAllDisabled(c *catalog.Catalog, categoryID string, selection []string, opts Options) (bool, string) {
	skills := SkillsByCategory(c, categoryID)
	if len(skills) == 0 {
		return false, ""
	}
	for _, s := range skills {
		if !IsDisabled(c, s.ID, selection, opts) {
			return false, ""
		}
	}
	reason, _ := DisableReason(c, skills[0].ID, selection, opts)
	return true, "all skills disabled: " + reason
}

// AvailableSkills builds an Option for every skill in categoryID.
func AvailableSkills(c *catalog.Catalog, categoryID string, selection []string, opts Options) []Option {
	set := selectedSet(c, selection)
	skills := SkillsByCategory(c, categoryID)
	out := make([]Option, 0, len(skills))
	for _, s := range skills {
		o := Option{
			ID:       s.ID,
			Name:     s.DisplayName(),
			Selected: set[s.ID],
		}
		o.DisabledReason, o.Disabled = DisableReason(c, s.ID, selection, opts)
		o.DiscouragedReason, o.Discouraged = DiscourageReason(c, s.ID, selection)
		o.RecommendedReason, o.Recommended = RecommendReason(c, s.ID, selection)
		out = append(out, o)
	}
	return out
}
