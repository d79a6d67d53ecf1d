package engine

import "github.com/papapumpkin/loadout/internal/catalog"

const (
	react    = "web-framework-react"
	vue      = "web-framework-vue"
	zustand  = "web-state-zustand"
	pinia    = "web-state-pinia"
	redux    = "web-state-redux"
	tailwind = "web-styling-tailwind"
	scss     = "web-styling-scss"
	vitest   = "web-testing-vitest"
)

// webCatalog is a small frontend catalog exercising every relation kind.
func webCatalog() *catalog.Catalog {
	categories := []catalog.Category{
		{ID: "framework", Name: "Framework", Exclusive: true, Required: true, Order: 1},
		{ID: "state", Name: "State", Order: 2},
		{ID: "styling", Name: "Styling", Order: 0},
		{ID: "styling-css", Name: "CSS", Parent: "styling", Order: 5},
		{ID: "styling-utility", Name: "Utility CSS", Parent: "styling", Order: 1},
		{ID: "testing", Name: "Testing", Order: 3},
	}
	skills := []catalog.Skill{
		{
			ID: react, Alias: "react", Name: "React", Category: "framework",
			Recommends: []catalog.Relation{{SkillID: "zustand", Reason: "Lightweight state"}},
		},
		{
			ID: vue, Alias: "vue", Name: "Vue", Category: "framework",
			ConflictsWith: []catalog.Relation{{SkillID: "react", Reason: "Pick one framework"}},
		},
		{
			ID: zustand, Alias: "zustand", Name: "Zustand", Category: "state",
			Requires: []catalog.Requirement{{SkillIDs: []string{"react"}, Reason: "Zustand binds to React"}},
		},
		{
			ID: pinia, Alias: "pinia", Name: "Pinia", Category: "state",
			Requires: []catalog.Requirement{{SkillIDs: []string{"vue"}}},
		},
		{
			ID: redux, Alias: "redux", Name: "Redux", Category: "state",
			ConflictsWith: []catalog.Relation{{SkillID: "zustand", Reason: "One store is enough"}},
			Requires:      []catalog.Requirement{{SkillIDs: []string{"react"}, Reason: "Redux bindings"}},
		},
		{
			ID: tailwind, Alias: "tailwind", Name: "Tailwind", Category: "styling-utility",
			Discourages: []catalog.Relation{{SkillID: "scss", Reason: "Overlapping utility layers"}},
		},
		{
			ID: scss, Alias: "scss", Name: "SCSS", Category: "styling-css",
		},
		{
			ID: vitest, Alias: "vitest", Name: "Vitest", Category: "testing",
			Requires: []catalog.Requirement{{SkillIDs: []string{"react", "vue"}, NeedsAny: true, Reason: "Needs a UI framework"}},
		},
	}
	return catalog.New(catalog.Info{Name: "web"}, skills, categories, nil)
}

// pairCatalog builds a two-skill catalog where a relates to b through
// whichever relation fields the caller fills in.
func pairCatalog(a, b catalog.Skill) *catalog.Catalog {
	a.ID, a.Name, a.Category = "a", "A", "misc"
	b.ID, b.Name, b.Category = "b", "B", "misc"
	return catalog.New(catalog.Info{}, []catalog.Skill{a, b}, []catalog.Category{{ID: "misc"}}, nil)
}
