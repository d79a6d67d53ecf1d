package engine

import (
	"fmt"

	"github.com/papapumpkin/loadout/internal/catalog"
	"github.com/papapumpkin/loadout/internal/dag"
)

// InstallOrder returns the selected skills ordered so that each skill comes
// after every selected skill it directly requires. Requirements on skills
// outside the selection are ignored; nothing is added. Unrelated skills keep
// catalog order, and skills unknown to the catalog come last in selection
// order. A requirement cycle inside the selection returns an error wrapping
// dag.ErrCycle.
func InstallOrder(c *catalog.Catalog, selection []string) ([]string, error) {
	ids := dedupe(c.ResolveAll(selection))

	pos := make(map[string]int, c.Len())
	for i, id := range c.SkillIDs() {
		pos[id] = i
	}

	g := dag.New()
	for i, id := range ids {
		order, ok := pos[id]
		if !ok {
			order = c.Len() + i
		}
		if err := g.AddNode(id, order); err != nil {
			return nil, err
		}
	}

	for _, id := range ids {
		s := c.Skill(id)
		if s == nil {
			continue
		}
		for _, req := range s.Requires {
			for _, dep := range c.ResolveAll(req.SkillIDs) {
				if dep == id || !g.Has(dep) {
					continue
				}
				if err := g.AddEdge(id, dep); err != nil {
					return nil, fmt.Errorf("ordering %s: %w", id, err)
				}
			}
		}
	}
	return g.TopologicalSort()
}
