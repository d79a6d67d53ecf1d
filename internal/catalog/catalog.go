// Package catalog holds the immutable skill catalog: skills, categories,
// their declared relations, and the alias table that maps short names to
// canonical skill IDs. A Catalog is built once per session, by Load or New,
// and is safe for concurrent readers.
package catalog

// Catalog is the read-only set of skills and categories for a session.
type Catalog struct {
	info Info

	skills   map[string]*Skill
	skillIDs []string // catalog iteration order

	categories  map[string]*Category
	categoryIDs []string

	aliases        map[string]string // short name → canonical ID
	aliasesReverse map[string]string // canonical ID → short name

	// duplicates records skills dropped because an earlier skill
	// already claimed the same ID. Reported by Lint.
	duplicates []Skill
}

// New builds a Catalog from parsed skills, categories, and aliases. The
// inputs are copied; later changes to them do not affect the Catalog.
// Skill and category order is preserved as the catalog iteration order.
// When two skills share an ID the first one wins.
func New(info Info, skills []Skill, categories []Category, aliases map[string]string) *Catalog {
	c := &Catalog{
		info:           info,
		skills:         make(map[string]*Skill, len(skills)),
		skillIDs:       make([]string, 0, len(skills)),
		categories:     make(map[string]*Category, len(categories)),
		categoryIDs:    make([]string, 0, len(categories)),
		aliases:        make(map[string]string, len(aliases)),
		aliasesReverse: make(map[string]string, len(aliases)),
	}

	for i := range categories {
		cat := categories[i]
		if _, ok := c.categories[cat.ID]; ok {
			continue
		}
		c.categories[cat.ID] = &cat
		c.categoryIDs = append(c.categoryIDs, cat.ID)
	}

	for i := range skills {
		s := cloneSkill(skills[i])
		if _, ok := c.skills[s.ID]; ok {
			c.duplicates = append(c.duplicates, s)
			continue
		}
		c.skills[s.ID] = &s
		c.skillIDs = append(c.skillIDs, s.ID)
	}

	// Manifest aliases take precedence over aliases declared on skills.
	for short, id := range aliases {
		c.aliases[short] = id
	}
	for _, id := range c.skillIDs {
		s := c.skills[id]
		if s.Alias == "" {
			continue
		}
		if _, ok := c.aliases[s.Alias]; !ok {
			c.aliases[s.Alias] = s.ID
		}
	}
	for short, id := range c.aliases {
		if prev, ok := c.aliasesReverse[id]; ok && prev < short {
			continue
		}
		c.aliasesReverse[id] = short
	}

	// Fill the inverse recommendation view.
	for _, id := range c.skillIDs {
		s := c.skills[id]
		for _, rec := range s.Recommends {
			target, ok := c.skills[c.Resolve(rec.SkillID)]
			if !ok {
				continue
			}
			target.RecommendedBy = append(target.RecommendedBy, Relation{SkillID: s.ID, Reason: rec.Reason})
		}
	}

	return c
}

// Info returns the catalog's manifest information.
func (c *Catalog) Info() Info {
	return c.info
}

// Skill returns the skill with the given canonical ID, or nil if unknown.
// Aliases are not resolved; use Lookup for that.
func (c *Catalog) Skill(id string) *Skill {
	return c.skills[id]
}

// Lookup resolves ref through the alias table and returns the skill,
// or nil when nothing matches.
func (c *Catalog) Lookup(ref string) *Skill {
	return c.skills[c.Resolve(ref)]
}

// SkillIDs returns all canonical skill IDs in catalog iteration order.
func (c *Catalog) SkillIDs() []string {
	out := make([]string, len(c.skillIDs))
	copy(out, c.skillIDs)
	return out
}

// Skills returns all skills in catalog iteration order.
func (c *Catalog) Skills() []*Skill {
	out := make([]*Skill, 0, len(c.skillIDs))
	for _, id := range c.skillIDs {
		out = append(out, c.skills[id])
	}
	return out
}

// Category returns the category with the given ID, or nil if unknown.
func (c *Catalog) Category(id string) *Category {
	return c.categories[id]
}

// Categories returns all categories in catalog iteration order.
func (c *Catalog) Categories() []*Category {
	out := make([]*Category, 0, len(c.categoryIDs))
	for _, id := range c.categoryIDs {
		out = append(out, c.categories[id])
	}
	return out
}

// Len returns the number of skills in the catalog.
func (c *Catalog) Len() int {
	return len(c.skillIDs)
}

// Name returns the display name for ref, resolving aliases first. Unknown
// references are returned unchanged so messages stay readable.
func (c *Catalog) Name(ref string) string {
	if s := c.Lookup(ref); s != nil {
		return s.DisplayName()
	}
	return ref
}

// cloneSkill returns a deep copy of s so the Catalog never shares slices
// with its caller.
func cloneSkill(s Skill) Skill {
	out := s
	out.Tags = cloneStrings(s.Tags)
	out.ConflictsWith = cloneRelations(s.ConflictsWith)
	out.Recommends = cloneRelations(s.Recommends)
	out.Discourages = cloneRelations(s.Discourages)
	out.RecommendedBy = nil
	if len(s.Requires) > 0 {
		out.Requires = make([]Requirement, len(s.Requires))
		for i, r := range s.Requires {
			out.Requires[i] = r
			out.Requires[i].SkillIDs = cloneStrings(r.SkillIDs)
		}
	}
	if len(s.Alternatives) > 0 {
		out.Alternatives = make([]Alternative, len(s.Alternatives))
		copy(out.Alternatives, s.Alternatives)
	}
	return out
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneRelations(in []Relation) []Relation {
	if len(in) == 0 {
		return nil
	}
	out := make([]Relation, len(in))
	copy(out, in)
	return out
}
