package catalog

// Resolve maps a short name to its canonical skill ID. References that are
// not alias keys are returned unchanged, whether they are already canonical
// or unknown.
func (c *Catalog) Resolve(ref string) string {
	if id, ok := c.aliases[ref]; ok {
		return id
	}
	return ref
}

// ResolveAll resolves every reference in refs, preserving order.
func (c *Catalog) ResolveAll(refs []string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = c.Resolve(ref)
	}
	return out
}

// Alias returns the short name registered for a canonical ID, or id itself
// when no alias exists. When several aliases map to the same ID the
// lexically smallest one is returned.
func (c *Catalog) Alias(id string) string {
	if short, ok := c.aliasesReverse[id]; ok {
		return short
	}
	return id
}

// Aliases returns a copy of the short name → canonical ID table.
func (c *Catalog) Aliases() map[string]string {
	out := make(map[string]string, len(c.aliases))
	for k, v := range c.aliases {
		out[k] = v
	}
	return out
}
