package catalog

// Manifest is parsed from catalog.toml in the catalog directory root.
type Manifest struct {
	Catalog    Info              `toml:"catalog"`
	Defaults   Defaults          `toml:"defaults"`
	Categories []Category        `toml:"categories"`
	Aliases    map[string]string `toml:"aliases"`
}

// Info holds the catalog's name and description from the manifest.
type Info struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Defaults holds fallback values applied to skills that omit those fields.
type Defaults struct {
	Category string `toml:"category"`
}

// Category groups skills and carries exclusivity and ordering metadata.
type Category struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Exclusive   bool   `toml:"exclusive"` // At most one selected skill may belong to it
	Required    bool   `toml:"required"`  // Informational; never enforced by the engine
	Order       int    `toml:"order"`
	Parent      string `toml:"parent"` // "" = top-level
}

// Relation is a directed edge to another skill with a human-readable reason.
type Relation struct {
	SkillID string `toml:"skill" yaml:"skill"`
	Reason  string `toml:"reason" yaml:"reason"`
}

// Requirement is a prerequisite group. With NeedsAny unset every skill in
// SkillIDs must be selected; with NeedsAny set at least one must be.
type Requirement struct {
	SkillIDs []string `toml:"skills" yaml:"skills"`
	NeedsAny bool     `toml:"needs_any" yaml:"needs_any"`
	Reason   string   `toml:"reason" yaml:"reason"`
}

// Alternative names a skill that serves a similar purpose. Not enforced.
type Alternative struct {
	SkillID string `toml:"skill" yaml:"skill"`
	Purpose string `toml:"purpose" yaml:"purpose"`
}

// Skill is a selectable capability unit, parsed from a skill file's frontmatter.
type Skill struct {
	ID                string        `toml:"id" yaml:"id"`
	Alias             string        `toml:"alias" yaml:"alias"`
	Name              string        `toml:"name" yaml:"name"`
	Category          string        `toml:"category" yaml:"category"`
	CategoryExclusive bool          `toml:"category_exclusive" yaml:"category_exclusive"`
	Tags              []string      `toml:"tags" yaml:"tags"`
	Description       string        `toml:"description" yaml:"description"`
	ConflictsWith     []Relation    `toml:"conflicts_with" yaml:"conflicts_with"`
	Recommends        []Relation    `toml:"recommends" yaml:"recommends"`
	Discourages       []Relation    `toml:"discourages" yaml:"discourages"`
	Requires          []Requirement `toml:"requires" yaml:"requires"`
	Alternatives      []Alternative `toml:"alternatives" yaml:"alternatives"`

	// RecommendedBy is the inverse of Recommends, filled in by New.
	RecommendedBy []Relation `toml:"-" yaml:"-"`

	Body       string `toml:"-" yaml:"-"` // Markdown body after the frontmatter
	SourceFile string `toml:"-" yaml:"-"` // Relative path for error context
}

// DisplayName returns the skill's name, falling back to its ID.
func (s *Skill) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}
