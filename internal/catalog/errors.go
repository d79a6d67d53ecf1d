package catalog

import "errors"

// Sentinel errors for catalog loading and lint checks.
var (
	// ErrNoManifest indicates no catalog.toml was found in the catalog directory.
	ErrNoManifest = errors.New("catalog.toml not found in catalog directory")
	// ErrNoFrontmatter indicates a skill file does not start with a +++ or --- block.
	ErrNoFrontmatter = errors.New("skill file has no frontmatter")
	// ErrUnterminatedFrontmatter indicates the closing frontmatter delimiter is missing.
	ErrUnterminatedFrontmatter = errors.New("missing closing frontmatter delimiter")
	// ErrDuplicateID indicates two or more skills share the same ID.
	ErrDuplicateID = errors.New("duplicate skill ID")
	// ErrMissingField indicates a required field (e.g. id, category) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrUnknownCategory indicates a reference to a category that does not exist.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownRef indicates a relation names a skill that does not exist.
	ErrUnknownRef = errors.New("relation references unknown skill")
	// ErrSelfRef indicates a skill declares a relation to itself.
	ErrSelfRef = errors.New("skill references itself")
	// ErrAliasCollision indicates an alias shadows a canonical ID or points nowhere.
	ErrAliasCollision = errors.New("alias collision")
	// ErrRequirementCycle indicates skills that require each other.
	ErrRequirementCycle = errors.New("requirement cycle")
	// ErrExclusiveMismatch indicates a skill claims exclusivity its category does not have.
	ErrExclusiveMismatch = errors.New("category_exclusive on non-exclusive category")
)

// LintCategory classifies a lint error for programmatic handling.
type LintCategory string

const (
	LintMissingField      LintCategory = "missing_field"
	LintDuplicateID       LintCategory = "duplicate_id"
	LintUnknownCategory   LintCategory = "unknown_category"
	LintUnknownRef        LintCategory = "unknown_ref"
	LintSelfRef           LintCategory = "self_ref"
	LintAliasCollision    LintCategory = "alias_collision"
	LintRequirementCycle  LintCategory = "requirement_cycle"
	LintExclusiveMismatch LintCategory = "exclusive_conflict"
)

// LintError records a catalog integrity problem with source context.
type LintError struct {
	Category   LintCategory
	SkillID    string
	SourceFile string
	Field      string
	Err        error
}

// Error returns a human-readable string including source file and skill context.
func (e *LintError) Error() string {
	src := e.SourceFile
	if src == "" {
		src = "catalog.toml"
	}
	if e.SkillID != "" {
		return src + ": skill " + e.SkillID + ": " + e.Err.Error()
	}
	return src + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *LintError) Unwrap() error {
	return e.Err
}
