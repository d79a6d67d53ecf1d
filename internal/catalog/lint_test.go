package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestLint_CleanCatalog(t *testing.T) {
	t.Parallel()
	c := New(Info{}, sampleSkills(), []Category{{ID: "framework"}, {ID: "state"}}, nil)

	if errs := Lint(c); len(errs) != 0 {
		for _, e := range errs {
			t.Errorf("unexpected lint error: %v", e.Error())
		}
	}
}

func TestLint(t *testing.T) {
	t.Parallel()

	cats := []Category{{ID: "misc"}, {ID: "solo", Exclusive: true}}

	tests := []struct {
		name       string
		skills     []Skill
		categories []Category
		aliases    map[string]string
		wantCat    LintCategory
		wantErr    error
		wantMsg    string
	}{
		{
			name:    "missing id",
			skills:  []Skill{{Name: "Nameless", Category: "misc", SourceFile: "nameless.md"}},
			wantCat: LintMissingField,
			wantErr: ErrMissingField,
			wantMsg: "nameless.md",
		},
		{
			name:    "missing category",
			skills:  []Skill{{ID: "a"}},
			wantCat: LintMissingField,
			wantErr: ErrMissingField,
			wantMsg: "category",
		},
		{
			name:    "unknown category",
			skills:  []Skill{{ID: "a", Category: "nope"}},
			wantCat: LintUnknownCategory,
			wantErr: ErrUnknownCategory,
		},
		{
			name:       "unknown parent category",
			categories: []Category{{ID: "misc", Parent: "ghost"}},
			wantCat:    LintUnknownCategory,
			wantErr:    ErrUnknownCategory,
			wantMsg:    `parent "ghost"`,
		},
		{
			name:    "unknown conflict target",
			skills:  []Skill{{ID: "a", Category: "misc", ConflictsWith: []Relation{{SkillID: "ghost"}}}},
			wantCat: LintUnknownRef,
			wantErr: ErrUnknownRef,
			wantMsg: "conflicts_with",
		},
		{
			name:    "unknown requirement",
			skills:  []Skill{{ID: "a", Category: "misc", Requires: []Requirement{{SkillIDs: []string{"ghost"}, NeedsAny: true}}}},
			wantCat: LintUnknownRef,
			wantErr: ErrUnknownRef,
		},
		{
			name:    "empty requirement group",
			skills:  []Skill{{ID: "a", Category: "misc", Requires: []Requirement{{Reason: "nothing"}}}},
			wantCat: LintMissingField,
			wantErr: ErrMissingField,
		},
		{
			name:    "self reference through alias",
			skills:  []Skill{{ID: "a", Alias: "short", Category: "misc", Recommends: []Relation{{SkillID: "short"}}}},
			wantCat: LintSelfRef,
			wantErr: ErrSelfRef,
		},
		{
			name:    "duplicate id",
			skills:  []Skill{{ID: "a", Category: "misc", SourceFile: "a.md"}, {ID: "a", Category: "misc", SourceFile: "a2.md"}},
			wantCat: LintDuplicateID,
			wantErr: ErrDuplicateID,
			wantMsg: "already defined in a.md",
		},
		{
			name:    "alias shadows id",
			skills:  []Skill{{ID: "a", Category: "misc"}, {ID: "b", Category: "misc"}},
			aliases: map[string]string{"a": "b"},
			wantCat: LintAliasCollision,
			wantErr: ErrAliasCollision,
			wantMsg: "shadows",
		},
		{
			name:    "alias to unknown skill",
			skills:  []Skill{{ID: "a", Category: "misc"}},
			aliases: map[string]string{"x": "ghost"},
			wantCat: LintAliasCollision,
			wantErr: ErrAliasCollision,
			wantMsg: "unknown skill",
		},
		{
			name:    "exclusive flag on open category",
			skills:  []Skill{{ID: "a", Category: "misc", CategoryExclusive: true}},
			wantCat: LintExclusiveMismatch,
			wantErr: ErrExclusiveMismatch,
		},
		{
			name: "requirement cycle",
			skills: []Skill{
				{ID: "a", Category: "misc", Requires: []Requirement{{SkillIDs: []string{"b"}}}},
				{ID: "b", Category: "misc", Requires: []Requirement{{SkillIDs: []string{"c"}}}},
				{ID: "c", Category: "misc", Requires: []Requirement{{SkillIDs: []string{"a"}}}},
			},
			wantCat: LintRequirementCycle,
			wantErr: ErrRequirementCycle,
			wantMsg: "a → b → c → a",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			categories := tt.categories
			if categories == nil {
				categories = cats
			}
			errs := Lint(New(Info{}, tt.skills, categories, tt.aliases))
			if len(errs) != 1 {
				var msgs []string
				for _, e := range errs {
					msgs = append(msgs, e.Error())
				}
				t.Fatalf("expected 1 lint error, got %d: %s", len(errs), strings.Join(msgs, "; "))
			}
			e := errs[0]
			if e.Category != tt.wantCat {
				t.Errorf("category = %q, want %q", e.Category, tt.wantCat)
			}
			if !errors.Is(&e, tt.wantErr) {
				t.Errorf("error %v should wrap %v", e.Err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(e.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", e.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLint_OrRequirementsDoNotFormCycles(t *testing.T) {
	t.Parallel()
	c := New(Info{}, []Skill{
		{ID: "a", Category: "misc", Requires: []Requirement{{SkillIDs: []string{"b"}, NeedsAny: true}}},
		{ID: "b", Category: "misc", Requires: []Requirement{{SkillIDs: []string{"a"}}}},
	}, []Category{{ID: "misc"}}, nil)

	if errs := Lint(c); len(errs) != 0 {
		t.Errorf("expected no lint errors, got %d: %v", len(errs), errs[0].Error())
	}
}
