package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleSkills() []Skill {
	return []Skill{
		{
			ID: "web-framework-react", Alias: "react", Name: "React", Category: "framework",
			Recommends: []Relation{{SkillID: "zustand", Reason: "small store"}},
		},
		{
			ID: "web-state-zustand", Alias: "zustand", Name: "Zustand", Category: "state",
			Requires: []Requirement{{SkillIDs: []string{"react"}}},
		},
		{ID: "web-state-redux", Category: "state"},
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	c := New(Info{}, sampleSkills(), nil, map[string]string{"rx": "web-state-redux"})

	tests := []struct {
		ref  string
		want string
	}{
		{"react", "web-framework-react"},
		{"rx", "web-state-redux"},
		{"web-framework-react", "web-framework-react"},
		{"unknown", "unknown"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := c.Resolve(tt.ref); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}

	got := c.ResolveAll([]string{"zustand", "react", "ghost"})
	if diff := cmp.Diff([]string{"web-state-zustand", "web-framework-react", "ghost"}, got); diff != "" {
		t.Errorf("ResolveAll mismatch (-want +got):\n%s", diff)
	}
}

func TestAlias(t *testing.T) {
	t.Parallel()
	c := New(Info{}, sampleSkills(), nil, map[string]string{"r": "web-framework-react"})

	if got := c.Alias("web-framework-react"); got != "r" {
		t.Errorf("Alias picks the smallest short name, got %q", got)
	}
	if got := c.Alias("web-state-redux"); got != "web-state-redux" {
		t.Errorf("Alias without short name = %q", got)
	}
}

func TestNew_ManifestAliasWins(t *testing.T) {
	t.Parallel()
	c := New(Info{}, sampleSkills(), nil, map[string]string{"react": "web-state-redux"})

	if got := c.Resolve("react"); got != "web-state-redux" {
		t.Errorf("Resolve(react) = %q, want manifest target", got)
	}
}

func TestNew_RecommendedBy(t *testing.T) {
	t.Parallel()
	c := New(Info{}, sampleSkills(), nil, nil)

	got := c.Skill("web-state-zustand").RecommendedBy
	want := []Relation{{SkillID: "web-framework-react", Reason: "small store"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RecommendedBy mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()
	skills := sampleSkills()
	c := New(Info{}, skills, nil, nil)

	skills[1].Requires[0].SkillIDs[0] = "mutated"
	skills[0].Name = "Mutated"

	if got := c.Skill("web-state-zustand").Requires[0].SkillIDs[0]; got != "react" {
		t.Errorf("catalog shares requirement slice with input: %q", got)
	}
	if got := c.Skill("web-framework-react").Name; got != "React" {
		t.Errorf("catalog shares skill with input: %q", got)
	}
}

func TestNew_OrderAndDuplicates(t *testing.T) {
	t.Parallel()
	skills := append(sampleSkills(), Skill{ID: "web-framework-react", Name: "Second", SourceFile: "dup.md"})
	cats := []Category{{ID: "state"}, {ID: "framework"}, {ID: "state", Name: "again"}}
	c := New(Info{Name: "web"}, skills, cats, nil)

	if diff := cmp.Diff([]string{"web-framework-react", "web-state-zustand", "web-state-redux"}, c.SkillIDs()); diff != "" {
		t.Errorf("skill order mismatch (-want +got):\n%s", diff)
	}
	if c.Skill("web-framework-react").Name != "React" {
		t.Error("first skill with an ID should win")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d", c.Len())
	}
	var catIDs []string
	for _, cat := range c.Categories() {
		catIDs = append(catIDs, cat.ID)
	}
	if diff := cmp.Diff([]string{"state", "framework"}, catIDs); diff != "" {
		t.Errorf("category order mismatch (-want +got):\n%s", diff)
	}
	if c.Category("state").Name != "" {
		t.Error("first category with an ID should win")
	}
	if c.Info().Name != "web" {
		t.Errorf("Info().Name = %q", c.Info().Name)
	}
}

func TestName(t *testing.T) {
	t.Parallel()
	c := New(Info{}, sampleSkills(), nil, nil)

	tests := map[string]string{
		"react":           "React",
		"web-state-redux": "web-state-redux",
		"ghost":           "ghost",
	}
	for ref, want := range tests {
		if got := c.Name(ref); got != want {
			t.Errorf("Name(%q) = %q, want %q", ref, got, want)
		}
	}
	if c.Lookup("zustand") == nil || c.Lookup("ghost") != nil {
		t.Error("Lookup should resolve aliases and return nil for unknown refs")
	}
}
