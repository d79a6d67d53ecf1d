package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/papapumpkin/loadout/internal/catalog"
	"github.com/papapumpkin/loadout/internal/engine"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(catalog.Info{Name: "web"},
		[]catalog.Skill{
			{ID: "web-framework-react", Alias: "react", Name: "React", Category: "framework"},
			{ID: "web-state-zustand", Alias: "zustand", Name: "Zustand", Category: "state",
				Requires: []catalog.Requirement{{SkillIDs: []string{"react"}, Reason: "Needs React"}}},
			{ID: "web-styling-scss", Name: "SCSS", Category: "css"},
		},
		[]catalog.Category{
			{ID: "state", Name: "State", Order: 2},
			{ID: "framework", Name: "Framework", Order: 1, Exclusive: true, Required: true},
			{ID: "styling", Name: "Styling", Order: 3},
			{ID: "css", Name: "CSS", Parent: "styling", Order: 2},
			{ID: "utility", Name: "Utility", Parent: "styling", Order: 1},
		}, nil)
}

func assertContains(t *testing.T, output string, substrs ...string) {
	t.Helper()
	for _, s := range substrs {
		if !strings.Contains(output, s) {
			t.Errorf("expected output to contain %q, got:\n%s", s, output)
		}
	}
}

func TestValidationResult(t *testing.T) {
	t.Parallel()

	t.Run("valid with warnings", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf).ValidationResult("loadout.toml", 2, engine.Result{
			Valid: true,
			Warnings: []engine.ValidationWarning{{
				Kind: engine.KindMissingRecommendation, Message: "React recommends Zustand",
			}},
		})
		assertContains(t, buf.String(), `selection "loadout.toml"`, "2 skill(s), no errors",
			"1 warning(s)", "[missing_recommendation]", "React recommends Zustand")
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf).ValidationResult("x", 1, engine.Result{
			Errors: []engine.ValidationError{{Kind: engine.KindMissingRequirement, Message: "Zustand requires React"}},
		})
		out := buf.String()
		assertContains(t, out, "1 error(s)", "[missing_requirement]", "Zustand requires React")
		if strings.Contains(out, "warning") {
			t.Errorf("no warnings section expected, got:\n%s", out)
		}
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf).Options("State", []engine.Option{
		{ID: "a", Name: "Alpha", Selected: true},
		{ID: "b", Name: "Beta", Disabled: true, DisabledReason: "requires Alpha"},
		{ID: "c", Name: "Gamma", Recommended: true, RecommendedReason: "recommended by Alpha",
			Discouraged: true, DiscouragedReason: "discouraged with Beta"},
	})
	assertContains(t, buf.String(), "State", "Alpha (a)", "disabled: requires Alpha",
		"recommended: recommended by Alpha", "discouraged: discouraged with Beta")

	buf.Reset()
	New(&buf).Options("Empty", nil)
	assertContains(t, buf.String(), "(no skills)")
}

func TestCategoryTree(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf).CategoryTree(testCatalog(), nil, engine.Options{})
	out := buf.String()

	assertContains(t, out, "catalog: web", "[pick one, required]", "all skills disabled: Needs React (requires React)")

	order := []string{"Framework", "State", "Styling", "Utility", "CSS"}
	last := -1
	for _, name := range order {
		idx := strings.Index(out, name)
		if idx <= last {
			t.Errorf("expected %q after previous categories, got:\n%s", name, out)
		}
		last = idx
	}
}

func TestLintResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf).LintResult("web", 3, nil)
	assertContains(t, buf.String(), `catalog "web"`, "no problems")

	buf.Reset()
	New(&buf).LintResult("web", 3, []catalog.LintError{{
		Category: catalog.LintUnknownRef, SkillID: "a", SourceFile: "a.md", Err: catalog.ErrUnknownRef,
	}})
	assertContains(t, buf.String(), "1 problem(s)", "[unknown_ref]", "a.md: skill a")
}

func TestInstallOrder(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf).InstallOrder(testCatalog(), []string{"web-framework-react", "web-state-zustand"})
	assertContains(t, buf.String(), " 1. React", " 2. Zustand")
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := PrintJSON(&buf, engine.Result{Valid: true, Errors: []engine.ValidationError{}}); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["valid"] != true {
		t.Errorf("valid = %v", decoded["valid"])
	}
}
