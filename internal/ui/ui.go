// Package ui renders loadout results for the terminal. Output goes to the
// writer the Printer was built with, stderr for the CLI.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/papapumpkin/loadout/internal/catalog"
	"github.com/papapumpkin/loadout/internal/engine"
)

// Printer writes styled, line-oriented output.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w, or to stderr when w is nil.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stderr
	}
	return &Printer{w: w}
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", styleError.Render("error:"), msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", styleWarn.Render(iconWarn), msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, styleMuted.Render(msg))
}

func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", styleOK.Render(iconOK), msg)
}

// ValidationResult prints the outcome of validating a selection.
func (p *Printer) ValidationResult(name string, skillCount int, res engine.Result) {
	if res.Valid {
		fmt.Fprintf(p.w, "%s — %d skill(s), no errors\n", styleOK.Render(fmt.Sprintf("%s selection %q", iconOK, name)), skillCount)
	} else {
		fmt.Fprintf(p.w, "%s — %d error(s):\n", styleError.Render(fmt.Sprintf("%s selection %q", iconFailed, name)), len(res.Errors))
		for _, e := range res.Errors {
			fmt.Fprintf(p.w, "  %s %s %s\n", styleError.Render(iconBullet), styleMuted.Render("["+string(e.Kind)+"]"), e.Message)
		}
	}
	if len(res.Warnings) == 0 {
		return
	}
	fmt.Fprintf(p.w, "%s\n", styleWarn.Render(fmt.Sprintf("%s %d warning(s):", iconWarn, len(res.Warnings))))
	for _, w := range res.Warnings {
		fmt.Fprintf(p.w, "  %s %s %s\n", styleWarn.Render(iconBullet), styleMuted.Render("["+string(w.Kind)+"]"), w.Message)
	}
}

// Options prints one line per option with its selection state and reasons.
func (p *Printer) Options(title string, opts []engine.Option) {
	fmt.Fprintln(p.w, styleHeading.Render(title))
	if len(opts) == 0 {
		fmt.Fprintln(p.w, styleMuted.Render("  (no skills)"))
		return
	}
	for _, o := range opts {
		fmt.Fprintf(p.w, "  %s\n", optionLine(o))
	}
}

func optionLine(o engine.Option) string {
	var b strings.Builder
	switch {
	case o.Selected:
		b.WriteString(styleSelected.Render(iconSelected + " " + o.Name))
	case o.Disabled:
		b.WriteString(styleDisabled.Render(iconDisabled + " " + o.Name))
	case o.Recommended:
		b.WriteString(styleRecommended.Render(iconRecommended + " " + o.Name))
	default:
		b.WriteString(iconAvailable + " " + o.Name)
	}
	b.WriteString(" " + styleMuted.Render("("+o.ID+")"))

	var notes []string
	if o.Disabled {
		notes = append(notes, "disabled: "+o.DisabledReason)
	}
	if o.Discouraged {
		notes = append(notes, "discouraged: "+o.DiscouragedReason)
	}
	if o.Recommended {
		notes = append(notes, "recommended: "+o.RecommendedReason)
	}
	if len(notes) > 0 {
		b.WriteString(" — " + styleMuted.Render(strings.Join(notes, "; ")))
	}
	return b.String()
}

// CategoryTree prints top-level categories in display order, each followed
// by its subcategories, marking categories whose skills are all disabled.
func (p *Printer) CategoryTree(c *catalog.Catalog, selection []string, opts engine.Options) {
	fmt.Fprintln(p.w, styleHeading.Render("catalog: "+c.Info().Name))
	for _, id := range engine.TopLevelCategories(c) {
		p.categoryLine(c, id, selection, opts, "  ")
		for _, sub := range sortedByOrder(c, engine.Subcategories(c, id)) {
			p.categoryLine(c, sub, selection, opts, "    ")
		}
	}
}

func (p *Printer) categoryLine(c *catalog.Catalog, id string, selection []string, opts engine.Options, indent string) {
	cat := c.Category(id)
	name := cat.Name
	if name == "" {
		name = cat.ID
	}
	var flags []string
	if cat.Exclusive {
		flags = append(flags, "pick one")
	}
	if cat.Required {
		flags = append(flags, "required")
	}

	line := styleBold.Render(name) + " " + styleMuted.Render(fmt.Sprintf("(%d skill(s))", len(engine.SkillsByCategory(c, id))))
	if len(flags) > 0 {
		line += " " + styleMuted.Render("["+strings.Join(flags, ", ")+"]")
	}
	if disabled, reason := engine.IsCategoryAllDisabled(c, id, selection, opts); disabled {
		line += " " + styleError.Render(iconDisabled+" "+reason)
	}
	fmt.Fprintln(p.w, indent+line)
}

// sortedByOrder sorts category IDs by their Order field, keeping the
// given order for ties.
func sortedByOrder(c *catalog.Catalog, ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.SliceStable(out, func(i, j int) bool {
		return c.Category(out[i]).Order < c.Category(out[j]).Order
	})
	return out
}

// LintResult prints the outcome of a catalog lint.
func (p *Printer) LintResult(name string, skillCount int, errs []catalog.LintError) {
	if len(errs) == 0 {
		fmt.Fprintf(p.w, "%s — %d skill(s), no problems\n", styleOK.Render(fmt.Sprintf("%s catalog %q", iconOK, name)), skillCount)
		return
	}
	fmt.Fprintf(p.w, "%s — %d problem(s):\n", styleError.Render(fmt.Sprintf("%s catalog %q", iconFailed, name)), len(errs))
	for _, e := range errs {
		fmt.Fprintf(p.w, "  %s %s %s\n", styleError.Render(iconBullet), styleMuted.Render("["+string(e.Category)+"]"), e.Error())
	}
}

// InstallOrder prints a numbered list of skills.
func (p *Printer) InstallOrder(c *catalog.Catalog, ids []string) {
	fmt.Fprintln(p.w, styleHeading.Render("install order"))
	if len(ids) == 0 {
		fmt.Fprintln(p.w, styleMuted.Render("  (empty selection)"))
		return
	}
	for i, id := range ids {
		fmt.Fprintf(p.w, "  %2d. %s %s\n", i+1, c.Name(id), styleMuted.Render("("+id+")"))
	}
}

// PrintJSON writes value to w as indented JSON.
func PrintJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
