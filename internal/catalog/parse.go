package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the catalog manifest in the directory root.
const ManifestFile = "catalog.toml"

// Load reads a catalog directory, parsing catalog.toml and every *.md skill
// file in the root and its immediate subdirectories. Skill files are read in
// lexical path order, which becomes the catalog iteration order.
func Load(dir string, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	manifest, err := loadManifest(dir)
	if err != nil {
		return nil, err
	}

	files, err := skillFiles(dir)
	if err != nil {
		return nil, err
	}

	skills := make([]Skill, 0, len(files))
	for _, rel := range files {
		s, err := parseSkillFile(filepath.Join(dir, rel), manifest.Defaults)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", rel, err)
		}
		s.SourceFile = rel
		skills = append(skills, s)
		logger.Debug("loaded skill", zap.String("id", s.ID), zap.String("file", rel))
	}

	c := New(manifest.Catalog, skills, manifest.Categories, manifest.Aliases)
	logger.Info("catalog loaded",
		zap.String("dir", dir),
		zap.String("name", manifest.Catalog.Name),
		zap.Int("skills", c.Len()),
		zap.Int("categories", len(c.categoryIDs)))
	return c, nil
}

func loadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, ErrNoManifest
		}
		return Manifest{}, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}
	return m, nil
}

// skillFiles lists *.md files in dir and its immediate subdirectories,
// relative to dir and sorted lexically.
func skillFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			if isSkillFile(e.Name()) {
				files = append(files, e.Name())
			}
			continue
		}
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		sub, err := os.ReadDir(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		for _, se := range sub {
			if !se.IsDir() && isSkillFile(se.Name()) {
				files = append(files, filepath.Join(e.Name(), se.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func isSkillFile(name string) bool {
	return strings.HasSuffix(name, ".md") && !strings.HasPrefix(name, ".")
}

// parseSkillFile reads a markdown file with +++ TOML or --- YAML frontmatter.
func parseSkillFile(path string, defaults Defaults) (Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Skill{}, err
	}
	return parseSkill(data, defaults)
}

func parseSkill(data []byte, defaults Defaults) (Skill, error) {
	format, frontmatter, body, err := splitFrontmatter(string(data))
	if err != nil {
		return Skill{}, err
	}

	var s Skill
	switch format {
	case formatTOML:
		if err := toml.Unmarshal([]byte(frontmatter), &s); err != nil {
			return Skill{}, fmt.Errorf("parsing TOML frontmatter: %w", err)
		}
	case formatYAML:
		dec := yaml.NewDecoder(bytes.NewReader([]byte(frontmatter)))
		if err := dec.Decode(&s); err != nil {
			return Skill{}, fmt.Errorf("parsing YAML frontmatter: %w", err)
		}
	}

	s.Body = strings.TrimSpace(body)
	if s.Name == "" {
		s.Name = s.ID
	}
	if s.Category == "" {
		s.Category = defaults.Category
	}
	return s, nil
}

type frontmatterFormat int

const (
	formatTOML frontmatterFormat = iota
	formatYAML
)

// splitFrontmatter splits content on +++ (TOML) or --- (YAML) delimiters.
// Expected format:
//
//	+++
//	<TOML>
//	+++
//	<body>
func splitFrontmatter(content string) (frontmatterFormat, string, string, error) {
	content = strings.TrimLeft(content, " \t\r\n")

	var (
		delim  string
		format frontmatterFormat
	)
	switch {
	case strings.HasPrefix(content, "+++"):
		delim, format = "+++", formatTOML
	case strings.HasPrefix(content, "---"):
		delim, format = "---", formatYAML
	default:
		return 0, "", "", ErrNoFrontmatter
	}

	rest := content[len(delim):]
	idx := strings.Index(rest, "\n"+delim)
	if idx < 0 {
		return 0, "", "", ErrUnterminatedFrontmatter
	}

	frontmatter := rest[:idx]
	body := rest[idx+1+len(delim):]
	return format, frontmatter, body, nil
}
