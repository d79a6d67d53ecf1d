// Package selection reads and writes the caller-owned selection file. The
// engine never sees this file; commands load it, pass the skill list to the
// engine, and save it back after an edit.
package selection

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Selection is persisted in loadout.toml.
type Selection struct {
	ExpertMode bool     `toml:"expert_mode"`
	Skills     []string `toml:"skills"`
}

// Load reads the selection file at path.
// Returns an empty selection if the file does not exist.
func Load(path string) (*Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Selection{}, nil
		}
		return nil, fmt.Errorf("reading selection file: %w", err)
	}

	var s Selection
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing selection file: %w", err)
	}
	return &s, nil
}

// Save writes the selection file atomically (write temp + rename).
func Save(path string, s *Selection) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling selection: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp selection file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming selection file: %w", err)
	}
	return nil
}

// Contains reports whether id is in the selection. The comparison is
// literal; callers resolve aliases first.
func (s *Selection) Contains(id string) bool {
	for _, have := range s.Skills {
		if have == id {
			return true
		}
	}
	return false
}

// Add appends id unless it is already present. Reports whether the
// selection changed.
func (s *Selection) Add(id string) bool {
	if s.Contains(id) {
		return false
	}
	s.Skills = append(s.Skills, id)
	return true
}

// Remove deletes every occurrence of id, preserving the order of the rest.
// Reports whether the selection changed.
func (s *Selection) Remove(id string) bool {
	return s.RemoveFunc(func(have string) bool { return have == id })
}

// RemoveFunc deletes every entry for which match returns true, preserving
// the order of the rest. Reports whether the selection changed.
func (s *Selection) RemoveFunc(match func(ref string) bool) bool {
	kept := s.Skills[:0:0]
	for _, have := range s.Skills {
		if !match(have) {
			kept = append(kept, have)
		}
	}
	changed := len(kept) != len(s.Skills)
	s.Skills = kept
	return changed
}
