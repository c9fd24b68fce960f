// Package store owns the persisted project document: a single JSON array of
// project records under the config directory. The store is loaded fully on
// every invocation and overwritten fully on every mutation.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-ports/tpm/internal/project"
)

// DocumentName is the file name of the persisted project document.
const DocumentName = "projects.json"

// NamesFileName is the auxiliary completion-data file, one project name per
// line, rewritten beside the document on every save.
const NamesFileName = "project_names.txt"

// Errors for store operations.
var (
	ErrCorrupt   = errors.New("project store corrupted")
	ErrNotFound  = errors.New("project not found")
	ErrDuplicate = errors.New("project already exists")
)

// Store is the in-memory project collection backed by the document.
// Insertion order is preserved in memory and on disk; alphabetical order is
// applied only for presentation via Projects.
type Store struct {
	dir      string
	projects []project.Project
	logger   *slog.Logger
}

// Open reads the document under dir. An absent document yields an empty
// store. A present but malformed document (bad JSON, non-array top level,
// wrong field types, empty or duplicate names) fails with ErrCorrupt; no
// write-back is attempted on a corrupt document.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{dir: dir, projects: []project.Project{}, logger: logger}

	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.Open: read %s: %w", s.Path(), err)
	}

	// A JSON "null" unmarshals into a nil slice without an error; only an
	// array top level is a valid document.
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("store.Open: %s: %w: top level is not an array", s.Path(), ErrCorrupt)
	}

	var projects []project.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("store.Open: %s: %w: %v", s.Path(), ErrCorrupt, err)
	}
	seen := make(map[string]bool, len(projects))
	for _, p := range projects {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("store.Open: %s: %w: record with empty name", s.Path(), ErrCorrupt)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("store.Open: %s: %w: duplicate name %q", s.Path(), ErrCorrupt, p.Name)
		}
		seen[p.Name] = true
	}
	s.projects = projects
	return s, nil
}

// Dir returns the directory holding the document.
func (s *Store) Dir() string { return s.dir }

// Path returns the full path of the document.
func (s *Store) Path() string { return filepath.Join(s.dir, DocumentName) }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.projects) }

// Find returns the record with the given name, or ErrNotFound.
func (s *Store) Find(name string) (project.Project, error) {
	for _, p := range s.projects {
		if p.Name == name {
			return p, nil
		}
	}
	return project.Project{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Add appends a record. Returns ErrDuplicate if the name is taken.
func (s *Store) Add(p project.Project) error {
	if _, err := s.Find(p.Name); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicate, p.Name)
	}
	s.projects = append(s.projects, p)
	return nil
}

// Update renames and/or repoints the record with the given name, preserving
// its position. Empty newName/newPath leave the field unchanged. Returns
// ErrNotFound if no record matches, ErrDuplicate if newName collides with a
// different record.
func (s *Store) Update(name, newName, newPath string) error {
	idx := -1
	for i, p := range s.projects {
		if p.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if newName != "" && newName != name {
		if _, err := s.Find(newName); err == nil {
			return fmt.Errorf("%w: %q", ErrDuplicate, newName)
		}
		s.projects[idx].Name = newName
	}
	if newPath != "" {
		s.projects[idx].Path = newPath
	}
	return nil
}

// Remove deletes all records whose name is in names and returns how many were
// removed. Names with no matching record are silently ignored.
func (s *Store) Remove(names ...string) int {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	kept := s.projects[:0]
	removed := 0
	for _, p := range s.projects {
		if drop[p.Name] {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.projects = kept
	return removed
}

// Touch stamps the record's last-opened time. Returns ErrNotFound when the
// name is not registered.
func (s *Store) Touch(name string) error {
	for i := range s.projects {
		if s.projects[i].Name == name {
			s.projects[i].Touch()
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Projects returns a copy of the records ordered alphabetically by name.
func (s *Store) Projects() []project.Project {
	out := make([]project.Project, len(s.projects))
	copy(out, s.projects)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Save serializes the full record set back to the document, overwriting it
// atomically (temp file + rename) and creating parent directories as needed.
// It then rewrites the completion names file; a failure there is logged as a
// warning, not an error.
func (s *Store) Save() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("store.Save: create config dir: %w", err)
	}

	data, err := json.MarshalIndent(s.projects, "", "  ")
	if err != nil {
		return fmt.Errorf("store.Save: marshal: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, ".projects-*.json")
	if err != nil {
		return fmt.Errorf("store.Save: create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store.Save: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store.Save: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store.Save: replace %s: %w", s.Path(), err)
	}

	if err := s.writeNames(); err != nil {
		s.logger.Warn("failed to write completion names file", "err", err)
	}
	return nil
}

func (s *Store) writeNames() error {
	names := make([]string, 0, len(s.projects))
	for _, p := range s.Projects() {
		names = append(names, p.Name)
	}
	content := strings.Join(names, "\n")
	if content != "" {
		content += "\n"
	}
	return os.WriteFile(filepath.Join(s.dir, NamesFileName), []byte(content), 0o644)
}
