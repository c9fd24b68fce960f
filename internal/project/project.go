// Package project defines the core data types for the project registry.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Project is one tracked project: a named shortcut to a directory.
// Name is the primary key; lookup is exact-match and case-sensitive.
type Project struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	LastOpened time.Time `json:"last_opened,omitzero"`
}

// String renders the project the way it is listed: "name (path)".
func (p Project) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Path)
}

// Touch stamps LastOpened with the current time.
func (p *Project) Touch() {
	p.LastOpened = time.Now().UTC()
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a project name to a lowercase hyphenated directory name,
// used as the default path component for newly created projects.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// DefaultName returns the base name of the current working directory.
func DefaultName() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("project.DefaultName: %w", err)
	}
	return filepath.Base(cwd), nil
}

// DefaultPath returns the current working directory.
func DefaultPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("project.DefaultPath: %w", err)
	}
	return cwd, nil
}
