// Package config handles configuration loading and config directory resolution.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// Config is the optional user configuration read from config.yaml.
// All fields are overrides; empty values fall through to the environment and
// the built-in fallbacks (see the Resolve functions).
type Config struct {
	Editor      string `yaml:"editor"`       // overrides $EDITOR
	Shell       string `yaml:"shell"`        // overrides $SHELL
	ProjectsDir string `yaml:"projects_dir"` // where `new` creates projects
}

// Default returns an empty Config; everything falls through to env/fallback.
func Default() *Config {
	return &Config{}
}

// Load reads config.yaml from path.
// If the file does not exist it returns Default() with no error.
// A malformed file also returns Default(), plus the parse error so the caller
// can report a warning; the config file is never fatal.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	// Unmarshal into a plain map so we can apply only the keys that are present.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}

	if v, ok := raw["editor"].(string); ok && v != "" {
		cfg.Editor = v
	}
	if v, ok := raw["shell"].(string); ok && v != "" {
		cfg.Shell = v
	}
	if v, ok := raw["projects_dir"].(string); ok && v != "" {
		cfg.ProjectsDir = v
	}

	return cfg, nil
}

// ---------------------------------------------------------------------------
// Config directory resolution
// ---------------------------------------------------------------------------

// NormalizePath expands ~ and makes the path absolute.
func NormalizePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(os.ExpandEnv(path))
}

// ResolveConfigDir returns the config directory path and the source of the
// resolution. Priority: TPM_CONFIG_DIR env → ~/.config/tpm when ~/.config
// exists → ~/tpm. source is "env" or "default". Resolution never creates
// directories; the store and the config writer create what they need on
// first write.
func ResolveConfigDir() (path, source string) {
	if env := os.Getenv("TPM_CONFIG_DIR"); env != "" {
		p, err := NormalizePath(env)
		if err == nil {
			return p, "env"
		}
	}

	home, _ := os.UserHomeDir()
	if info, err := os.Stat(filepath.Join(home, ".config")); err == nil && info.IsDir() {
		return filepath.Join(home, ".config", "tpm"), "default"
	}
	return filepath.Join(home, "tpm"), "default"
}

// GetConfigDir returns the resolved config directory path.
func GetConfigDir() string {
	path, _ := ResolveConfigDir()
	return path
}

// ---------------------------------------------------------------------------
// Tool resolution
// ---------------------------------------------------------------------------

// ResolveShell returns the shell used to open projects in terminal mode and
// the source of the resolution: config → $SHELL → /bin/sh.
func ResolveShell(cfg *Config) (shell, source string) {
	if cfg != nil && cfg.Shell != "" {
		return cfg.Shell, "config"
	}
	if env := os.Getenv("SHELL"); env != "" {
		return env, "env"
	}
	return "/bin/sh", "default"
}

// ResolveEditor returns the editor used to open projects in editor mode and
// the source of the resolution: config → $EDITOR → vim.
func ResolveEditor(cfg *Config) (editor, source string) {
	if cfg != nil && cfg.Editor != "" {
		return cfg.Editor, "config"
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env, "env"
	}
	return "vim", "default"
}

// ResolveProjectsDir returns the directory where `new` creates projects and
// the source of the resolution: config → ~/projects.
func ResolveProjectsDir(cfg *Config) (dir, source string) {
	if cfg != nil && cfg.ProjectsDir != "" {
		if p, err := NormalizePath(cfg.ProjectsDir); err == nil {
			return p, "config"
		}
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "projects"), "default"
}
