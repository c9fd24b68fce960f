package config_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/tpm/internal/config"
)

func writeConfig(c *qt.C, content string) string {
	c.Helper()
	path := filepath.Join(c.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	c.Assert(err, qt.IsNil)
	return path
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestLoad_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("absent file yields defaults", func(c *qt.C) {
		cfg, err := config.Load(filepath.Join(c.TempDir(), "config.yaml"))
		c.Assert(err, qt.IsNil)
		c.Assert(cfg, qt.DeepEquals, config.Default())
	})

	c.Run("full file", func(c *qt.C) {
		path := writeConfig(c, "editor: nvim\nshell: /bin/zsh\nprojects_dir: /srv/projects\n")
		cfg, err := config.Load(path)
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Editor, qt.Equals, "nvim")
		c.Assert(cfg.Shell, qt.Equals, "/bin/zsh")
		c.Assert(cfg.ProjectsDir, qt.Equals, "/srv/projects")
	})

	c.Run("partial file keeps defaults for absent keys", func(c *qt.C) {
		path := writeConfig(c, "editor: code\n")
		cfg, err := config.Load(path)
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Editor, qt.Equals, "code")
		c.Assert(cfg.Shell, qt.Equals, "")
		c.Assert(cfg.ProjectsDir, qt.Equals, "")
	})

	c.Run("unknown keys are ignored", func(c *qt.C) {
		path := writeConfig(c, "editor: vim\nfuture_option: true\n")
		cfg, err := config.Load(path)
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Editor, qt.Equals, "vim")
	})
}

func TestLoad_MalformedFileIsNotFatal(t *testing.T) {
	c := qt.New(t)

	path := writeConfig(c, "editor: [unterminated\n")
	cfg, err := config.Load(path)
	c.Assert(err, qt.IsNotNil)
	c.Assert(cfg, qt.DeepEquals, config.Default())
}

// ---------------------------------------------------------------------------
// NormalizePath
// ---------------------------------------------------------------------------

func TestNormalizePath_HappyPath(t *testing.T) {
	c := qt.New(t)
	home, err := os.UserHomeDir()
	c.Assert(err, qt.IsNil)

	c.Run("tilde alone", func(c *qt.C) {
		got, err := config.NormalizePath("~")
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, home)
	})

	c.Run("tilde prefix", func(c *qt.C) {
		got, err := config.NormalizePath("~/work")
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, filepath.Join(home, "work"))
	})

	c.Run("env expansion", func(c *qt.C) {
		c.Setenv("TPM_TEST_DIR", "/srv")
		got, err := config.NormalizePath("$TPM_TEST_DIR/projects")
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, "/srv/projects")
	})

	c.Run("relative path becomes absolute", func(c *qt.C) {
		got, err := config.NormalizePath("some/dir")
		c.Assert(err, qt.IsNil)
		c.Assert(filepath.IsAbs(got), qt.IsTrue)
	})
}

// ---------------------------------------------------------------------------
// Config directory resolution
// ---------------------------------------------------------------------------

func TestResolveConfigDir(t *testing.T) {
	c := qt.New(t)

	c.Run("env override wins", func(c *qt.C) {
		dir := c.TempDir()
		c.Setenv("TPM_CONFIG_DIR", dir)
		path, source := config.ResolveConfigDir()
		c.Assert(path, qt.Equals, dir)
		c.Assert(source, qt.Equals, "env")
	})

	c.Run("dotconfig when present", func(c *qt.C) {
		home := c.TempDir()
		c.Setenv("TPM_CONFIG_DIR", "")
		c.Setenv("HOME", home)
		c.Assert(os.Mkdir(filepath.Join(home, ".config"), 0o755), qt.IsNil)

		path, source := config.ResolveConfigDir()
		c.Assert(path, qt.Equals, filepath.Join(home, ".config", "tpm"))
		c.Assert(source, qt.Equals, "default")
	})

	c.Run("home fallback without dotconfig", func(c *qt.C) {
		home := c.TempDir()
		c.Setenv("TPM_CONFIG_DIR", "")
		c.Setenv("HOME", home)

		path, source := config.ResolveConfigDir()
		c.Assert(path, qt.Equals, filepath.Join(home, "tpm"))
		c.Assert(source, qt.Equals, "default")
	})
}

// ---------------------------------------------------------------------------
// Tool resolution
// ---------------------------------------------------------------------------

func TestResolveShell(t *testing.T) {
	c := qt.New(t)

	c.Run("config wins", func(c *qt.C) {
		c.Setenv("SHELL", "/bin/bash")
		shell, source := config.ResolveShell(&config.Config{Shell: "/bin/fish"})
		c.Assert(shell, qt.Equals, "/bin/fish")
		c.Assert(source, qt.Equals, "config")
	})

	c.Run("env second", func(c *qt.C) {
		c.Setenv("SHELL", "/bin/bash")
		shell, source := config.ResolveShell(config.Default())
		c.Assert(shell, qt.Equals, "/bin/bash")
		c.Assert(source, qt.Equals, "env")
	})

	c.Run("fallback last", func(c *qt.C) {
		c.Setenv("SHELL", "")
		shell, source := config.ResolveShell(nil)
		c.Assert(shell, qt.Equals, "/bin/sh")
		c.Assert(source, qt.Equals, "default")
	})
}

func TestResolveEditor(t *testing.T) {
	c := qt.New(t)

	c.Run("config wins", func(c *qt.C) {
		c.Setenv("EDITOR", "nano")
		editor, source := config.ResolveEditor(&config.Config{Editor: "code"})
		c.Assert(editor, qt.Equals, "code")
		c.Assert(source, qt.Equals, "config")
	})

	c.Run("env second", func(c *qt.C) {
		c.Setenv("EDITOR", "nano")
		editor, source := config.ResolveEditor(nil)
		c.Assert(editor, qt.Equals, "nano")
		c.Assert(source, qt.Equals, "env")
	})

	c.Run("fallback last", func(c *qt.C) {
		c.Setenv("EDITOR", "")
		editor, source := config.ResolveEditor(config.Default())
		c.Assert(editor, qt.Equals, "vim")
		c.Assert(source, qt.Equals, "default")
	})
}

func TestResolveProjectsDir(t *testing.T) {
	c := qt.New(t)

	c.Run("config value is normalized", func(c *qt.C) {
		home := c.TempDir()
		c.Setenv("HOME", home)
		dir, source := config.ResolveProjectsDir(&config.Config{ProjectsDir: "~/code"})
		c.Assert(dir, qt.Equals, filepath.Join(home, "code"))
		c.Assert(source, qt.Equals, "config")
	})

	c.Run("fallback under home", func(c *qt.C) {
		home := c.TempDir()
		c.Setenv("HOME", home)
		dir, source := config.ResolveProjectsDir(nil)
		c.Assert(dir, qt.Equals, filepath.Join(home, "projects"))
		c.Assert(source, qt.Equals, "default")
	})
}
