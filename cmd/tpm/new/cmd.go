// Package newcmd implements the `tpm new` command.
package newcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-ports/tpm/cmd/tpm/shared"
	"github.com/go-ports/tpm/internal/config"
	"github.com/go-ports/tpm/internal/launch"
	"github.com/go-ports/tpm/internal/project"
	"github.com/go-ports/tpm/internal/store"
	"github.com/go-ports/tpm/internal/ui"
)

// Command implements `tpm new`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	name string
	path string
}

// New creates the new command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "new [name] [path]",
		Short: "Create a project directory and register it",
		Args:  cobra.MaximumNArgs(2),
		RunE:  c.run,
	}

	f := c.cmd.Flags()
	f.StringVarP(&c.name, "name", "n", "", "Project name")
	f.StringVarP(&c.path, "path", "p", "", "Project path (default: <projects_dir>/<slug>)")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	name, path := c.name, c.path
	if name == "" && len(args) > 0 {
		name = args[0]
	}
	if path == "" && len(args) > 1 {
		path = args[1]
	}

	st, err := store.Open(c.ctx.Dir(), c.ctx.Logger)
	if err != nil {
		return err
	}
	cfg, cfgErr := config.Load(filepath.Join(c.ctx.Dir(), "config.yaml"))
	if cfgErr != nil && c.ctx.Logger != nil {
		c.ctx.Logger.Warn("ignoring malformed config", "err", cfgErr)
	}

	out := cmd.OutOrStdout()

	if name == "" && ui.CanPrompt() {
		form, err := ui.ProjectForm("New project", "", "")
		if err != nil || form.Cancelled {
			return err
		}
		name, path = form.Name, form.Path
	}
	if name == "" {
		return fmt.Errorf("new: project name required")
	}

	// Check order: a failed new must leave no stray directory behind.
	if _, err := st.Find(name); err == nil {
		return fmt.Errorf("%w: %q", store.ErrDuplicate, name)
	}
	if path == "" {
		projectsDir, _ := config.ResolveProjectsDir(cfg)
		path = filepath.Join(projectsDir, project.Slug(name))
	}
	if path, err = config.NormalizePath(path); err != nil {
		return fmt.Errorf("new: normalize path: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s already exists", launch.ErrPathInvalid, path)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", launch.ErrPathInvalid, path, err)
	}

	p := project.Project{Name: name, Path: path}
	p.Touch()
	if err := st.Add(p); err != nil {
		return err
	}
	if err := st.Save(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Created %s\n", p)

	if !ui.CanPrompt() {
		return nil
	}
	return launch.New(cfg, c.ctx.Logger).OpenTerminal(path)
}
