// Package addcmd implements the `tpm add` command.
package addcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/tpm/cmd/tpm/shared"
	"github.com/go-ports/tpm/internal/config"
	"github.com/go-ports/tpm/internal/project"
	"github.com/go-ports/tpm/internal/store"
	"github.com/go-ports/tpm/internal/ui"
)

// Command implements `tpm add`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	name string
	path string
}

// New creates the add command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "add [name] [path]",
		Short: "Register an existing directory as a project",
		Args:  cobra.MaximumNArgs(2),
		RunE:  c.run,
	}

	f := c.cmd.Flags()
	f.StringVarP(&c.name, "name", "n", "", "Project name (default: current directory base name)")
	f.StringVarP(&c.path, "path", "p", "", "Project path (default: current working directory)")

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

	out := cmd.OutOrStdout()
	overwrite := false

	if name == "" && path == "" && ui.CanPrompt() {
		defaultName, err := project.DefaultName()
		if err != nil {
			return err
		}
		defaultPath, err := project.DefaultPath()
		if err != nil {
			return err
		}
		form, err := ui.ProjectForm("Add project", defaultName, defaultPath)
		if err != nil || form.Cancelled {
			return err
		}
		name, path = form.Name, form.Path
		if name == "" || path == "" {
			return fmt.Errorf("add: name and path cannot be empty")
		}
		if _, err := st.Find(name); err == nil {
			confirm, err := ui.Confirm(fmt.Sprintf("Project %s already exists. Overwrite?", name), false)
			if err != nil || confirm.Cancelled {
				return err
			}
			if !confirm.Confirmed {
				fmt.Fprintln(out, "Canceled.")
				return nil
			}
			overwrite = true
		}
	}

	if name == "" {
		if name, err = project.DefaultName(); err != nil {
			return err
		}
	}
	if path == "" {
		if path, err = project.DefaultPath(); err != nil {
			return err
		}
	}
	if path, err = config.NormalizePath(path); err != nil {
		return fmt.Errorf("add: normalize path: %w", err)
	}

	if overwrite {
		st.Remove(name)
	}
	p := project.Project{Name: name, Path: path}
	p.Touch()
	if err := st.Add(p); err != nil {
		return err
	}
	if err := st.Save(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Added %s\n", p)
	return nil
}
