// Package editcmd implements the `tpm edit` command.
package editcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/tpm/cmd/tpm/shared"
	"github.com/go-ports/tpm/internal/config"
	"github.com/go-ports/tpm/internal/store"
	"github.com/go-ports/tpm/internal/ui"
)

// Command implements `tpm edit`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	newName string
	newPath string
}

// New creates the edit command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:               "edit [name]",
		Short:             "Change a project's name or path",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: shared.ProjectNames(ctx),
		RunE:              c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.newName, "name", "", "New project name")
	f.StringVar(&c.newPath, "path", "", "New project path")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	st, err := store.Open(c.ctx.Dir(), c.ctx.Logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	var target string
	if len(args) > 0 {
		target = args[0]
	}
	if target == "" {
		if !ui.CanPrompt() {
			return fmt.Errorf("edit: project name required")
		}
		if st.Len() == 0 {
			fmt.Fprintln(out, "No projects found.")
			return nil
		}
		sel, err := ui.SelectProject("Select a project to edit", st.Projects())
		if err != nil || sel.Cancelled {
			return err
		}
		target = sel.Project.Name
	}

	current, err := st.Find(target)
	if err != nil {
		return err
	}

	newName, newPath := c.newName, c.newPath
	if newName == "" && newPath == "" {
		if !ui.CanPrompt() {
			return fmt.Errorf("edit: pass --name and/or --path, or run interactively")
		}
		form, err := ui.ProjectForm("Edit project", current.Name, current.Path)
		if err != nil || form.Cancelled {
			return err
		}
		newName, newPath = form.Name, form.Path
	}
	if newPath != "" {
		if newPath, err = config.NormalizePath(newPath); err != nil {
			return fmt.Errorf("edit: normalize path: %w", err)
		}
	}

	if err := st.Update(target, newName, newPath); err != nil {
		return err
	}
	if err := st.Save(); err != nil {
		return err
	}

	finalName := target
	if newName != "" {
		finalName = newName
	}
	updated, err := st.Find(finalName)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated %s\n", updated)
	return nil
}
