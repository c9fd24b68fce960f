// Package deletecmd implements the `tpm delete` command.
package deletecmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ports/tpm/cmd/tpm/shared"
	"github.com/go-ports/tpm/internal/store"
	"github.com/go-ports/tpm/internal/ui"
)

// Command implements `tpm delete`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	deleteDirs bool
}

// New creates the delete command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:               "delete [name...]",
		Short:             "Remove projects from the registry",
		ValidArgsFunction: shared.ProjectNames(ctx),
		RunE:              c.run,
	}

	c.cmd.Flags().BoolVar(&c.deleteDirs, "dir", false, "Also delete the project directories from disk")

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
	names := args
	deleteDirs := c.deleteDirs

	if len(names) == 0 {
		if !ui.CanPrompt() {
			return fmt.Errorf("delete: project name required")
		}
		if st.Len() == 0 {
			fmt.Fprintln(out, "No projects found.")
			return nil
		}
		sel, err := ui.SelectProjects("Select projects to delete", st.Projects())
		if err != nil || sel.Cancelled {
			return err
		}
		if len(sel.Projects) == 0 {
			fmt.Fprintln(out, "No projects selected.")
			return nil
		}
		for _, p := range sel.Projects {
			names = append(names, p.Name)
		}
		if !deleteDirs {
			confirm, err := ui.Confirm("Also delete project directories?", false)
			if err != nil || confirm.Cancelled {
				return err
			}
			deleteDirs = confirm.Confirmed
		}
	}

	// Directory failures are reported per item and do not abort the rest.
	if deleteDirs {
		for _, name := range names {
			p, err := st.Find(name)
			if err != nil {
				continue
			}
			if err := os.RemoveAll(p.Path); err != nil {
				fmt.Fprintf(out, "Warning: could not delete %s: %v\n", p.Path, err)
			}
		}
	}

	removed := st.Remove(names...)
	if removed > 0 {
		if err := st.Save(); err != nil {
			return err
		}
	}

	if removed == 1 {
		fmt.Fprintln(out, "Deleted 1 project.")
	} else {
		fmt.Fprintf(out, "Deleted %d projects.\n", removed)
	}
	return nil
}
