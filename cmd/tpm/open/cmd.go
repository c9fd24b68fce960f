// Package opencmd implements the `tpm open` command.
package opencmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-ports/tpm/cmd/tpm/shared"
	"github.com/go-ports/tpm/internal/config"
	"github.com/go-ports/tpm/internal/launch"
	"github.com/go-ports/tpm/internal/store"
	"github.com/go-ports/tpm/internal/ui"
)

// Command implements `tpm open`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	inEditor bool
	replace  bool
}

// New creates the open command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:               "open [name]",
		Short:             "Open a project in a terminal or editor",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: shared.ProjectNames(ctx),
		RunE:              c.run,
	}

	f := c.cmd.Flags()
	f.BoolVarP(&c.inEditor, "editor", "e", false, "Open in editor instead of terminal")
	f.BoolVarP(&c.replace, "replace", "r", false, "Reuse the current editor window (VS Code only)")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	if c.replace && !c.inEditor {
		return fmt.Errorf("open: --replace requires --editor")
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

	var target string
	if len(args) > 0 {
		target = args[0]
	}
	inEditor := c.inEditor

	if target == "" {
		if !ui.CanPrompt() {
			return fmt.Errorf("open: project name required")
		}
		if st.Len() == 0 {
			fmt.Fprintln(out, "No projects found.")
			return nil
		}
		sel, err := ui.SelectProject("Select a project to open", st.Projects())
		if err != nil || sel.Cancelled {
			return err
		}
		target = sel.Project.Name

		choice, err := ui.Choose("Open project in", []string{"Terminal", "Editor"})
		if err != nil || choice.Cancelled {
			return err
		}
		inEditor = choice.Index == 1
	}

	p, err := st.Find(target)
	if err != nil {
		return err
	}

	// Validate before stamping: a failed open must not mutate the store.
	if err := launch.ValidateDir(p.Path); err != nil {
		return err
	}
	if err := st.Touch(target); err != nil {
		return err
	}
	if err := st.Save(); err != nil {
		return err
	}

	launcher := launch.New(cfg, c.ctx.Logger)
	if inEditor {
		return launcher.OpenEditor(p.Path, c.replace)
	}
	return launcher.OpenTerminal(p.Path)
}
