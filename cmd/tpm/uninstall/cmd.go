// Package uninstallcmd implements the `tpm uninstall` command.
package uninstallcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ports/tpm/cmd/tpm/shared"
	"github.com/go-ports/tpm/internal/setup"
	"github.com/go-ports/tpm/internal/ui"
)

// Command implements `tpm uninstall`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the uninstall command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:       "uninstall [shell]",
		Short:     "Remove installed shell completions",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: setup.ValidShells,
		RunE:      c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var shell string
	if len(args) > 0 {
		shell = args[0]
	} else {
		detected, err := setup.DetectShell()
		if err != nil {
			return err
		}
		shell = detected
	}

	if ui.CanPrompt() {
		confirm, err := ui.Confirm(fmt.Sprintf("Remove %s completions?", shell), false)
		if err != nil || confirm.Cancelled {
			return err
		}
		if !confirm.Confirmed {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("uninstall: %w", err)
	}
	profile, err := setup.ProfilePath(home, shell)
	if err != nil {
		return err
	}

	result, err := setup.Uninstall(c.ctx.Dir(), profile, shell)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result.Message)
	return nil
}
