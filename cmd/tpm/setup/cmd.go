// Package setupcmd implements the `tpm setup` command.
package setupcmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ports/tpm/cmd/tpm/shared"
	"github.com/go-ports/tpm/internal/setup"
	"github.com/go-ports/tpm/internal/ui"
)

// Command implements `tpm setup`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the setup command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:       "setup [shell]",
		Short:     "Install shell completions (bash, zsh)",
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
		confirm, err := ui.Confirm(fmt.Sprintf("Install %s completions?", shell), true)
		if err != nil || confirm.Cancelled {
			return err
		}
		if !confirm.Confirmed {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}
	}

	var script bytes.Buffer
	root := cmd.Root()
	var err error
	switch shell {
	case "bash":
		err = root.GenBashCompletionV2(&script, true)
	case "zsh":
		err = root.GenZshCompletion(&script)
	}
	if err != nil {
		return fmt.Errorf("setup: generate %s completions: %w", shell, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	profile, err := setup.ProfilePath(home, shell)
	if err != nil {
		return err
	}

	result, err := setup.Install(c.ctx.Dir(), profile, shell, script.Bytes())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result.Message)
	return nil
}
