// Package listcmd implements the `tpm list` command.
package listcmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/tpm/cmd/tpm/shared"
	"github.com/go-ports/tpm/internal/store"
)

// Command implements `tpm list`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	asJSON bool
}

// New creates the list command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "list",
		Short: "List all projects in alphabetical order",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	c.cmd.Flags().BoolVar(&c.asJSON, "json", false, "Print the project records as JSON")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(c.ctx.Dir(), c.ctx.Logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	projects := st.Projects()

	if c.asJSON {
		data, err := json.MarshalIndent(projects, "", "  ")
		if err != nil {
			return fmt.Errorf("list: marshal: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects found.")
		return nil
	}
	for _, p := range projects {
		fmt.Fprintln(out, p)
	}
	return nil
}
