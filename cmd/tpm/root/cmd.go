// Package rootcmd wires the root cobra.Command for the tpm binary.
package rootcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	addcmd "github.com/go-ports/tpm/cmd/tpm/add"
	configcmd "github.com/go-ports/tpm/cmd/tpm/config"
	deletecmd "github.com/go-ports/tpm/cmd/tpm/delete"
	editcmd "github.com/go-ports/tpm/cmd/tpm/edit"
	listcmd "github.com/go-ports/tpm/cmd/tpm/list"
	newcmd "github.com/go-ports/tpm/cmd/tpm/new"
	opencmd "github.com/go-ports/tpm/cmd/tpm/open"
	setupcmd "github.com/go-ports/tpm/cmd/tpm/setup"
	"github.com/go-ports/tpm/cmd/tpm/shared"
	uninstallcmd "github.com/go-ports/tpm/cmd/tpm/uninstall"
	"github.com/go-ports/tpm/internal/buildinfo"
	"github.com/go-ports/tpm/internal/logging"
	"github.com/go-ports/tpm/internal/store"
	"github.com/go-ports/tpm/internal/ui"
)

// menuActions are the top-level menu entries, in display order.
// menuCommands maps each entry to the subcommand it runs.
var (
	menuActions = []string{
		"Open project",
		"Add project",
		"Edit project",
		"Delete projects",
		"New project",
		"List projects",
		"Quit",
	}
	menuCommands = []string{"open", "add", "edit", "delete", "new", "list"}
)

// New creates and returns the root cobra.Command for the tpm binary.
func New() *cobra.Command {
	ctx := &shared.Context{}
	var closeLog func()

	root := &cobra.Command{
		Use:           "tpm",
		Short:         "tpm is a registry of named shortcuts to your project directories",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			ctx.Logger, closeLog = logging.New(ctx.Dir())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if closeLog != nil {
				closeLog()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !ui.CanPrompt() {
				return cmd.Help()
			}
			return runMenu(cmd, ctx)
		},
	}

	root.PersistentFlags().StringVar(
		&ctx.ConfigDir, "config-dir", "",
		"Override config directory (default: $TPM_CONFIG_DIR env → ~/.config/tpm → ~/tpm)",
	)

	root.AddCommand(
		addcmd.New(ctx).Cmd(),
		newcmd.New(ctx).Cmd(),
		listcmd.New(ctx).Cmd(),
		editcmd.New(ctx).Cmd(),
		deletecmd.New(ctx).Cmd(),
		opencmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		setupcmd.New(ctx).Cmd(),
		uninstallcmd.New(ctx).Cmd(),
	)

	return root
}

// runMenu shows the welcome banner and the top-level action menu, then runs
// the chosen subcommand with no pre-filled arguments so the handler's own
// prompts take over. Exactly one action runs per invocation; cancellation at
// any prompt ends the invocation with exit 0.
func runMenu(cmd *cobra.Command, ctx *shared.Context) error {
	st, err := store.Open(ctx.Dir(), ctx.Logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, ui.Banner())

	if st.Len() == 0 {
		choice, err := ui.Choose("No projects found", []string{"Add project", "Quit"})
		if err != nil || choice.Cancelled || choice.Index != 0 {
			return err
		}
		return runSub(cmd, "add")
	}

	choice, err := ui.Choose("What would you like to do?", menuActions)
	if err != nil || choice.Cancelled || choice.Index >= len(menuCommands) {
		return err
	}
	return runSub(cmd, menuCommands[choice.Index])
}

func runSub(cmd *cobra.Command, name string) error {
	sub, _, err := cmd.Root().Find([]string{name})
	if err != nil {
		return err
	}
	sub.SetContext(cmd.Context())
	return sub.RunE(sub, nil)
}
