// Package configcmd implements the `tpm config` command group.
package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/tpm/cmd/tpm/shared"
	"github.com/go-ports/tpm/internal/config"
	"github.com/go-ports/tpm/internal/store"
)

const configTemplate = `# tpm configuration
# All keys are optional; empty values fall through to the environment.

editor: ""        # overrides $EDITOR (fallback: vim)
shell: ""         # overrides $SHELL (fallback: /bin/sh)
projects_dir: ""  # where tpm new creates projects (default: ~/projects)
`

// Command implements `tpm config`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the config command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		Args:  cobra.NoArgs,
		RunE:  c.runShow,
	}
	c.cmd.AddCommand(newConfigInit(ctx))
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) runShow(cmd *cobra.Command, _ []string) error {
	dir, source := config.ResolveConfigDir()
	if c.ctx.ConfigDir != "" {
		dir = c.ctx.ConfigDir
		source = "flag"
	}
	cfg, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: ignoring malformed config: %v\n", err)
	}

	shell, shellSource := config.ResolveShell(cfg)
	editor, editorSource := config.ResolveEditor(cfg)
	projectsDir, projectsSource := config.ResolveProjectsDir(cfg)

	data := map[string]any{
		"config_dir":          dir,
		"config_dir_source":   source,
		"store":               filepath.Join(dir, store.DocumentName),
		"shell":               shell,
		"shell_source":        shellSource,
		"editor":              editor,
		"editor_source":       editorSource,
		"projects_dir":        projectsDir,
		"projects_dir_source": projectsSource,
	}
	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

// ---------------------------------------------------------------------------
// config init
// ---------------------------------------------------------------------------

func newConfigInit(ctx *shared.Context) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a starter config.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := ctx.Dir()
			cfgPath := filepath.Join(dir, "config.yaml")
			out := cmd.OutOrStdout()
			if _, err := os.Stat(cfgPath); err == nil && !force {
				fmt.Fprintf(out, "Config already exists at %s\n", cfgPath)
				fmt.Fprintln(out, "Use --force to overwrite.")
				return nil
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(cfgPath, []byte(configTemplate), 0o600); err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %s\n", cfgPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config")
	return cmd
}
