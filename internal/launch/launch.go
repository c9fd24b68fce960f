// Package launch spawns the user's shell or editor at a project path.
package launch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/go-ports/tpm/internal/config"
)

// ErrPathInvalid is returned when a project path is missing or not a
// directory, or when directory creation fails for a new project.
var ErrPathInvalid = errors.New("invalid project path")

// Launcher resolves the shell and editor once and spawns them with inherited
// stdio. The parent waits for the spawned process to finish in both modes.
type Launcher struct {
	Shell        string
	ShellSource  string
	Editor       string
	EditorSource string

	logger *slog.Logger
}

// New resolves the launch tools from cfg, the environment, and the built-in
// fallbacks (see config.ResolveShell / config.ResolveEditor).
func New(cfg *config.Config, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	l := &Launcher{logger: logger}
	l.Shell, l.ShellSource = config.ResolveShell(cfg)
	l.Editor, l.EditorSource = config.ResolveEditor(cfg)
	return l
}

// ValidateDir checks that path exists and is a directory.
func ValidateDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s does not exist", ErrPathInvalid, path)
	}
	if err != nil {
		return fmt.Errorf("launch.ValidateDir: stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrPathInvalid, path)
	}
	return nil
}

// OpenTerminal spawns the shell with its working directory set to dir and
// waits for it to exit. The shell's own exit status is not treated as an
// error.
func (l *Launcher) OpenTerminal(dir string) error {
	if err := ValidateDir(dir); err != nil {
		return err
	}
	l.logger.Debug("spawning shell", "shell", l.Shell, "source", l.ShellSource, "dir", dir)
	cmd := exec.Command(l.Shell)
	cmd.Dir = dir
	return l.run(cmd)
}

// OpenEditor spawns the editor with dir as its argument and waits for it to
// exit. When replaceWindow is set and the editor is VS Code, the project
// opens in the current window via --reuse-window.
func (l *Launcher) OpenEditor(dir string, replaceWindow bool) error {
	if err := ValidateDir(dir); err != nil {
		return err
	}
	args := []string{dir}
	if replaceWindow && filepath.Base(l.Editor) == "code" {
		args = append(args, "--reuse-window")
	}
	l.logger.Debug("spawning editor", "editor", l.Editor, "source", l.EditorSource, "args", args)
	cmd := exec.Command(l.Editor, args...)
	return l.run(cmd)
}

// run hands the terminal to the child and waits for it. The child shares the
// foreground process group and owns its own Ctrl+C, so it is never bound to
// the invocation's signal context.
func (l *Launcher) run(cmd *exec.Cmd) error {
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The child ran and chose its own exit status; not our failure.
			l.logger.Debug("child exited", "code", exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("launch: spawn %s: %w", cmd.Path, err)
	}
	return nil
}
