// Package setup installs and uninstalls shell completions for tpm.
//
// Install writes the generated completion script into the config directory
// and adds a guarded source line to the shell profile; Uninstall reverses
// both. Both are idempotent.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ValidShells lists the shells the completions installer supports.
var ValidShells = []string{"bash", "zsh"}

// sourceMarker is the comment line guarding the source line in the profile.
const sourceMarker = "# tpm completions"

// Result is the return value from Install and Uninstall.
type Result struct {
	Status  string // always "ok"
	Message string
}

func ok(msg string) Result          { return Result{Status: "ok", Message: msg} }
func okf(f string, a ...any) Result { return ok(fmt.Sprintf(f, a...)) }

// DetectShell returns the current shell name from $SHELL.
// Shells outside ValidShells are an error.
func DetectShell() (string, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	name := filepath.Base(shell)
	if !slices.Contains(ValidShells, name) {
		return "", fmt.Errorf("unsupported shell %q (supported: %s)", name, strings.Join(ValidShells, ", "))
	}
	return name, nil
}

// ProfilePath returns the profile file sourced by the given shell.
func ProfilePath(home, shell string) (string, error) {
	switch shell {
	case "bash":
		return filepath.Join(home, ".bash_profile"), nil
	case "zsh":
		return filepath.Join(home, ".zshrc"), nil
	}
	return "", fmt.Errorf("unsupported shell %q (supported: %s)", shell, strings.Join(ValidShells, ", "))
}

// ScriptPath returns where the generated completion script is written.
func ScriptPath(configDir, shell string) string {
	return filepath.Join(configDir, "tpm_completions."+shell)
}

// ---------------------------------------------------------------------------
// Install / Uninstall
// ---------------------------------------------------------------------------

// Install writes the completion script under configDir and appends a guarded
// source line to profilePath. When the profile already sources the script the
// result is "Already installed" and the profile is left untouched (the script
// file is still refreshed).
func Install(configDir, profilePath, shell string, script []byte) (Result, error) {
	scriptPath := ScriptPath(configDir, shell)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("setup.Install: create config dir: %w", err)
	}
	if err := os.WriteFile(scriptPath, script, 0o644); err != nil {
		return Result{}, fmt.Errorf("setup.Install: write script: %w", err)
	}

	if profileSourcesScript(profilePath, scriptPath) {
		return ok("Already installed"), nil
	}

	f, err := os.OpenFile(profilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Result{}, fmt.Errorf("setup.Install: open profile: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "\n%s\nsource %s\n", sourceMarker, scriptPath); err != nil {
		return Result{}, fmt.Errorf("setup.Install: update profile: %w", err)
	}
	return okf("Installed %s completions (sourced from %s)", shell, profilePath), nil
}

// Uninstall removes the source line (and its marker) from profilePath and
// deletes the completion script. When neither exists the result is
// "Nothing to remove".
func Uninstall(configDir, profilePath, shell string) (Result, error) {
	scriptPath := ScriptPath(configDir, shell)

	removedLine, err := removeSourceLines(profilePath, scriptPath)
	if err != nil {
		return Result{}, fmt.Errorf("setup.Uninstall: update profile: %w", err)
	}

	removedScript := false
	if err := os.Remove(scriptPath); err == nil {
		removedScript = true
	} else if !os.IsNotExist(err) {
		return Result{}, fmt.Errorf("setup.Uninstall: remove script: %w", err)
	}

	if !removedLine && !removedScript {
		return ok("Nothing to remove"), nil
	}
	return okf("Removed %s completions (from %s)", shell, profilePath), nil
}

// ---------------------------------------------------------------------------
// Profile edits
// ---------------------------------------------------------------------------

func profileSourcesScript(profilePath, scriptPath string) bool {
	data, err := os.ReadFile(profilePath)
	if err != nil {
		return false
	}
	name := filepath.Base(scriptPath)
	for line := range strings.Lines(string(data)) {
		if strings.Contains(line, "source") && strings.Contains(line, name) {
			return true
		}
	}
	return false
}

// removeSourceLines drops the marker line and any source line referencing the
// script from the profile. Returns true when the profile changed.
func removeSourceLines(profilePath, scriptPath string) (bool, error) {
	data, err := os.ReadFile(profilePath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	name := filepath.Base(scriptPath)
	lines := strings.Split(string(data), "\n")
	result := make([]string, 0, len(lines))
	changed := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == sourceMarker ||
			(strings.Contains(trimmed, "source") && strings.Contains(trimmed, name)) {
			changed = true
			continue
		}
		result = append(result, line)
	}
	if !changed {
		return false, nil
	}
	cleaned := strings.TrimRight(strings.Join(result, "\n"), "\n") + "\n"
	return true, os.WriteFile(profilePath, []byte(cleaned), 0o644)
}
