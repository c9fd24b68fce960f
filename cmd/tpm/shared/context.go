// Package shared holds the context passed to all CLI commands.
package shared

import (
	"log/slog"

	"github.com/go-ports/tpm/internal/config"
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// ConfigDir overrides the config directory.
	// When empty, resolution falls through to TPM_CONFIG_DIR env var → ~/.config/tpm → ~/tpm.
	ConfigDir string

	// Logger is the invocation logger, wired by the root command before any
	// handler runs. May be nil in tests; consumers treat nil as discard.
	Logger *slog.Logger
}

// Dir returns the resolved config directory, honouring the --config-dir flag.
func (c *Context) Dir() string {
	if c.ConfigDir != "" {
		return c.ConfigDir
	}
	return config.GetConfigDir()
}
