// Package logging sets up the per-invocation debug logger.
//
// Logging is off by default: interactive prompts own the terminal, so log
// output never goes to stdout/stderr. Setting TPM_DEBUG routes debug logs to
// a per-invocation file under <configdir>/logs instead.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EnvDebug is the environment variable that enables debug logging.
const EnvDebug = "TPM_DEBUG"

// New returns the invocation logger and a close function. When TPM_DEBUG is
// unset, or the log file cannot be created, the logger discards everything.
func New(configDir string) (*slog.Logger, func()) {
	if os.Getenv(EnvDebug) == "" {
		return slog.New(slog.DiscardHandler), func() {}
	}

	logDir := filepath.Join(configDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}
	path := filepath.Join(logDir, uuid.NewString()+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Debug("logging started", "file", path)
	return logger, func() { _ = f.Close() }
}
