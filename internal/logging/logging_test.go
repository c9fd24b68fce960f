package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/tpm/internal/logging"
)

func TestNew_DiscardsByDefault(t *testing.T) {
	c := qt.New(t)
	c.Setenv(logging.EnvDebug, "")

	dir := t.TempDir()
	logger, closeLog := logging.New(dir)
	defer closeLog()

	logger.Debug("should go nowhere")

	// No logs directory is created when logging is off.
	_, err := os.Stat(filepath.Join(dir, "logs"))
	c.Assert(os.IsNotExist(err), qt.IsTrue)
}

func TestNew_WritesLogFileWhenDebugSet(t *testing.T) {
	c := qt.New(t)
	c.Setenv(logging.EnvDebug, "1")

	dir := t.TempDir()
	logger, closeLog := logging.New(dir)

	logger.Debug("resolving config", "dir", dir)
	closeLog()

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 1)
	c.Assert(strings.HasSuffix(entries[0].Name(), ".log"), qt.IsTrue)

	data, err := os.ReadFile(filepath.Join(dir, "logs", entries[0].Name()))
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Contains, "resolving config")
}

func TestNew_EachInvocationGetsOwnFile(t *testing.T) {
	c := qt.New(t)
	c.Setenv(logging.EnvDebug, "1")

	dir := t.TempDir()
	for range 3 {
		_, closeLog := logging.New(dir)
		closeLog()
	}

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 3)
}
