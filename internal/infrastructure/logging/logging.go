// Package logging configures the logrus loggers used across the application.
//
// The terminal belongs to the TUI, so log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the configured log level when set.
const LevelEnv = "SUBSTATS_LOG_LEVEL"

var (
	base   = newDiscardLogger()
	baseMu sync.RWMutex
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup points all component loggers, including ones created earlier, at
// path. The returned closer releases the file.
func Setup(path, level string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	baseMu.Lock()
	base.SetOutput(f)
	base.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	base.SetLevel(ParseLevel(level))
	baseMu.Unlock()
	return f, nil
}

// ParseLevel resolves the effective level; the environment wins over level.
func ParseLevel(level string) logrus.Level {
	if env := strings.TrimSpace(os.Getenv(LevelEnv)); env != "" {
		level = env
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// New returns a logger tagged with component.
func New(component string) *logrus.Entry {
	baseMu.RLock()
	defer baseMu.RUnlock()
	return base.WithField("component", component)
}

// SetOutput redirects the shared logger, mainly for tests.
func SetOutput(w io.Writer) {
	baseMu.Lock()
	defer baseMu.Unlock()
	base.SetOutput(w)
}
