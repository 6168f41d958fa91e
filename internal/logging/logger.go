// Package logging builds the zap logger shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Level   string // debug|info|warn|error
	File    string // empty = stderr
	Verbose bool   // forces debug
}

// New returns a production (JSON) logger. Callers should Sync it before exiting.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	level := zapcore.WarnLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Sampling = nil

	if f := strings.TrimSpace(opts.File); f != "" {
		if err := os.MkdirAll(filepath.Dir(f), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		cfg.OutputPaths = []string{f}
		cfg.ErrorOutputPaths = []string{f}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
