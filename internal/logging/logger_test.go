package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "emoboard.log")
	logger, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("board opened", zap.Int("emotions", 3))
	require.NoError(t, logger.Sync())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "board opened", entry["msg"])
	require.Equal(t, float64(3), entry["emotions"])
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name    string
		opts    Options
		enabled zapcore.Level
		wantErr bool
	}{
		{name: "default warn", opts: Options{}, enabled: zapcore.WarnLevel},
		{name: "explicit error", opts: Options{Level: "ERROR"}, enabled: zapcore.ErrorLevel},
		{name: "verbose wins", opts: Options{Level: "error", Verbose: true}, enabled: zapcore.DebugLevel},
		{name: "bad level", opts: Options{Level: "loud"}, wantErr: true},
	}
	for i, tt := range tests {
		tt := tt
		tt.opts.File = filepath.Join(dir, strings.Repeat("x", i+1)+".log")
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			logger, err := New(tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, logger.Core().Enabled(tt.enabled))
			if tt.enabled > zapcore.DebugLevel {
				require.False(t, logger.Core().Enabled(tt.enabled-1))
			}
		})
	}
}
