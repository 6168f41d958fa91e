package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EMOBOARD_CONFIG_DIR", dir)
	for _, k := range []string{"EMOBOARD_DIR", "EMOBOARD_BACKEND", "EMOBOARD_LOG_LEVEL", "EMOBOARD_LOG_FILE", "EMOBOARD_TUI_THEME", "EMOBOARD_TUI_WATCH"} {
		t.Setenv(k, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Backend)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, filepath.Join(dir, "data"), cfg.DataDir)
	require.True(t, cfg.TUI.Watch)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EMOBOARD_CONFIG_DIR", dir)
	t.Setenv("EMOBOARD_DIR", "")
	t.Setenv("EMOBOARD_LOG_FILE", "")
	t.Setenv("EMOBOARD_TUI_THEME", "")

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir: /tmp/emo-data
backend: file
logging:
  level: debug
tui:
  theme: light
  watch: false
`), 0o644))

	t.Setenv("EMOBOARD_BACKEND", "memory")
	t.Setenv("EMOBOARD_LOG_LEVEL", "error")
	t.Setenv("EMOBOARD_TUI_WATCH", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/emo-data", cfg.DataDir)
	require.Equal(t, "memory", cfg.Backend, "env beats file")
	require.Equal(t, "error", cfg.Logging.Level)
	require.Equal(t, "light", cfg.TUI.Theme)
	require.True(t, cfg.TUI.Watch)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [unterminated"), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, "failed to parse config")
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv("EMOBOARD_BACKEND", "")
	t.Setenv("EMOBOARD_DIR", "")
	t.Setenv("EMOBOARD_LOG_LEVEL", "")
	t.Setenv("EMOBOARD_LOG_FILE", "")
	t.Setenv("EMOBOARD_TUI_THEME", "")
	t.Setenv("EMOBOARD_TUI_WATCH", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := DefaultConfig()
	want.DataDir = "/data"
	want.Backend = "file"
	want.Logging.File = "/tmp/emoboard.log"
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "backend case", mutate: func(c *Config) { c.Backend = " FILE " }},
		{name: "bad backend", mutate: func(c *Config) { c.Backend = "redis" }, wantErr: "invalid backend"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "invalid logging level"},
		{name: "bad theme", mutate: func(c *Config) { c.TUI.Theme = "sepia" }, wantErr: "invalid tui theme"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
