package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"emoboard/internal/store"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk emoboard configuration (config.yaml).
type Config struct {
	// DataDir holds the store files. Empty means <config dir>/data.
	DataDir string `yaml:"data_dir" json:"dataDir"`

	// Backend is one of sqlite|file|memory.
	Backend string `yaml:"backend" json:"backend"`

	Logging LoggingConfig `yaml:"logging" json:"logging"`
	TUI     TUIConfig     `yaml:"tui" json:"tui"`
}

type LoggingConfig struct {
	Level string `yaml:"level" json:"level"` // debug, info, warn, error
	File  string `yaml:"file" json:"file"`   // empty = stderr for commands, <data dir>/emoboard.log for the TUI
}

type TUIConfig struct {
	Theme string `yaml:"theme" json:"theme"` // auto, light, dark
	Watch bool   `yaml:"watch" json:"watch"` // reload when another process writes the store
}

var logLevels = []string{"debug", "info", "warn", "error"}

func DefaultConfig() *Config {
	return &Config{
		Backend: store.BackendSQLite,
		Logging: LoggingConfig{
			Level: "warn",
		},
		TUI: TUIConfig{
			Theme: "auto",
			Watch: true,
		},
	}
}

// Dir is the config directory. EMOBOARD_CONFIG_DIR overrides it (tests use this to stay out
// of the real home directory).
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("EMOBOARD_CONFIG_DIR")); v != "" {
		return v, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "emoboard"), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ResolvePath returns path, or DefaultPath when path is blank.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath()
	}
	return path, nil
}

// Load reads path (DefaultPath when empty), then applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	path, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.fillDataDir(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c as YAML, creating the config directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("EMOBOARD_DIR")); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("EMOBOARD_BACKEND")); v != "" {
		c.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("EMOBOARD_LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("EMOBOARD_LOG_FILE")); v != "" {
		c.Logging.File = v
	}
	if v := strings.TrimSpace(os.Getenv("EMOBOARD_TUI_THEME")); v != "" {
		c.TUI.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("EMOBOARD_TUI_WATCH")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.TUI.Watch = b
		}
	}
}

func (c *Config) fillDataDir() error {
	if strings.TrimSpace(c.DataDir) != "" {
		return nil
	}
	dir, err := Dir()
	if err != nil {
		return err
	}
	c.DataDir = filepath.Join(dir, "data")
	return nil
}

func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if !slices.Contains(store.Backends, c.Backend) {
		return fmt.Errorf("invalid backend %q (want %s)", c.Backend, strings.Join(store.Backends, "|"))
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if !slices.Contains(logLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level %q (want %s)", c.Logging.Level, strings.Join(logLevels, "|"))
	}
	switch strings.ToLower(strings.TrimSpace(c.TUI.Theme)) {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid tui theme %q (want auto|light|dark)", c.TUI.Theme)
	}
	return nil
}
