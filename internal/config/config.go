// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/timewheel/internal/picker"
	"github.com/javiermolinar/timewheel/internal/timeofday"
)

// Input modes.
const (
	InputModeWheel = "wheel"
	InputModeText  = "text"
)

// Config holds the application configuration.
type Config struct {
	Picker  PickerConfig  `toml:"picker"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// PickerConfig holds time picker settings.
type PickerConfig struct {
	MinTime        string `toml:"min_time"`        // e.g., "12:00" (optional)
	MaxTime        string `toml:"max_time"`        // e.g., "15:00" (optional)
	CurrentTime    string `toml:"current_time"`    // Seed for the wheels (optional)
	MinuteInterval int    `toml:"minute_interval"` // One of picker.AllowedIntervals
	RTL            bool   `toml:"rtl"`             // Mirror the wheels
	InputMode      string `toml:"input_mode"`      // "wheel" or "text"
	ExitOnCommit   bool   `toml:"exit_on_commit"`  // Quit once the picker commits or cancels
	RememberLast   bool   `toml:"remember_last"`   // Seed from the last stored selection
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
	Width int    `toml:"width"` // Wheel width in cells; 0 follows the terminal
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Picker: PickerConfig{
			MinuteInterval: picker.DefaultInterval,
			InputMode:      InputModeWheel,
			ExitOnCommit:   true,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "timewheel.db"
	}
	return filepath.Join(home, ".local", "share", "timewheel", "timewheel.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "timewheel", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TIMEWHEEL_MIN_TIME"); v != "" {
		cfg.Picker.MinTime = v
	}
	if v := os.Getenv("TIMEWHEEL_MAX_TIME"); v != "" {
		cfg.Picker.MaxTime = v
	}
	if v := os.Getenv("TIMEWHEEL_CURRENT_TIME"); v != "" {
		cfg.Picker.CurrentTime = v
	}
	if v := os.Getenv("TIMEWHEEL_MINUTE_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Picker.MinuteInterval = n
		}
	}
	if v := os.Getenv("TIMEWHEEL_RTL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Picker.RTL = b
		}
	}
	if v := os.Getenv("TIMEWHEEL_INPUT_MODE"); v != "" {
		cfg.Picker.InputMode = v
	}

	if v := os.Getenv("TIMEWHEEL_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("TIMEWHEEL_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid. Malformed bounds are not
// an error: they are treated as absent.
func (c *Config) Validate() error {
	if !picker.ValidInterval(c.Picker.MinuteInterval) {
		return fmt.Errorf("minute_interval must be one of %v, got %d", picker.AllowedIntervals, c.Picker.MinuteInterval)
	}
	switch c.Picker.InputMode {
	case InputModeWheel, InputModeText:
	default:
		return fmt.Errorf("input_mode must be %q or %q, got %q", InputModeWheel, InputModeText, c.Picker.InputMode)
	}
	if _, _, err := c.Bounds(); err != nil {
		return err
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// Bounds parses the configured bounds. The returned slice lists bound
// values that could not be parsed and were dropped.
func (c *Config) Bounds() (picker.Bounds, []string, error) {
	return picker.ParseBounds(c.Picker.MinTime, c.Picker.MaxTime)
}

// CurrentTime returns the configured seed time, or nil when unset or malformed.
func (c *Config) CurrentTime() *timeofday.TimeOfDay {
	t, ok := timeofday.ParseLenient(c.Picker.CurrentTime)
	if !ok {
		return nil
	}
	return &t
}

// TextMode reports whether the degraded text input is configured.
func (c *Config) TextMode() bool {
	return c.Picker.InputMode == InputModeText
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
