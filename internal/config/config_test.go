package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/timewheel/internal/picker"
	"github.com/javiermolinar/timewheel/internal/timeofday"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Picker.MinuteInterval != 5 {
		t.Errorf("expected minute_interval 5, got %d", cfg.Picker.MinuteInterval)
	}
	if cfg.Picker.InputMode != InputModeWheel {
		t.Errorf("expected input_mode wheel, got %s", cfg.Picker.InputMode)
	}
	if !cfg.Picker.ExitOnCommit {
		t.Error("expected exit_on_commit to default to true")
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
	if cfg.Storage.DBPath == "" {
		t.Error("expected default db_path")
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Picker.MinuteInterval != picker.DefaultInterval {
		t.Errorf("expected default minute_interval, got %d", cfg.Picker.MinuteInterval)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[picker]
min_time = "12:00"
max_time = "1972-01-01 15:00"
minute_interval = 3
rtl = true
input_mode = "text"

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
width = 40
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Picker.MinuteInterval != 3 {
		t.Errorf("expected minute_interval 3, got %d", cfg.Picker.MinuteInterval)
	}
	if !cfg.Picker.RTL {
		t.Error("expected rtl true")
	}
	if !cfg.TextMode() {
		t.Error("expected text mode")
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Width != 40 {
		t.Errorf("expected width 40, got %d", cfg.UI.Width)
	}

	b, malformed, err := cfg.Bounds()
	if err != nil {
		t.Fatalf("Bounds: %v", err)
	}
	if len(malformed) != 0 {
		t.Errorf("unexpected malformed bounds: %v", malformed)
	}
	if b.Max == nil || *b.Max != (timeofday.TimeOfDay{Hour: 15}) {
		t.Errorf("expected max 15:00, got %v", b.Max)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[picker]
min_time = "08:00"
max_time = "16:00"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("TIMEWHEEL_MIN_TIME", "10:00")
	t.Setenv("TIMEWHEEL_MINUTE_INTERVAL", "15")
	t.Setenv("TIMEWHEEL_RTL", "true")
	t.Setenv("TIMEWHEEL_UI_THEME", "mocha")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Picker.MinTime != "10:00" {
		t.Errorf("expected min_time 10:00 from env, got %s", cfg.Picker.MinTime)
	}
	if cfg.Picker.MaxTime != "16:00" {
		t.Errorf("expected max_time 16:00 from file, got %s", cfg.Picker.MaxTime)
	}
	if cfg.Picker.MinuteInterval != 15 {
		t.Errorf("expected minute_interval 15 from env, got %d", cfg.Picker.MinuteInterval)
	}
	if !cfg.Picker.RTL {
		t.Error("expected rtl from env")
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha from env, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidEnvNumberIgnored(t *testing.T) {
	t.Setenv("TIMEWHEEL_MINUTE_INTERVAL", "often")
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Picker.MinuteInterval != picker.DefaultInterval {
		t.Errorf("expected default interval, got %d", cfg.Picker.MinuteInterval)
	}
}

func TestValidate_Interval(t *testing.T) {
	cfg := Default()
	cfg.Picker.MinuteInterval = 7

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for minute_interval 7")
	}
}

func TestValidate_InputMode(t *testing.T) {
	cfg := Default()
	cfg.Picker.InputMode = "voice"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for input_mode")
	}
}

func TestValidate_MalformedBoundIsNotAnError(t *testing.T) {
	cfg := Default()
	cfg.Picker.MinTime = "lunchtime"
	cfg.Picker.MaxTime = "15:00"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, malformed, _ := cfg.Bounds()
	if b.Min != nil {
		t.Errorf("expected malformed min to be dropped, got %v", b.Min)
	}
	if len(malformed) != 1 {
		t.Errorf("expected one malformed bound, got %v", malformed)
	}
}

func TestValidate_InvertedBounds(t *testing.T) {
	cfg := Default()
	cfg.Picker.MinTime = "15:00"
	cfg.Picker.MaxTime = "12:00"

	err := cfg.Validate()
	if !errors.Is(err, picker.ErrBoundsInverted) {
		t.Fatalf("expected ErrBoundsInverted, got %v", err)
	}
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := Default()
	cfg.Storage.DBPath = ""

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty db_path")
	}
}

func TestCurrentTime(t *testing.T) {
	cfg := Default()
	if cfg.CurrentTime() != nil {
		t.Error("expected nil current time by default")
	}
	cfg.Picker.CurrentTime = "14:20"
	got := cfg.CurrentTime()
	if got == nil || *got != (timeofday.TimeOfDay{Hour: 14, Minute: 20}) {
		t.Errorf("expected 14:20, got %v", got)
	}
	cfg.Picker.CurrentTime = "whenever"
	if cfg.CurrentTime() != nil {
		t.Error("expected malformed current time to be nil")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/data/tw.db"); got != filepath.Join(home, "data", "tw.db") {
		t.Errorf("expandPath = %q", got)
	}
	if got := expandPath("/abs/tw.db"); got != "/abs/tw.db" {
		t.Errorf("expandPath = %q", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.toml")

	cfg := Default()
	cfg.Picker.MinTime = "09:30"
	cfg.Picker.MinuteInterval = 10
	cfg.Storage.DBPath = "/tmp/saved.db"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if loaded.Picker.MinTime != "09:30" {
		t.Errorf("expected min_time 09:30, got %s", loaded.Picker.MinTime)
	}
	if loaded.Picker.MinuteInterval != 10 {
		t.Errorf("expected minute_interval 10, got %d", loaded.Picker.MinuteInterval)
	}
	if loaded.Storage.DBPath != "/tmp/saved.db" {
		t.Errorf("expected db_path /tmp/saved.db, got %s", loaded.Storage.DBPath)
	}
}
