package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timewheel/internal/config"
	"github.com/javiermolinar/timewheel/internal/picker"
	"github.com/javiermolinar/timewheel/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  timewheel config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Picker.MinTime = promptValue(reader, out, "Min time (- for none)", cfg.Picker.MinTime)
	cfg.Picker.MaxTime = promptValue(reader, out, "Max time (- for none)", cfg.Picker.MaxTime)
	cfg.Picker.CurrentTime = promptValue(reader, out, "Initial time (- for min time)", cfg.Picker.CurrentTime)
	cfg.Picker.MinuteInterval = promptInterval(reader, out, cfg.Picker.MinuteInterval)
	cfg.Picker.RTL = promptBool(reader, out, "Right-to-left wheels", cfg.Picker.RTL)
	cfg.Picker.InputMode = promptValue(reader, out, "Input mode (wheel, text)", cfg.Picker.InputMode)
	cfg.Picker.ExitOnCommit = promptBool(reader, out, "Exit on commit", cfg.Picker.ExitOnCommit)
	cfg.Picker.RememberLast = promptBool(reader, out, "Remember last selection", cfg.Picker.RememberLast)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[picker]")
	fmt.Fprintf(out, "  min_time         = %s\n", orNone(cfg.Picker.MinTime))
	fmt.Fprintf(out, "  max_time         = %s\n", orNone(cfg.Picker.MaxTime))
	fmt.Fprintf(out, "  current_time     = %s\n", orNone(cfg.Picker.CurrentTime))
	fmt.Fprintf(out, "  minute_interval  = %d\n", cfg.Picker.MinuteInterval)
	fmt.Fprintf(out, "  rtl              = %t\n", cfg.Picker.RTL)
	fmt.Fprintf(out, "  input_mode       = %s\n", cfg.Picker.InputMode)
	fmt.Fprintf(out, "  exit_on_commit   = %t\n", cfg.Picker.ExitOnCommit)
	fmt.Fprintf(out, "  remember_last    = %t\n", cfg.Picker.RememberLast)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme            = %s\n", cfg.UI.Theme)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input := strings.ToLower(readLine(reader))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input := readLine(reader)
	if input == "" {
		return current
	}
	if input == "-" {
		return ""
	}
	return input
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, out, label+" (true/false)", strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(out, "  Invalid value %q. Use true or false.\n", value)
	}
}

func promptInterval(reader *bufio.Reader, out io.Writer, current int) int {
	label := fmt.Sprintf("Minute interval %v", picker.AllowedIntervals)
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil && picker.ValidInterval(n) {
			return n
		}
		fmt.Fprintf(out, "  Invalid interval %q. Allowed: %v\n", value, picker.AllowedIntervals)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
