package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timewheel/internal/config"
	"github.com/javiermolinar/timewheel/internal/db"
	"github.com/javiermolinar/timewheel/internal/picker"
	"github.com/javiermolinar/timewheel/internal/refdate"
	"github.com/javiermolinar/timewheel/internal/selection"
	"github.com/javiermolinar/timewheel/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     selection.Repository
	ownsRepo bool
	config   *config.Config
	root     *cobra.Command
	debug    bool // Enable debug logging

	// Picker overrides
	minTime  string
	maxTime  string
	current  string
	interval int
	rtl      bool
	text     bool
	date     string

	now func() time.Time
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened from the configured db_path on first use.
func NewApp(repo selection.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "timewheel",
		Short: "A wheel time picker for the terminal",
		Long: `Timewheel picks a time of day with two scrolling wheels.

The hour and minute wheels only offer times inside the configured range,
at the configured minute interval. The committed time is printed as
RFC3339 on the reference date.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPicker(cmd)
		},
	}

	// Add global flags
	flags := a.root.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	flags.StringVar(&a.minTime, "min", "", "Earliest selectable time (HH:MM)")
	flags.StringVar(&a.maxTime, "max", "", "Latest selectable time (HH:MM)")
	flags.IntVar(&a.interval, "interval", 0, fmt.Sprintf("Minute interval, one of %v", picker.AllowedIntervals))
	flags.StringVar(&a.date, "date", "", "Reference date: YYYY-MM-DD, today, tomorrow, yesterday, a weekday or last-<weekday>")

	a.root.Flags().StringVar(&a.current, "current", "", "Initial time (HH:MM)")
	a.root.Flags().BoolVar(&a.rtl, "rtl", false, "Mirror the wheels for right-to-left layouts")
	a.root.Flags().BoolVar(&a.text, "text", false, "Type the time instead of scrolling")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.checkCmd())
	a.root.AddCommand(a.hoursCmd())
	a.root.AddCommand(a.minutesCmd())
	a.root.AddCommand(a.historyCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "timewheel %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository when the app opened it.
func (a *App) Close() error {
	if a.ownsRepo && a.repo != nil {
		return a.repo.Close()
	}
	return nil
}

func (a *App) runPicker(cmd *cobra.Command) error {
	cfg, err := a.effectiveConfig(cmd)
	if err != nil {
		return err
	}
	opts, malformed, err := a.pickerOptions(cfg)
	if err != nil {
		return err
	}
	for _, v := range malformed {
		fmt.Fprintln(cmd.ErrOrStderr(), formatWarning(fmt.Sprintf("ignoring malformed bound %q", v)))
	}

	sel, err := tui.Run(cfg, tui.RunOptions{
		Picker:    opts,
		Repo:      a.repo,
		Debug:     a.debug,
		Malformed: malformed,
	})
	if err != nil {
		return err
	}
	if sel == nil {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), sel.At.Format(time.RFC3339))
	return nil
}

// effectiveConfig returns a copy of the config with the command line
// overrides applied.
func (a *App) effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := *a.config
	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.Picker.MinTime = a.minTime
	}
	if flags.Changed("max") {
		cfg.Picker.MaxTime = a.maxTime
	}
	if flags.Changed("interval") {
		cfg.Picker.MinuteInterval = a.interval
	}
	if flags.Changed("current") {
		cfg.Picker.CurrentTime = a.current
	}
	if flags.Changed("rtl") {
		cfg.Picker.RTL = a.rtl
	}
	if flags.Changed("text") && a.text {
		cfg.Picker.InputMode = config.InputModeText
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &cfg, nil
}

func (a *App) pickerOptions(cfg *config.Config) (picker.Options, []string, error) {
	ref, err := a.reference()
	if err != nil {
		return picker.Options{}, nil, err
	}
	return tui.OptionsFromConfig(cfg, ref)
}

// reference returns the date selections are combined onto.
func (a *App) reference() (time.Time, error) {
	ref, err := refdate.Parse(a.date, a.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", a.date, err)
	}
	return ref, nil
}

// repository returns the selection store, opening it when needed.
func (a *App) repository() (selection.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	if a.config.Storage.DBPath == "" {
		return nil, errors.New("db_path is not configured")
	}
	repo, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	a.repo = repo
	a.ownsRepo = true
	return repo, nil
}
