// Package tui provides the terminal user interface for timewheel.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/timewheel/internal/config"
	"github.com/javiermolinar/timewheel/internal/picker"
	"github.com/javiermolinar/timewheel/internal/selection"
	"github.com/javiermolinar/timewheel/internal/tui/commands"
	"github.com/javiermolinar/timewheel/internal/tui/theme"
	"github.com/javiermolinar/timewheel/internal/wheel"
)

// Focus identifies the control receiving keyboard input.
type Focus int

const (
	FocusHour Focus = iota
	FocusMinute
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	repo   selection.Repository
	sink   selection.Sink

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Picker state
	session   picker.Session
	options   picker.Options
	hour      wheelControl
	minute    wheelControl
	focus     Focus
	committed *selection.Selection

	// Text mode
	textMode  bool
	textInput textinput.Model
	textErr   string

	showHelp bool

	// Terminal dimensions and layout
	width     int
	height    int
	cellWidth int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	nowFunc func() time.Time

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithRepository sets the selection history store.
func WithRepository(repo selection.Repository) ModelOption {
	return func(m *Model) {
		m.repo = repo
	}
}

// WithSink sets the receiver of committed selections.
func WithSink(sink selection.Sink) ModelOption {
	return func(m *Model) {
		m.sink = sink
	}
}

// WithPickerOptions overrides the picker options derived from the config.
func WithPickerOptions(opts picker.Options) ModelOption {
	return func(m *Model) {
		m.options = opts
	}
}

// WithNow sets the clock used for the reference date.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.nowFunc = now
		}
	}
}

// OptionsFromConfig builds picker options from the config. Bound values that
// could not be parsed are dropped and returned in malformed.
func OptionsFromConfig(cfg *config.Config, reference time.Time) (picker.Options, []string, error) {
	bounds, malformed, err := cfg.Bounds()
	if err != nil {
		return picker.Options{}, malformed, err
	}
	return picker.Options{
		Bounds:    bounds,
		Interval:  cfg.Picker.MinuteInterval,
		Current:   cfg.CurrentTime(),
		Reference: reference,
	}, malformed, nil
}

// New creates a new TUI model and opens a picking session.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "HH:MM"
	ti.CharLimit = 5
	ti.Width = 6
	ti.Prompt = "› "
	ti.PlaceholderStyle = styles.HintStyle
	ti.TextStyle = styles.Frame.BodyStyle
	ti.PromptStyle = styles.Frame.TitleStyle

	m := &Model{
		config:    cfg,
		theme:     t,
		styles:    styles,
		textMode:  cfg.TextMode(),
		textInput: ti,
		cellWidth: defaultCellWidth,
		nowFunc:   time.Now,
	}
	m.options, _, _ = OptionsFromConfig(cfg, time.Time{})

	for _, opt := range opts {
		opt(m)
	}

	if cfg.UI.Width > 0 {
		m.cellWidth = cfg.UI.Width / wheel.VisibleItems
	}
	if m.textMode {
		m.textInput.Focus()
	}
	m.session = picker.Open(m.options, m.nowFunc())
	m.mountWheels()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.textMode {
		cmds = append(cmds, textinput.Blink)
	}
	if m.config.Picker.RememberLast && m.repo != nil && m.options.Current == nil {
		cmds = append(cmds, commands.LoadLastSelection(m.repo))
	}
	return tea.Batch(cmds...)
}

// Session returns the current picking session.
func (m Model) Session() picker.Session {
	return m.session
}

// Committed returns the confirmed selection, or nil.
func (m Model) Committed() *selection.Selection {
	return m.committed
}

// mountWheels builds both wheels for the current session. Each wheel reports
// the value it centers on.
func (m *Model) mountWheels() {
	hour := m.session.Hour()
	m.hour = newWheelControl(picker.FieldHour, m.session.Hours(), &hour, m.config.Picker.RTL, m.wheelWidth())
	if v, ok := m.hour.wheel.Value(); ok {
		before := m.session.Candidate
		m.session = m.session.Mount(picker.FieldHour, v)
		LogReconcile(m.session.ID, before, m.session.Candidate)
	}
	m.rebuildMinutes(false)
}

// rebuildMinutes recreates the minute wheel for the candidate hour. An empty
// dataset reports nothing.
func (m *Model) rebuildMinutes(settled bool) {
	minute := m.session.Candidate.Minute
	seq := m.minute.seq
	m.minute = newWheelControl(picker.FieldMinute, m.session.Minutes(), &minute, m.config.Picker.RTL, m.wheelWidth())
	m.minute.seq = seq + 1
	v, ok := m.minute.wheel.Value()
	if !ok {
		return
	}
	if settled {
		m.session = m.session.SettleMinute(v)
		return
	}
	m.session = m.session.Mount(picker.FieldMinute, v)
}

func (m *Model) control(field picker.Field) *wheelControl {
	if field == picker.FieldHour {
		return &m.hour
	}
	return &m.minute
}

func (m *Model) focused() *wheelControl {
	if m.focus == FocusHour {
		return &m.hour
	}
	return &m.minute
}

func (m Model) wheelWidth() int {
	return m.cellWidth * wheel.VisibleItems
}

// RunOptions configures a TUI run.
type RunOptions struct {
	Picker picker.Options
	Repo   selection.Repository
	Sink   selection.Sink
	Debug  bool

	// Malformed lists bound values that were dropped while building Picker.
	Malformed []string
}

// Run starts the TUI and returns the committed selection, or nil when the
// picker was cancelled.
func Run(cfg *config.Config, opts RunOptions) (*selection.Selection, error) {
	if err := InitDebugLogger(opts.Debug); err != nil {
		return nil, err
	}
	defer CloseDebugLogger()
	for _, v := range opts.Malformed {
		debugLog.Warn("malformed bound dropped", zap.String("value", v))
	}

	repo := opts.Repo
	if repo == nil {
		opened, err := openRepo(cfg.Storage.DBPath)
		if err != nil {
			debugLog.Warn("selection history disabled", zap.Error(err))
		} else {
			repo = opened
			defer func() { _ = opened.Close() }()
		}
	}

	sink := selection.MultiSink{selection.RepositorySink{Repo: repo}, opts.Sink}
	model := New(cfg,
		WithRepository(repo),
		WithSink(sink),
		WithPickerOptions(opts.Picker),
	)
	debugLog.Debug("session opened",
		zap.String("session", model.session.ID),
		zap.Stringer("candidate", model.session.Candidate),
		zap.String("bounds", model.session.Bounds().Describe()),
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}
	switch fm := finalModel.(type) {
	case Model:
		return fm.committed, nil
	case *Model:
		return fm.committed, nil
	}
	return nil, nil
}
