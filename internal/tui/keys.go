package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timewheel/internal/picker"
	"github.com/javiermolinar/timewheel/internal/selection"
	"github.com/javiermolinar/timewheel/internal/timeofday"
	"github.com/javiermolinar/timewheel/internal/tui/commands"
	"github.com/javiermolinar/timewheel/internal/tui/input"
)

// pageSize is the number of slots pgup/pgdown move.
const pageSize = 5

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if !m.session.Active() {
		return m.handleClosedKeys(msg)
	}
	if m.textMode {
		return m.handleTextKeys(msg)
	}
	return m.handleWheelKeys(msg)
}

// handleWheelKeys handles keys while the wheels are active.
func (m Model) handleWheelKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil

	// Scrolling
	case "h", "left":
		return m.scrollFocused(-1)
	case "l", "right":
		return m.scrollFocused(1)
	case "pgup", "ctrl+u":
		ctl := m.focused()
		return m.scrollTo(ctl.field, ctl.base()-pageSize)
	case "pgdown", "ctrl+d":
		ctl := m.focused()
		return m.scrollTo(ctl.field, ctl.base()+pageSize)
	case "home", "g":
		return m.scrollTo(m.focused().field, 0)
	case "end", "G":
		ctl := m.focused()
		return m.scrollTo(ctl.field, ctl.wheel.MaxPosition())

	// Focus
	case "tab", "shift+tab", "j", "k", "up", "down":
		if m.focus == FocusHour {
			m.focus = FocusMinute
		} else {
			m.focus = FocusHour
		}
		return m, nil

	case "enter":
		m = m.settlePending()
		next, sel, err := m.session.Commit()
		if err != nil {
			return m.rejectCommit(err)
		}
		return m.commitSelection(next, sel)
	case "esc":
		return m.cancel()
	case "ctrl+t":
		m.textMode = true
		m.textErr = ""
		m.textInput.SetValue(m.session.Candidate.String())
		m.textInput.CursorEnd()
		return m, m.textInput.Focus()
	case "y":
		return m.copyTime(m.session.Candidate)
	}
	return m, nil
}

// handleTextKeys handles keys in the degraded text input mode.
func (m Model) handleTextKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		next, sel := m.session.SubmitText(m.textInput.Value())
		if sel == nil {
			m.textErr = m.textErrorFor(m.textInput.Value())
			return m, nil
		}
		m.textErr = ""
		return m.commitSelection(next, *sel)
	case "tab":
		if value, ok := input.Autocomplete(m.textInput.Value(), m.validTimes()); ok {
			m.textInput.SetValue(value)
			m.textInput.CursorEnd()
		}
		return m, nil
	case "esc":
		return m.cancel()
	case "ctrl+t":
		m.textMode = false
		m.textErr = ""
		m.textInput.Blur()
		if c, err := timeofday.Parse(m.textInput.Value()); err == nil {
			opts := m.session.Options()
			opts.Current = &c
			m.options = opts
			before := m.session
			m.session = picker.Open(opts, m.nowFunc())
			m.mountWheels()
			LogTransition(m.session.ID, before.State, m.session.State, "text to wheels")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.textErr = ""
	return m, cmd
}

// handleClosedKeys handles keys once the session is committed or cancelled.
func (m Model) handleClosedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "o":
		before := m.session
		m.session = m.session.Reopen(m.nowFunc())
		m.committed = nil
		m.textErr = ""
		m.textInput.SetValue("")
		m.mountWheels()
		LogTransition(m.session.ID, before.State, m.session.State, "reopen")
		if m.textMode {
			return m, m.textInput.Focus()
		}
		return m, nil
	case "y":
		if m.committed != nil {
			return m.copyTime(m.committed.Clock())
		}
	}
	return m, nil
}

func (m Model) commitSelection(next picker.Session, sel selection.Selection) (Model, tea.Cmd) {
	LogTransition(next.ID, m.session.State, next.State, "commit")
	m.session = next
	m.committed = &sel
	m.textInput.Blur()
	m.statusMsg = fmt.Sprintf("Selected %s", sel.Clock())
	m.statusTime = m.nowFunc().Add(3 * time.Second)
	return m, commands.DeliverSelection(m.sink, sel)
}

func (m Model) rejectCommit(err error) (Model, tea.Cmd) {
	LogError("commit", err)
	switch {
	case errors.Is(err, picker.ErrNoValidSelection):
		m.statusMsg = "No valid minutes for this hour"
	default:
		m.statusMsg = m.session.Bounds().Describe()
	}
	m.statusTime = m.nowFunc().Add(3 * time.Second)
	return m, clearStatusAfter(3 * time.Second)
}

func (m Model) cancel() (Model, tea.Cmd) {
	before := m.session
	m.session = m.session.Cancel()
	m.committed = nil
	m.textInput.Blur()
	LogTransition(m.session.ID, before.State, m.session.State, "cancel")
	if m.config.Picker.ExitOnCommit {
		return m, tea.Quit
	}
	m.statusMsg = "Cancelled"
	m.statusTime = m.nowFunc().Add(3 * time.Second)
	return m, clearStatusAfter(3 * time.Second)
}

func (m Model) textErrorFor(raw string) string {
	if _, err := timeofday.Parse(raw); err != nil {
		return "Enter a time as HH:MM"
	}
	return m.session.Bounds().Describe()
}

func (m Model) copyTime(t timeofday.TimeOfDay) (Model, tea.Cmd) {
	if err := clipboardWrite(t.String()); err != nil {
		return m, func() tea.Msg {
			return commands.ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
	}
	return m, commands.Status("Copied " + t.String())
}

// validTimes lists every committable time of the session as "HH:MM".
func (m Model) validTimes() []string {
	var times []string
	for _, h := range m.session.Hours() {
		for _, minute := range picker.MinuteDataset(h, m.session.Interval(), m.session.Bounds()) {
			times = append(times, timeofday.TimeOfDay{Hour: h, Minute: minute}.String())
		}
	}
	return times
}
