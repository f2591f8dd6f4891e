package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timewheel/internal/picker"
	"github.com/javiermolinar/timewheel/internal/tui/commands"
	"github.com/javiermolinar/timewheel/internal/wheel"
)

const (
	minCellWidth = 3
	maxCellWidth = 8
	// frameOverhead is the horizontal space taken by the frame border and padding.
	frameOverhead = 6
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cellWidth = m.calculateCellWidth()
		m.hour.layout(m.wheelWidth())
		m.minute.layout(m.wheelWidth())
		return m, nil

	case commands.ScrollTickMsg:
		if msg.SessionID != m.session.ID {
			LogStale("scroll_tick", msg.SessionID, msg.Seq)
			return m, nil
		}
		ctl := m.control(msg.Field)
		if msg.Seq != ctl.seq {
			LogStale("scroll_tick", msg.SessionID, msg.Seq)
			return m, nil
		}
		if !ctl.frame() {
			return m, commands.AnimateScroll(m.session.ID, msg.Field, msg.Seq)
		}
		return m.settle(msg.Field), nil

	case commands.SettleMsg:
		if msg.SessionID != m.session.ID || msg.Seq != m.control(msg.Field).seq {
			LogStale("settle", msg.SessionID, msg.Seq)
			return m, nil
		}
		return m.settle(msg.Field), nil

	case commands.SelectionDeliveredMsg:
		if m.config.Picker.ExitOnCommit {
			return m, tea.Quit
		}
		m.statusMsg = fmt.Sprintf("Saved %s", msg.Selection.Clock())
		m.statusTime = m.nowFunc().Add(3 * time.Second)
		return m, clearStatusAfter(3 * time.Second)

	case commands.LastSelectionMsg:
		if msg.Selection == nil || m.session.State != picker.StateOpen {
			return m, nil
		}
		last := msg.Selection.Clock()
		m.options.Current = &last
		m.session = picker.Open(m.options, m.nowFunc())
		m.mountWheels()
		m.statusMsg = fmt.Sprintf("Last pick %s", last)
		m.statusTime = m.nowFunc().Add(3 * time.Second)
		return m, clearStatusAfter(3 * time.Second)

	case commands.ErrMsg:
		LogError("update", msg.Err)
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = m.nowFunc().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = m.nowFunc().Add(3 * time.Second)
		return m, clearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if !m.nowFunc().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	if m.textMode && m.session.Active() {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// calculateCellWidth sizes wheel slots to the terminal unless the config
// pins the wheel width.
func (m Model) calculateCellWidth() int {
	if m.config.UI.Width > 0 {
		return m.config.UI.Width / wheel.VisibleItems
	}
	w := (m.width - frameOverhead - wheelLabelWidth) / wheel.VisibleItems
	if w < minCellWidth {
		w = minCellWidth
	}
	if w > maxCellWidth {
		w = maxCellWidth
	}
	return w
}

// settle snaps a wheel and applies its value to the session.
func (m Model) settle(field picker.Field) Model {
	ctl := m.control(field)
	v, ok := ctl.settle()
	if !ok {
		return m
	}
	LogSettle(m.session.ID, field, v)

	before := m.session
	if field == picker.FieldHour {
		m.session = m.session.SettleHour(v)
		LogReconcile(m.session.ID, before.Candidate, m.session.Candidate)
		m.rebuildMinutes(true)
	} else {
		m.session = m.session.SettleMinute(v)
	}
	LogTransition(m.session.ID, before.State, m.session.State, "settle "+field.String())
	return m
}

// settlePending settles wheels that were scrolled but not yet settled. The
// minute wheel goes first so an hour change reconciles the latest minute.
func (m Model) settlePending() Model {
	for _, field := range []picker.Field{picker.FieldMinute, picker.FieldHour} {
		ctl := m.control(field)
		if !ctl.pending {
			continue
		}
		ctl.flush()
		m = m.settle(field)
	}
	return m
}

// scrollFocused moves the focused wheel by whole slots in screen direction.
func (m Model) scrollFocused(screenSteps int) (Model, tea.Cmd) {
	ctl := m.focused()
	if ctl.wheel.Empty() {
		return m, nil
	}
	steps := ctl.wheel.Visual(float64(screenSteps))
	return m.scrollTo(ctl.field, ctl.base()+steps)
}

// scrollTo animates a wheel to a slot position.
func (m Model) scrollTo(field picker.Field, pos float64) (Model, tea.Cmd) {
	ctl := m.control(field)
	if ctl.wheel.Empty() {
		return m, nil
	}
	if !ctl.aim(pos) {
		return m.settle(field), nil
	}
	return m, commands.AnimateScroll(m.session.ID, field, ctl.seq)
}

// handleMouseMsg scrolls the focused wheel freely and settles once idle.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.session.Active() || m.textMode || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	ctl := m.focused()
	half := ctl.wheel.ItemWidth() / 2

	var delta float64
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		delta = -half
	case tea.MouseButtonWheelDown:
		delta = half
	case tea.MouseButtonWheelLeft:
		delta = ctl.wheel.Visual(-half)
	case tea.MouseButtonWheelRight:
		delta = ctl.wheel.Visual(half)
	default:
		return m, nil
	}
	if ctl.wheel.Empty() || delta == 0 {
		return m, nil
	}
	ctl.nudge(delta)
	return m, commands.ScheduleSettle(m.session.ID, ctl.field, ctl.seq)
}
