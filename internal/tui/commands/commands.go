// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timewheel/internal/picker"
	"github.com/javiermolinar/timewheel/internal/selection"
)

const (
	// FrameInterval is the delay between scroll animation frames.
	FrameInterval = 16 * time.Millisecond
	// SettleDelay is how long a wheel must be idle before it settles.
	SettleDelay = 150 * time.Millisecond
)

// ScrollTickMsg advances a running scroll animation by one frame.
type ScrollTickMsg struct {
	SessionID string
	Field     picker.Field
	Seq       int
}

// SettleMsg is sent when a wheel stopped scrolling.
type SettleMsg struct {
	SessionID string
	Field     picker.Field
	Seq       int
}

// SelectionDeliveredMsg is sent after a committed selection reached the sink.
type SelectionDeliveredMsg struct {
	Selection selection.Selection
}

// LastSelectionMsg carries the most recent stored selection, if any.
type LastSelectionMsg struct {
	Selection *selection.Selection
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// AnimateScroll schedules the next animation frame for a wheel.
func AnimateScroll(sessionID string, field picker.Field, seq int) tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return ScrollTickMsg{SessionID: sessionID, Field: field, Seq: seq}
	})
}

// ScheduleSettle schedules a settle check for a wheel. Only the message
// carrying the latest sequence number should be honored.
func ScheduleSettle(sessionID string, field picker.Field, seq int) tea.Cmd {
	return tea.Tick(SettleDelay, func(time.Time) tea.Msg {
		return SettleMsg{SessionID: sessionID, Field: field, Seq: seq}
	})
}

// DeliverSelection hands a committed selection to the sink.
func DeliverSelection(sink selection.Sink, sel selection.Selection) tea.Cmd {
	return func() tea.Msg {
		if sink != nil {
			if err := sink.OnTimeChange(context.Background(), sel); err != nil {
				return ErrMsg{Err: fmt.Errorf("delivering selection: %w", err)}
			}
		}
		return SelectionDeliveredMsg{Selection: sel}
	}
}

// LoadLastSelection loads the most recent stored selection.
func LoadLastSelection(repo selection.Repository) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return LastSelectionMsg{}
		}
		sel, err := repo.LastSelection(context.Background())
		if errors.Is(err, selection.ErrNotFound) {
			return LastSelectionMsg{}
		}
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading last selection: %w", err)}
		}
		return LastSelectionMsg{Selection: sel}
	}
}

// Status returns a command that shows a temporary status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
