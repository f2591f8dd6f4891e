// Package tui provides the terminal user interface for timewheel.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timewheel/internal/tui/theme"
	"github.com/javiermolinar/timewheel/internal/tui/view"
)

const (
	// defaultCellWidth is the width of one wheel slot before layout.
	defaultCellWidth = 6
	// wheelLabelWidth is the width of the "Hour"/"Minute" column.
	wheelLabelWidth = 8
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Theme colors as lipgloss colors
	colorBg        lipgloss.Color
	colorPanel     lipgloss.Color
	colorSelection lipgloss.Color
	colorFg        lipgloss.Color
	colorFgMuted   lipgloss.Color
	colorAccent    lipgloss.Color
	colorValid     lipgloss.Color
	colorInvalid   lipgloss.Color
	colorWarning   lipgloss.Color

	// Candidate readout
	CandidateValidStyle   lipgloss.Style
	CandidateInvalidStyle lipgloss.Style

	// Bounds and date hints
	HintStyle lipgloss.Style

	// Text mode input
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
	InputErrorStyle   lipgloss.Style

	// Footer lines
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	// Help overlay
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style

	// Frame
	Frame view.FrameStyles

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	palette := theme.NewPalette(t)
	s := &Styles{palette: palette}

	s.colorBg = palette.Bg
	s.colorPanel = palette.Panel
	s.colorSelection = palette.Selection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorValid = palette.Valid
	s.colorInvalid = palette.Invalid
	s.colorWarning = palette.Warning

	s.CandidateValidStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorValid).
		Background(s.colorPanel)

	s.CandidateInvalidStyle = lipgloss.NewStyle().
		Bold(true).
		Strikethrough(true).
		Foreground(s.colorInvalid).
		Background(s.colorPanel)

	s.HintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorPanel)

	s.InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorPanel).
		Background(s.colorPanel).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.InputFocusedStyle = s.InputStyle.
		BorderForeground(s.colorAccent).
		Background(s.colorSelection)

	s.InputErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorInvalid).
		Background(s.colorPanel)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorPanel)

	s.HelpDescStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorPanel)

	s.Frame = view.FrameStyles{
		HeaderStyle: lipgloss.NewStyle().
			Background(s.colorPanel),
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.colorAccent).
			Background(s.colorPanel),
		FooterStyle: lipgloss.NewStyle().
			Background(s.colorPanel),
		FrameStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(s.colorAccent).
			BorderBackground(s.colorBg).
			Background(s.colorPanel).
			Foreground(s.colorFg).
			Padding(1, 2),
		ButtonStyle: lipgloss.NewStyle().
			Foreground(s.colorFgMuted).
			Background(s.colorPanel),
		ButtonActiveStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.TextOnAccent).
			Background(s.colorAccent),
		BodyStyle: lipgloss.NewStyle().
			Foreground(s.colorFg).
			Background(s.colorPanel),
	}

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	return s
}

// wheelRowState builds the view state for one wheel row.
func (s *Styles) wheelRowState(label string, items []view.WheelItem, cellWidth int, focused bool) view.WheelRowState {
	return view.WheelRowState{
		Label:     label,
		LabelW:    wheelLabelWidth,
		Items:     items,
		CellWidth: cellWidth,
		Focused:   focused,
		Fade:      s.palette.Fade,
		Bg:        s.colorPanel,
		CenterBg:  s.colorSelection,
		Accent:    s.colorAccent,
		Empty:     "no times",
	}
}
