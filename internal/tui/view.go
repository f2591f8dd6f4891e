package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timewheel/internal/picker"
	"github.com/javiermolinar/timewheel/internal/tui/input"
	"github.com/javiermolinar/timewheel/internal/tui/view"
)

const footerHeight = 2

// View renders the TUI.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	frame := m.renderFrame()
	state := view.ViewState{
		Width:       m.width,
		Height:      m.height,
		BaseContent: frame,
		ShowOverlay: m.showHelp,
		Overlay:     view.ModalOverlay{Bg: m.styles.colorPanel},
	}
	if m.showHelp {
		state.OverlayContent = m.renderHelpOverlay()
	}
	if m.width <= 0 || m.height <= 0 {
		return state
	}

	bodyH := m.height - footerHeight
	if bodyH < 1 {
		bodyH = 1
	}
	body := lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, frame,
		lipgloss.WithWhitespaceBackground(m.styles.colorBg))
	footer := view.RenderFooter(view.FooterViewState{
		InnerW:      m.width,
		StatusText:  m.statusMsg,
		HelpText:    m.helpLine(),
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		VAlign:      lipgloss.Bottom,
		Bg:          m.styles.colorBg,
	})
	app := m.styles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))
	state.BaseContent = view.FillLines(app, m.width, m.height, m.styles.colorBg)
	return state
}

func (m Model) renderFrame() string {
	switch m.session.State {
	case picker.StateClosed:
		body := m.styles.Frame.BodyStyle.Render("Picker closed.")
		return view.RenderFrame("Select time", body, view.ClosedFooter(m.styles.Frame), m.styles.Frame)
	case picker.StateCommitted:
		return view.RenderFrame("Select time", m.renderCommitted(), view.CommittedFooter(m.styles.Frame), m.styles.Frame)
	}

	footer := view.WheelFooter(m.styles.Frame)
	body := m.renderWheels()
	if m.textMode {
		footer = view.TextFooter(m.styles.Frame)
		body = m.renderTextInput()
	}
	return view.RenderFrame("Select time", m.renderHints()+"\n\n"+body, footer, m.styles.Frame)
}

func (m Model) renderHints() string {
	bounds := m.session.Bounds()
	limits := "Any time of day"
	if !bounds.IsFullDay() {
		limits = fmt.Sprintf("%s to %s", bounds.EffectiveMin(), bounds.EffectiveMax())
	}
	ref := m.session.Options().Reference
	hint := fmt.Sprintf("%s · %s · %s",
		limits,
		view.FormatInterval(m.session.Interval()),
		view.DateLabel(ref, m.nowFunc()),
	)
	return m.styles.HintStyle.Render(hint)
}

func (m Model) renderWheels() string {
	hourRow := view.RenderWheelRow(m.styles.wheelRowState("Hour", m.hour.items(), m.cellWidth, m.focus == FocusHour))
	minuteRow := view.RenderWheelRow(m.styles.wheelRowState("Minute", m.minute.items(), m.cellWidth, m.focus == FocusMinute))
	hourMark := view.RenderWheelMarker(wheelLabelWidth, m.cellWidth, m.focus == FocusHour, m.styles.colorAccent, m.styles.colorPanel)
	minuteMark := view.RenderWheelMarker(wheelLabelWidth, m.cellWidth, m.focus == FocusMinute, m.styles.colorAccent, m.styles.colorPanel)

	lines := []string{hourRow, hourMark, minuteRow, minuteMark, "", m.renderCandidate()}
	return strings.Join(lines, "\n")
}

func (m Model) renderCandidate() string {
	c := m.session.Candidate
	if m.session.Valid() {
		return m.styles.CandidateValidStyle.Render(c.String())
	}
	label := c.String()
	if len(m.session.Minutes()) == 0 {
		label = fmt.Sprintf("%02d:--", m.session.Hour())
	}
	return m.styles.CandidateInvalidStyle.Render(label) +
		m.styles.HintStyle.Render("  "+m.session.Bounds().Describe())
}

func (m Model) renderTextInput() string {
	style := m.styles.InputStyle
	if m.textInput.Focused() {
		style = m.styles.InputFocusedStyle
	}
	box := style.Render(m.textInput.View())
	if m.textErr != "" {
		return box + "\n" + m.styles.InputErrorStyle.Render(m.textErr)
	}
	matches := input.MatchingTimes(m.textInput.Value(), m.validTimes())
	if len(matches) == 0 {
		return box
	}
	if len(matches) > input.MaxSuggestions {
		matches = matches[:input.MaxSuggestions]
	}
	return box + "\n" + m.styles.HintStyle.Render("tab: "+strings.Join(matches, "  "))
}

func (m Model) renderCommitted() string {
	if m.committed == nil {
		return ""
	}
	at := m.committed.At
	return m.styles.CandidateValidStyle.Render(m.committed.Clock().String()) +
		m.styles.HintStyle.Render("  "+view.DateLabel(at, m.nowFunc()))
}

func (m Model) renderHelpOverlay() string {
	help := view.RenderHelp(view.PickerKeys, m.styles.HelpKeyStyle, m.styles.HelpDescStyle)
	return view.RenderFrame("Keys", help, "", m.styles.Frame)
}

func (m Model) helpLine() string {
	switch {
	case !m.session.Active():
		return "o open · q quit"
	case m.textMode:
		return "enter select · esc cancel · ctrl+t wheels"
	default:
		return "←/→ scroll · tab switch · enter select · esc cancel · ? help"
	}
}
