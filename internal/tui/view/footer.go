package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW      int
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	VAlign      lipgloss.Position
	Bg          lipgloss.Color
}

// RenderFooter renders the status and help lines.
func RenderFooter(state FooterViewState) string {
	if state.InnerW <= 0 {
		return ""
	}
	s := footerLine(state.InnerW, state.StatusStyle, state.StatusText) + "\n" +
		footerLine(state.InnerW, state.HelpStyle, state.HelpText)
	placed := lipgloss.Place(state.InnerW, 2, lipgloss.Left, state.VAlign, s,
		lipgloss.WithWhitespaceBackground(state.Bg))
	return FillLines(placed, state.InnerW, 2, state.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "…")
	}
	return style.Render(content)
}
