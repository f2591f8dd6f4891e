// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FrameStyles groups the styles needed to render the picker frame and buttons.
type FrameStyles struct {
	HeaderStyle       lipgloss.Style
	TitleStyle        lipgloss.Style
	FooterStyle       lipgloss.Style
	FrameStyle        lipgloss.Style
	ButtonStyle       lipgloss.Style
	ButtonActiveStyle lipgloss.Style
	BodyStyle         lipgloss.Style
}

// RenderFrame renders a bordered box with the provided title, body, and footer.
func RenderFrame(title, body, footer string, styles FrameStyles) string {
	var b strings.Builder

	b.WriteString(styles.HeaderStyle.Render(styles.TitleStyle.Render(title)))
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.FooterStyle.Render(footer))
	}

	return styles.FrameStyle.Render(b.String())
}

// RenderButtons renders a compact row of buttons with the first one active.
func RenderButtons(styles FrameStyles, labels ...string) string {
	parts := make([]string, 0, len(labels))
	buttonStyle := styles.ButtonStyle.Padding(0, 1)
	activeStyle := styles.ButtonActiveStyle.Padding(0, 1)
	for i, label := range labels {
		style := buttonStyle
		if i == 0 {
			style = activeStyle
		}
		parts = append(parts, style.Render(label))
	}
	sep := styles.BodyStyle.Render(" ")
	return strings.Join(parts, sep)
}

// WheelFooter renders the footer while the wheels are active.
func WheelFooter(styles FrameStyles) string {
	return RenderButtons(styles, "[Enter] Select", "[Esc] Cancel", "[?] Help")
}

// TextFooter renders the footer while typing a time.
func TextFooter(styles FrameStyles) string {
	return RenderButtons(styles, "[Enter] Select", "[Esc] Cancel", "[Ctrl+T] Wheels")
}

// ClosedFooter renders the footer for a cancelled picker.
func ClosedFooter(styles FrameStyles) string {
	return RenderButtons(styles, "[o] Open", "[q] Quit")
}

// CommittedFooter renders the footer after a selection was confirmed.
func CommittedFooter(styles FrameStyles) string {
	return RenderButtons(styles, "[o] Pick again", "[y] Copy", "[q] Quit")
}
