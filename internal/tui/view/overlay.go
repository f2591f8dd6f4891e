package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FillLines pads or trims content to exactly height lines, each at least
// width cells wide, painting the padding with bg.
func FillLines(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	pad := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w < width {
			line += pad.Render(strings.Repeat(" ", width-w))
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// Splice draws box centered over base. Box lines are cut to the base width
// and keep bg across any style resets inside them.
func Splice(base, box string, width, height int, bg lipgloss.Color) string {
	boxLines := strings.Split(box, "\n")
	boxW := 0
	for _, line := range boxLines {
		boxW = max(boxW, lipgloss.Width(line))
	}
	if boxW == 0 {
		return base
	}
	boxW = min(boxW, width)

	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxW)/2, 0)
	restore := backgroundSeq(bg)
	pad := lipgloss.NewStyle().Background(bg)

	rows := strings.Split(FillLines(base, width, height, lipgloss.Color("")), "\n")
	for i, line := range boxLines {
		row := top + i
		if row >= len(rows) {
			break
		}
		line = ansi.Cut(line, 0, boxW)
		if w := lipgloss.Width(line); w < boxW {
			line += pad.Render(strings.Repeat(" ", boxW-w))
		}
		if restore != "" {
			line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+restore)
			line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+restore)
		}
		rows[row] = ansi.Cut(rows[row], 0, left) + line + ansi.ResetStyle + ansi.Cut(rows[row], left+boxW, width)
	}
	return strings.Join(rows, "\n")
}

func backgroundSeq(bg lipgloss.Color) string {
	if bg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}
