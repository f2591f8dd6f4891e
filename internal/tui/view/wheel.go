package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Scale thresholds for mapping slot emphasis onto terminal attributes.
const (
	boldScale  = 1.1
	faintScale = 0.85
)

const wheelSlots = 5

// WheelItem is one visible slot of a wheel.
type WheelItem struct {
	Label    string
	Opacity  float64
	Scale    float64
	Centered bool
}

// WheelRowState holds everything needed to draw one wheel row.
type WheelRowState struct {
	Label     string
	LabelW    int
	Items     []WheelItem
	CellWidth int
	Focused   bool
	Fade      func(opacity float64) lipgloss.Color
	Bg        lipgloss.Color
	CenterBg  lipgloss.Color
	Accent    lipgloss.Color
	Empty     string
}

// RenderWheelRow renders a labelled wheel as a single line. Each item is a
// fixed-width cell whose color is faded by its opacity.
func RenderWheelRow(state WheelRowState) string {
	label := lipgloss.NewStyle().
		Width(state.LabelW).
		Background(state.Bg).
		Foreground(state.Accent).
		Render(state.Label)

	if len(state.Items) == 0 {
		empty := lipgloss.NewStyle().
			Width(state.CellWidth * wheelSlots).
			Align(lipgloss.Center).
			Background(state.Bg).
			Foreground(fade(state, 0.5)).
			Render(state.Empty)
		return label + empty
	}

	cells := make([]string, 0, len(state.Items))
	for _, item := range state.Items {
		cells = append(cells, renderWheelCell(state, item))
	}
	return label + lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderWheelCell(state WheelRowState, item WheelItem) string {
	width := state.CellWidth
	if width < 1 {
		width = 1
	}
	text := item.Label
	if lipgloss.Width(text) > width {
		text = ansi.Truncate(text, width, "")
	}

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Background(state.Bg).
		Foreground(fade(state, item.Opacity))

	switch {
	case item.Scale >= boldScale:
		style = style.Bold(true)
	case item.Scale < faintScale:
		style = style.Faint(true)
	}

	if item.Centered {
		style = style.Background(state.CenterBg)
		if state.Focused {
			style = style.Foreground(state.Accent).Underline(true)
		}
	}
	return style.Render(text)
}

func fade(state WheelRowState, opacity float64) lipgloss.Color {
	if state.Fade == nil {
		return state.Accent
	}
	return state.Fade(opacity)
}

// RenderWheelMarker renders the indicator line under the centered cell.
func RenderWheelMarker(labelW, cellWidth int, focused bool, accent, bg lipgloss.Color) string {
	mark := " "
	if focused {
		mark = "▲"
	}
	style := lipgloss.NewStyle().Background(bg)
	left := strings.Repeat(" ", labelW+2*cellWidth)
	center := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Background(bg).
		Foreground(accent).
		Render(mark)
	right := strings.Repeat(" ", 2*cellWidth)
	return style.Render(left) + center + style.Render(right)
}
