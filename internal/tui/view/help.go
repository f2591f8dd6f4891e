package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyHelp is one key binding shown in the help overlay.
type KeyHelp struct {
	Keys string
	Desc string
}

// PickerKeys lists the picker key bindings.
var PickerKeys = []KeyHelp{
	{Keys: "h/l ←/→", Desc: "Scroll wheel"},
	{Keys: "j/k ↑/↓ tab", Desc: "Switch wheel"},
	{Keys: "pgup/pgdn", Desc: "Scroll five"},
	{Keys: "home/end", Desc: "First/last value"},
	{Keys: "enter", Desc: "Select"},
	{Keys: "esc", Desc: "Cancel"},
	{Keys: "ctrl+t", Desc: "Type a time"},
	{Keys: "y", Desc: "Copy time"},
	{Keys: "q", Desc: "Quit"},
}

// RenderHelp renders key bindings as two aligned columns.
func RenderHelp(keys []KeyHelp, keyStyle, descStyle lipgloss.Style) string {
	keyW := 0
	for _, k := range keys {
		if w := lipgloss.Width(k.Keys); w > keyW {
			keyW = w
		}
	}
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, keyStyle.Width(keyW+2).Render(k.Keys)+descStyle.Render(k.Desc))
	}
	return strings.Join(lines, "\n")
}
