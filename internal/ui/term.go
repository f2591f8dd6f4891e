package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/timewheel/internal/selection"
)

// Color definitions for consistent styling across the UI.
var (
	// Selected times: bold cyan
	colorTime = color.New(color.FgCyan, color.Bold)

	// Wheel source: green
	colorWheel = color.New(color.FgGreen)

	// Text source: yellow
	colorText = color.New(color.FgYellow)

	// Warnings: yellow to make it pop
	colorWarning = color.New(color.FgYellow, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatTime(s string) string {
	return colorTime.Sprint(s)
}

// formatSource pads the source to a fixed column before coloring it.
func formatSource(src selection.Source) string {
	label := fmt.Sprintf("%-5s", src)
	if src == selection.SourceText {
		return colorText.Sprint(label)
	}
	return colorWheel.Sprint(label)
}

func formatWarning(s string) string {
	return colorWarning.Sprint("warning: ") + s
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
