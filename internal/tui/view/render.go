// Package view provides view composition helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// OverlayRenderer renders overlays on top of base content.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// ViewState contains pre-rendered content and overlay metadata.
type ViewState struct {
	Width          int
	Height         int
	BaseContent    string
	OverlayContent string
	ShowOverlay    bool
	Overlay        OverlayRenderer
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		return state.BaseContent
	}

	base := state.BaseContent
	if state.ShowOverlay && state.Overlay != nil {
		return state.Overlay.Render(base, state.Width, state.Height, state.OverlayContent)
	}

	return base
}

// ModalOverlay centers content over the base.
type ModalOverlay struct {
	Bg lipgloss.Color
}

// Render implements OverlayRenderer.
func (o ModalOverlay) Render(base string, width, height int, content string) string {
	if content == "" {
		return base
	}
	return Splice(base, content, width, height, o.Bg)
}
