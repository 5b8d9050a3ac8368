// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components of the console overlay.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	Frame     lipgloss.Style
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	InputText lipgloss.Style
	Hint      lipgloss.Style
	Closed    lipgloss.Style

	renderer *lipgloss.Renderer
}

// NewTheme creates a theme for the default renderer.
func NewTheme() *Theme {
	return NewThemeWithRenderer(lipgloss.DefaultRenderer())
}

// NewThemeWithRenderer creates a theme whose styles are bound to r. Use
// this to force a color profile, e.g. termenv.Ascii when color is off.
func NewThemeWithRenderer(r *lipgloss.Renderer) *Theme {
	t := &Theme{
		IsDark:       r.HasDarkBackground(),
		ColorProfile: r.ColorProfile(),
		renderer:     r,
	}
	t.initStyles()
	return t
}

// Renderer returns the lip gloss renderer the theme is bound to.
func (t *Theme) Renderer() *lipgloss.Renderer { return t.renderer }

func (t *Theme) initStyles() {
	r := t.renderer

	t.Frame = r.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)

	t.Title = r.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.Prompt = r.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.InputText = r.NewStyle().
		Foreground(TextPrimary)

	t.Hint = r.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Closed = r.NewStyle().
		Foreground(TextSecondary)
}

// SetSize records the terminal size.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// InnerWidth returns the usable width inside the frame border and padding.
func (t *Theme) InnerWidth() int {
	w := t.Width - t.Frame.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}
