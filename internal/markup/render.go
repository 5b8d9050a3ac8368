// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markup

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/jeranaias/ahhnold/internal/ui/styles"
)

const ellipsis = "…"

// Renderer converts markup lines into styled terminal text.
type Renderer struct {
	lip      *lipgloss.Renderer
	maxWidth int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile forces a color profile. termenv.Ascii disables all styling.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.lip.SetColorProfile(p)
	}
}

// WithMaxWidth truncates rendered lines to n display columns. Zero means
// no limit.
func WithMaxWidth(n int) Option {
	return func(r *Renderer) {
		r.maxWidth = n
	}
}

// NewRenderer creates a renderer whose color profile is detected from w.
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{lip: lipgloss.NewRenderer(w)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRendererFrom creates a renderer sharing an existing Lip Gloss renderer,
// so markup follows the same profile as the surrounding UI.
func NewRendererFrom(lip *lipgloss.Renderer, opts ...Option) *Renderer {
	r := &Renderer{lip: lip}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetMaxWidth changes the truncation width. Zero means no limit.
func (r *Renderer) SetMaxWidth(n int) { r.maxWidth = n }

// Profile returns the active color profile.
func (r *Renderer) Profile() termenv.Profile { return r.lip.ColorProfile() }

// Render styles one markup line.
func (r *Renderer) Render(line string) string {
	segments := truncate(Parse(line), r.maxWidth)

	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(r.style(seg).Render(seg.Text))
	}
	return b.String()
}

// RenderLines styles every line and joins them with newlines.
func (r *Renderer) RenderLines(lines []string) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = r.Render(line)
	}
	return strings.Join(rendered, "\n")
}

func (r *Renderer) style(seg Segment) lipgloss.Style {
	st := r.lip.NewStyle()
	if seg.Bold {
		st = st.Bold(true)
	}
	if seg.Italic {
		st = st.Italic(true)
	}
	if seg.Color != "" {
		if c, ok := styles.MarkupColor(seg.Color); ok {
			st = st.Foreground(c)
		}
	}
	return st
}

// truncate shortens segments so their combined display width fits in
// maxWidth, ending with an ellipsis when anything was cut.
func truncate(segments []Segment, maxWidth int) []Segment {
	if maxWidth <= 0 {
		return segments
	}

	total := 0
	for _, seg := range segments {
		total += runewidth.StringWidth(seg.Text)
	}
	if total <= maxWidth {
		return segments
	}

	room := maxWidth - runewidth.StringWidth(ellipsis)
	out := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		w := runewidth.StringWidth(seg.Text)
		if w <= room {
			out = append(out, seg)
			room -= w
			continue
		}
		seg.Text = runewidth.Truncate(seg.Text, max(room, 0), "") + ellipsis
		out = append(out, seg)
		break
	}
	return out
}
