// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the console overlay.

# Color System (colors.go)

All colors are Lip Gloss AdaptiveColor values so they adapt to light and dark
terminals. MarkupColor maps the color names used by log-line markup
(<color=red>, <color=gray>, ...) onto the palette and accepts #RGB/#RRGGBB
literals.

# Theme System (theme.go)

Theme binds the overlay styles (frame, title, prompt, hint) to a Lip Gloss
renderer. Pass a renderer with a forced profile to disable color:

	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(termenv.Ascii)
	theme := styles.NewThemeWithRenderer(r)
*/
package styles
