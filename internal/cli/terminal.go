// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jeranaias/ahhnold/internal/config"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return isTerminal(os.Stdin)
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return isTerminal(os.Stdout)
}

// =============================================================================
// COLOR PROFILE
// =============================================================================

// ColorProfile resolves a ui.color mode for output written to w. "auto"
// follows terminal detection plus NO_COLOR and CLICOLOR_FORCE; "always"
// guarantees at least 256 colors.
func ColorProfile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		p := termenv.NewOutput(w).EnvColorProfile()
		if p == termenv.Ascii {
			return termenv.ANSI256
		}
		return p
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

// clearScreenFunc returns a function that clears w, or nil when w is not a
// terminal.
func clearScreenFunc(w io.Writer) func() {
	if !isTerminal(w) {
		return nil
	}
	out := termenv.NewOutput(w)
	return func() {
		out.ClearScreen()
	}
}
