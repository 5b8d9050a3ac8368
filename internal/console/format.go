// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import "strings"

// Rich-text markup understood by the host renderer. The controller treats it
// as opaque text.
const (
	markupError       = "<color=red><b>"
	markupOutput      = "<color=white><b>"
	markupEchoStart   = "<color=gray><i>"
	markupEchoEnd     = "</i></color>"
	markupEndBoldTint = "</b></color>"
	echoPrompt        = "$"
)

// Intro is the banner appended by DrawIntro.
const Intro = "<color=red><b>|AHHNOLD Console " + Version + "|" + markupEndBoldTint

// FormatEcho formats a submitted input line for the scrollback.
func FormatEcho(raw string) string {
	return markupEchoStart + echoPrompt + raw + markupEchoEnd
}

// FormatError formats an error line.
func FormatError(line string) string {
	return markupError + line + markupEndBoldTint
}

// FormatOutput formats an ordinary output line.
func FormatOutput(line string) string {
	return markupOutput + line + markupEndBoldTint
}

// IsErrorLine reports whether line was produced by FormatError.
func IsErrorLine(line string) bool {
	return line != Intro && strings.HasPrefix(line, markupError) && strings.HasSuffix(line, markupEndBoldTint)
}
