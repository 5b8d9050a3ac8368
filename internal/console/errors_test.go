// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&EmptyCommandError{Raw: "  "}, "Unable to process command '  '"},
		{&UnknownCommandError{Name: "x"}, "Unknown command 'x', type 'help' for list."},
		{&HandlerUnavailableError{Name: "x"}, "Unable to process command 'x', handler was null."},
		{&HandlerPanicError{Name: "x", Value: "bad"}, "Command 'x' failed: bad"},
		{&DuplicateCommandError{Name: "x"}, "command 'x' is already registered"},
	}

	for _, tc := range tests {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestEmptyCommandErrorIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &EmptyCommandError{Raw: ""})
	if !errors.Is(err, ErrEmptyCommand) {
		t.Error("EmptyCommandError should match ErrEmptyCommand")
	}
	if errors.Is(&UnknownCommandError{Name: "x"}, ErrEmptyCommand) {
		t.Error("UnknownCommandError should not match ErrEmptyCommand")
	}
}

func TestIsErrorLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{FormatError("broken"), true},
		{FormatOutput("fine"), false},
		{FormatEcho("cmd"), false},
		{Intro, false},
		{"plain", false},
	}

	for _, tc := range tests {
		if got := IsErrorLine(tc.line); got != tc.want {
			t.Errorf("IsErrorLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}
