// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"errors"
	"fmt"
)

// ErrEmptyCommand is matched by every EmptyCommandError.
var ErrEmptyCommand = errors.New("no parseable tokens")

// EmptyCommandError reports an input line that produced no tokens. The line
// is discarded and not recorded in history.
type EmptyCommandError struct {
	Raw string
}

func (e *EmptyCommandError) Error() string {
	return fmt.Sprintf("Unable to process command '%s'", e.Raw)
}

// Is reports whether target is ErrEmptyCommand.
func (e *EmptyCommandError) Is(target error) bool {
	return target == ErrEmptyCommand
}

// UnknownCommandError reports a command name missing from the registry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command '%s', type 'help' for list.", e.Name)
}

// HandlerUnavailableError reports a registered command without a handler.
type HandlerUnavailableError struct {
	Name string
}

func (e *HandlerUnavailableError) Error() string {
	return fmt.Sprintf("Unable to process command '%s', handler was null.", e.Name)
}

// HandlerPanicError reports a handler that panicked. The panic is contained
// so the host loop keeps running.
type HandlerPanicError struct {
	Name  string
	Value any
}

func (e *HandlerPanicError) Error() string {
	return fmt.Sprintf("Command '%s' failed: %v", e.Name, e.Value)
}

// DuplicateCommandError reports a second registration of the same name. It
// is only produced while a Controller is being constructed.
type DuplicateCommandError struct {
	Name string
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command '%s' is already registered", e.Name)
}
