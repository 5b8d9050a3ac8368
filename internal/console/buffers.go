// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

// =============================================================================
// SCROLLBACK
// =============================================================================

// Scrollback is a bounded FIFO of formatted log lines. Appending to a full
// scrollback evicts the oldest line.
type Scrollback struct {
	lines    []string
	capacity int
}

// NewScrollback creates a scrollback holding at most capacity lines.
// Capacities below one fall back to DefaultScrollbackSize.
func NewScrollback(capacity int) *Scrollback {
	if capacity < 1 {
		capacity = DefaultScrollbackSize
	}
	return &Scrollback{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Append adds a line, evicting the oldest one when full.
func (s *Scrollback) Append(line string) {
	if len(s.lines) >= s.capacity {
		copy(s.lines, s.lines[1:])
		s.lines = s.lines[:len(s.lines)-1]
	}
	s.lines = append(s.lines, line)
}

// Clear removes every line.
func (s *Scrollback) Clear() {
	s.lines = s.lines[:0]
}

// Len returns the number of stored lines.
func (s *Scrollback) Len() int { return len(s.lines) }

// Cap returns the maximum number of stored lines.
func (s *Scrollback) Cap() int { return s.capacity }

// Lines returns a copy of the stored lines, oldest first.
func (s *Scrollback) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// =============================================================================
// COMMAND HISTORY
// =============================================================================

// History is the append-only record of raw command strings in execution
// order. It is unbounded.
type History struct {
	entries []string
}

// Append records a raw command string.
func (h *History) Append(raw string) {
	h.entries = append(h.entries, raw)
}

// Len returns the number of recorded commands.
func (h *History) Len() int { return len(h.entries) }

// At returns the entry at index i. Indexes stay valid for the lifetime of
// the history because entries are never removed.
func (h *History) At(i int) string { return h.entries[i] }

// Entries returns a copy of every recorded command, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
