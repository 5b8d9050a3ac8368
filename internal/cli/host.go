// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jeranaias/ahhnold/internal/console"
	"github.com/jeranaias/ahhnold/internal/markup"
)

// lineHost prints scrollback lines as they are appended. The controller
// publishes once per appended line, so the newest line is always the only
// new one; an empty snapshot means the scrollback was cleared.
type lineHost struct {
	out      io.Writer
	renderer *markup.Renderer
	clear    func()

	stopped bool
	failed  int
	cancels []func()
}

func newLineHost(s *session, out io.Writer, clear func()) *lineHost {
	h := &lineHost{
		out:      out,
		renderer: markup.NewRenderer(out, markup.WithProfile(ColorProfile(s.cfg.UI.Color, out)), markup.WithMaxWidth(s.cfg.UI.MaxLineWidth)),
		clear:    clear,
	}
	h.cancels = append(h.cancels,
		s.ctrl.OnLogChanged(h.onLogChanged),
		s.ctrl.OnVisibilityChanged(func(visible bool) {
			if !visible {
				h.stopped = true
			}
		}),
	)
	s.onQuit = h.stop
	return h
}

func (h *lineHost) onLogChanged(lines []string) {
	if len(lines) == 0 {
		if h.clear != nil {
			h.clear()
		}
		return
	}
	line := lines[len(lines)-1]
	if console.IsErrorLine(line) {
		h.failed++
	}
	fmt.Fprintln(h.out, h.renderer.Render(line))
}

func (h *lineHost) stop() { h.stopped = true }

func (h *lineHost) Close() {
	for _, cancel := range h.cancels {
		cancel()
	}
}

// runLines runs each line until the host is stopped by hide or quit.
func runLines(ctrl *console.Controller, h *lineHost, lines []string) {
	for _, line := range lines {
		if h.stopped {
			return
		}
		ctrl.RunCommandString(line)
	}
}

// runScript runs every line read from r until EOF, hide or quit.
func runScript(ctrl *console.Controller, h *lineHost, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for !h.stopped && scanner.Scan() {
		ctrl.RunCommandString(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}
