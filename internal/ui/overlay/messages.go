// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package overlay

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ahhnold/internal/config"
)

// ConfigReloadedMsg carries the result of a config file reload.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// RunMsg runs a line through the controller as if it were typed.
type RunMsg struct {
	Line string
}

// slideTickMsg advances the opening transition.
type slideTickMsg struct {
	frame int
}

func slideTick(d time.Duration, frame int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return slideTickMsg{frame: frame}
	})
}
