// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay provides the Bubble Tea host for a console controller.
//
// The overlay owns everything the controller deliberately leaves to its
// host: the input line, the toggle key, the open/closed state and drawing
// the scrollback. It subscribes to the controller's log and visibility
// notifications and renders scrollback markup through the markup package.
//
// # Keys
//
//   - toggle key (default `): open or close the console
//   - Enter: run the input line
//   - Up/Down: recall history
//   - Tab/Shift+Tab: cycle command name completions
//   - PgUp/PgDn: scroll the scrollback
//   - Esc: close the console
//   - Ctrl+C: quit
//
// Work started outside the UI goroutine, such as a config reload, reaches
// the model as a message through tea.Program.Send.
package overlay
