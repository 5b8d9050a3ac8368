// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the ahhnold command line.
//
// The root command opens the console overlay when attached to a terminal
// and otherwise runs stdin as a script, one command line per input line.
//
// # Commands
//
//   - tui: Full-screen console overlay (Bubble Tea)
//   - repl: Line-mode console with readline editing
//   - run: Run command lines given as arguments
//   - version: Print version information
//   - config: Inspect and edit the configuration file
//
// # Exit Codes
//
//   - 0: Success
//   - 1: General error, including failed lines under run --strict
//   - 2: Invalid usage or flag values
//   - 3: Configuration error
package cli
