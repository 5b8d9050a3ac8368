// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console provides the in-process developer console: a command
// registry bound to a line-oriented interpreter with a bounded scrollback.
//
// The host application owns rendering and key capture. It feeds submitted
// input lines to the Controller and redraws whenever the Controller
// publishes a new scrollback snapshot.
//
// # Key Types
//
//   - CommandRegistration: a command name, its Handler and help text
//   - Registry: insertion-ordered, duplicate-rejecting command table
//   - Controller: interpreter owning the Scrollback and History
//   - LogHandler: slog.Handler that writes records into a Controller
//
// # Built-in Commands
//
//   - help: list every registered command with its help text
//   - !!: repeat the most recent command that is not itself !!
//   - clear: empty the scrollback
//   - hide: ask the host to hide the console
//
// # Usage
//
//	c, err := console.New([]console.CommandRegistration{
//	    console.NewCommand("ping", func(args []string) { ... }, "Reply with pong"),
//	})
//	if err != nil {
//	    return err
//	}
//	c.OnLogChanged(func(lines []string) { redraw(lines) })
//	c.RunCommandString(`ping "two words"`)
//
// A Controller is not safe for concurrent use. Hosts call it from a single
// goroutine (their update loop) or serialize access themselves.
package console
