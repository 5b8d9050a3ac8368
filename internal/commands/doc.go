// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the sample commands a host registers with the
// console, and tab completion of command names.
//
// # Sample Commands
//
//   - version: Print the console version
//   - quit: Ask the host to exit
//   - echo: Print the arguments back
//   - doc: Show embedded documentation rendered with glamour
//
// # Usage
//
// Handlers need the controller they are registered with, so the set is
// built first and bound once the controller exists:
//
//	set := commands.NewSet(commands.WithQuit(cancel))
//	ctrl, err := console.New(set.Registrations())
//	if err != nil {
//	    return err
//	}
//	set.Bind(ctrl)
package commands
