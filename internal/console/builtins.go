// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import "fmt"

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func (c *Controller) helpAction(args []string) {
	for _, reg := range c.registry.All() {
		c.appendLine(fmt.Sprintf("%s: %s", reg.Name(), reg.Help()))
	}
}

// clearAction wipes everything, including the echo of the clear command.
func (c *Controller) clearAction(args []string) {
	c.scrollback.Clear()
	c.publishLogs()
}

func (c *Controller) hideAction(args []string) {
	c.publishVisibility(false)
}

// repeatAction replays the newest history entry that is not itself a repeat.
// The scan covers only entries recorded before the call; the replay appends
// its own history entry past the scan point. Doing nothing when there is no
// candidate is intentional.
func (c *Controller) repeatAction(args []string) {
	for i := c.history.Len() - 1; i >= 0; i-- {
		raw := c.history.At(i)
		if c.isRepeat(raw) {
			continue
		}
		c.logger.Debug("repeating command", "command", raw)
		c.RunCommandString(raw)
		return
	}
}

// isRepeat reports whether raw would dispatch to the repeat command. This
// also covers entries such as " !! " or "!! x", which would otherwise
// replay themselves forever.
func (c *Controller) isRepeat(raw string) bool {
	if raw == RepeatCommandName {
		return true
	}
	tokens := Tokenize(raw)
	return len(tokens) > 0 && c.lower.String(tokens[0]) == RepeatCommandName
}
