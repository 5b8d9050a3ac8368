// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/ahhnold/internal/console"
)

func testCommands() []console.CommandRegistration {
	noop := func([]string) {}
	return []console.CommandRegistration{
		console.NewCommand("help", noop, "Print this help."),
		console.NewCommand("hide", noop, "Hide the console."),
		console.NewCommand("history", noop, ""),
		console.NewCommand("clear", noop, "Clear Console"),
	}
}

func values(cs []Completion) []string {
	var out []string
	for _, c := range cs {
		out = append(out, c.Value)
	}
	return out
}

func TestComplete(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"h", []string{"help", "hide", "history"}},
		{"HI", []string{"hide", "history"}},
		{"  cl", []string{"clear"}},
		{"help", []string{"help"}},
		{"x", nil},
		{"hst", []string{"history"}},
		{"cr", []string{"clear"}},
		{"help me", nil},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, values(Complete(tc.input, testCommands())), tc.input)
	}
}

func TestComplete_EmptyListsEverything(t *testing.T) {
	assert.Len(t, Complete("", testCommands()), 4)
}

func TestComplete_ExactMatchFirst(t *testing.T) {
	cmds := []console.CommandRegistration{
		console.NewCommand("hides", nil, ""),
		console.NewCommand("hide", nil, ""),
	}
	assert.Equal(t, []string{"hide", "hides"}, values(Complete("hide", cmds)))
}

func TestCompletionState(t *testing.T) {
	cs := NewCompletionState()
	assert.False(t, cs.Active())
	assert.Equal(t, "", cs.Accept())

	cs.Update("h", Complete("h", testCommands()))
	assert.True(t, cs.Active())
	assert.Equal(t, "help", cs.Accept())

	cs.Next()
	assert.Equal(t, "hide", cs.Accept())
	cs.Next()
	cs.Next()
	assert.Equal(t, "help", cs.Accept(), "wraps forward")
	cs.Prev()
	assert.Equal(t, "history", cs.Accept(), "wraps backward")

	cs.Clear()
	assert.False(t, cs.Active())
	assert.Equal(t, "", cs.OriginalInput)
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		query, target string
		matched       bool
	}{
		{"", "help", true},
		{"hlp", "help", true},
		{"hst", "history", true},
		{"ph", "help", false},
		{"helpme", "help", false},
		{"xyz", "help", false},
	}
	for _, tc := range tests {
		_, ok := fuzzyMatch(tc.query, tc.target)
		assert.Equal(t, tc.matched, ok, "%s in %s", tc.query, tc.target)
	}

	consecutive, _ := fuzzyMatch("he", "help")
	spread, _ := fuzzyMatch("hp", "help")
	assert.Greater(t, consecutive, spread)

	boundary, _ := fuzzyMatch("ml", "mode-list")
	inner, _ := fuzzyMatch("dl", "mode-list")
	assert.Greater(t, boundary, inner)
}
