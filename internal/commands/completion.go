// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"

	"github.com/jeranaias/ahhnold/internal/console"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completion is a single completion candidate.
type Completion struct {
	Value       string
	Description string
	Score       int
}

// Complete returns command names that extend the first word of input. When
// no name has that prefix, names that fuzzy-match it are returned instead.
// Nothing is returned once the input contains a separator, since only
// command names are completed.
func Complete(input string, cmds []console.CommandRegistration) []Completion {
	partial := strings.TrimLeft(input, " ")
	if strings.Contains(partial, " ") {
		return nil
	}
	partial = strings.ToLower(partial)

	var completions []Completion
	for _, cmd := range cmds {
		if !strings.HasPrefix(cmd.Name(), partial) {
			continue
		}
		completions = append(completions, Completion{
			Value:       cmd.Name(),
			Description: cmd.Help(),
			Score:       calculateScore(cmd.Name(), partial),
		})
	}

	if len(completions) == 0 && partial != "" {
		completions = completeFuzzy(partial, cmds)
	}

	sortCompletions(completions)
	return completions
}

// completeFuzzy is the fallback when no name starts with partial.
func completeFuzzy(partial string, cmds []console.CommandRegistration) []Completion {
	var completions []Completion
	for _, cmd := range cmds {
		if score, ok := fuzzyMatch(partial, cmd.Name()); ok {
			completions = append(completions, Completion{
				Value:       cmd.Name(),
				Description: cmd.Help(),
				Score:       score,
			})
		}
	}
	return completions
}

// calculateScore ranks a candidate. Higher is better.
func calculateScore(value, partial string) int {
	score := 100
	if value == partial {
		return score + 100
	}
	score += 50 + 20 - len(value)
	return score - len(value)/2
}

// sortCompletions sorts by score (descending), then alphabetically.
func sortCompletions(completions []Completion) {
	sort.Slice(completions, func(i, j int) bool {
		if completions[i].Score != completions[j].Score {
			return completions[i].Score > completions[j].Score
		}
		return completions[i].Value < completions[j].Value
	})
}

// =============================================================================
// COMPLETION NAVIGATION
// =============================================================================

// CompletionState cycles through candidates on repeated tab presses.
type CompletionState struct {
	// Original input before completion
	OriginalInput string

	Completions []Completion

	// Selected index (-1 for none)
	Selected int
}

// NewCompletionState creates an empty completion state.
func NewCompletionState() *CompletionState {
	return &CompletionState{Selected: -1}
}

// Update replaces the candidates and selects the first one.
func (cs *CompletionState) Update(input string, completions []Completion) {
	cs.OriginalInput = input
	cs.Completions = completions
	cs.Selected = 0
	if len(completions) == 0 {
		cs.Selected = -1
	}
}

// Active reports whether candidates are being cycled.
func (cs *CompletionState) Active() bool {
	return len(cs.Completions) > 0
}

// Next moves to the next completion, wrapping around.
func (cs *CompletionState) Next() {
	if len(cs.Completions) == 0 {
		return
	}
	cs.Selected = (cs.Selected + 1) % len(cs.Completions)
}

// Prev moves to the previous completion, wrapping around.
func (cs *CompletionState) Prev() {
	if len(cs.Completions) == 0 {
		return
	}
	cs.Selected--
	if cs.Selected < 0 {
		cs.Selected = len(cs.Completions) - 1
	}
}

// Accept returns the selected completion value, or empty if none.
func (cs *CompletionState) Accept() string {
	if cs.Selected < 0 || cs.Selected >= len(cs.Completions) {
		return ""
	}
	return cs.Completions[cs.Selected].Value
}

// Clear drops all candidates.
func (cs *CompletionState) Clear() {
	cs.OriginalInput = ""
	cs.Completions = nil
	cs.Selected = -1
}
