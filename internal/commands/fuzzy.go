// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// =============================================================================
// FUZZY MATCHING
// =============================================================================

// fuzzyMatch reports whether every byte of query appears in target in order,
// and scores the match (higher is better). Both are expected lowercase.
//
// Matching rules:
//   - Consecutive matches get bonus points
//   - Matches at the start or after a separator get bonus points
//   - Longer targets are penalized
//
// Examples:
//   - "hst" matches "history"
//   - "cr" matches "clear"
//   - "xyz" does not match "help"
func fuzzyMatch(query, target string) (score int, matched bool) {
	if query == "" {
		return 0, true
	}
	if len(query) > len(target) {
		return 0, false
	}

	queryPos := 0
	lastMatchPos := -1
	for targetPos := 0; targetPos < len(target) && queryPos < len(query); targetPos++ {
		if target[targetPos] != query[queryPos] {
			continue
		}

		matchScore := 1
		if lastMatchPos == targetPos-1 {
			matchScore += 5
		}
		if targetPos == 0 {
			matchScore += 10
		} else if isSeparator(target[targetPos-1]) {
			matchScore += 7
		}

		score += matchScore
		lastMatchPos = targetPos
		queryPos++
	}

	if queryPos != len(query) {
		return 0, false
	}
	return score - len(target)/4, true
}

func isSeparator(b byte) bool {
	return b == '-' || b == '_' || b == '.' || b == ':'
}
