// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import "strings"

const (
	quoteChar     = '"'
	separatorChar = ' '
	newlineChar   = '\n'
)

// Tokenize splits a raw input line into tokens.
//
// Every double quote is dropped and toggles quoting; spaces separate tokens
// only outside quotes. Empty tokens are discarded. An unbalanced quote keeps
// quoting on for the rest of the line, so the remainder becomes part of a
// single token. Spaces and newlines separate, and a newline separates even
// inside quotes. Tabs are ordinary.
func Tokenize(raw string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false

	// Byte scan: all delimiters are ASCII, so multi-byte sequences pass
	// through untouched.
	for i := 0; i < len(raw); i++ {
		ch := raw[i]

		switch {
		case ch == quoteChar:
			inQuote = !inQuote

		case ch == newlineChar, ch == separatorChar && !inQuote:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

		default:
			current.WriteByte(ch)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
