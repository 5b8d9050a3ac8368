// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// TOKENIZER TESTS
// =============================================================================

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single word", "help", []string{"help"}},
		{"words", "echo a b", []string{"echo", "a", "b"}},
		{"quoted argument", `say "hi there"`, []string{"say", "hi there"}},
		{"leading and trailing spaces", "  help  ", []string{"help"}},
		{"consecutive spaces", "echo   a    b", []string{"echo", "a", "b"}},
		{"empty", "", nil},
		{"only spaces", "    ", nil},
		{"empty quotes", `""`, nil},
		{"quoted space", `" "`, []string{" "}},
		{"quotes inside word are stripped", `a"b c"d`, []string{"ab cd"}},
		{"adjacent quoted spans join", `"a""b"`, []string{"ab"}},
		{"empty quotes between words", `a "" b`, []string{"a", "b"}},
		{"unbalanced quote swallows the rest", `say "hi there   now`, []string{"say", "hi there   now"}},
		{"unbalanced quote at end", `say hi"`, []string{"say", "hi"}},
		{"tab is not a separator", "echo\ta", []string{"echo\ta"}},
		{"newline separates", "echo a\nb", []string{"echo", "a", "b"}},
		{"only newline", "\n", nil},
		{"newline separates inside quotes", "say \"a\nb\"", []string{"say", "a", "b"}},
		{"quoted space survives next to newline", "say \"a b\nc\"", []string{"say", "a b", "c"}},
		{"multibyte", `say "grüß dich" ok`, []string{"say", "grüß dich", "ok"}},
		{"repeat", "!!", []string{"!!"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.input))
		})
	}
}

func TestTokenize_MatchesWhitespaceSplitWithoutQuotes(t *testing.T) {
	inputs := []string{
		"a",
		" a b  c ",
		"set volume 11",
		"    x",
		"y    ",
	}

	for _, in := range inputs {
		want := strings.FieldsFunc(in, func(r rune) bool { return r == ' ' })
		if len(want) == 0 {
			want = nil
		}
		assert.Equal(t, want, Tokenize(in), "input %q", in)
	}
}

func TestTokenize_NeverReturnsQuotes(t *testing.T) {
	for _, in := range []string{`"`, `""""`, `a "b" "c d" e"`, `"x`} {
		for _, tok := range Tokenize(in) {
			assert.NotContains(t, tok, `"`, "input %q", in)
			assert.NotEmpty(t, tok, "input %q", in)
		}
	}
}
