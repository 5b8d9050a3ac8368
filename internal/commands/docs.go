// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed docs/*.md
var embeddedDocs embed.FS

// DefaultDocWidth is the word wrap width used when rendering pages.
const DefaultDocWidth = 72

// Docs renders markdown pages into plain lines suitable for the scrollback.
// Pages are rendered with glamour's notty style: markup in the scrollback is
// handled by the console, so ANSI sequences must not leak into lines.
type Docs struct {
	fsys  fs.FS
	width int
}

// NewDocs returns the embedded documentation.
func NewDocs() *Docs {
	return &Docs{fsys: embeddedDocs, width: DefaultDocWidth}
}

// NewDocsFS reads pages named <topic>.md from the docs directory of fsys.
func NewDocsFS(fsys fs.FS, width int) *Docs {
	if width <= 0 {
		width = DefaultDocWidth
	}
	return &Docs{fsys: fsys, width: width}
}

// Topics returns the available topic names, sorted.
func (d *Docs) Topics() []string {
	entries, err := fs.ReadDir(d.fsys, "docs")
	if err != nil {
		return nil
	}
	var topics []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		topics = append(topics, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics
}

// Render renders one topic. Leading and trailing blank lines are dropped and
// trailing padding is trimmed from every line.
func (d *Docs) Render(topic string) ([]string, error) {
	name := strings.ToLower(topic)
	if name == "" || strings.ContainsAny(name, "/\\.") {
		return nil, &UnknownTopicError{Topic: topic}
	}
	src, err := fs.ReadFile(d.fsys, path.Join("docs", name+".md"))
	if err != nil {
		return nil, &UnknownTopicError{Topic: topic}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(d.width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(string(src))
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", topic, err)
	}

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
