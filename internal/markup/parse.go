// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markup

import "strings"

// Segment is a run of text sharing one style.
type Segment struct {
	Text   string
	Bold   bool
	Italic bool
	// Color is the raw value of the innermost open color tag, or "".
	Color string
}

type tagKind int

const (
	tagNone tagKind = iota
	tagBoldOpen
	tagBoldClose
	tagItalicOpen
	tagItalicClose
	tagColorOpen
	tagColorClose
	tagSizeOpen
	tagSizeClose
)

// classifyTag identifies the body of a <...> tag. For color tags the value
// is returned as well.
func classifyTag(body string) (tagKind, string) {
	switch strings.ToLower(body) {
	case "b":
		return tagBoldOpen, ""
	case "/b":
		return tagBoldClose, ""
	case "i":
		return tagItalicOpen, ""
	case "/i":
		return tagItalicClose, ""
	case "/color":
		return tagColorClose, ""
	case "/size":
		return tagSizeClose, ""
	}

	name, value, found := strings.Cut(body, "=")
	if !found || value == "" {
		return tagNone, ""
	}
	switch strings.ToLower(name) {
	case "color":
		return tagColorOpen, value
	case "size":
		return tagSizeOpen, value
	}
	return tagNone, ""
}

// Parse splits line into styled segments. Unbalanced closing tags are
// ignored; tags left open run to the end of the line.
func Parse(line string) []Segment {
	var segments []Segment
	var text strings.Builder
	var bold, italic int
	var colors []string

	flush := func() {
		if text.Len() == 0 {
			return
		}
		seg := Segment{Text: text.String(), Bold: bold > 0, Italic: italic > 0}
		if len(colors) > 0 {
			seg.Color = colors[len(colors)-1]
		}
		segments = append(segments, seg)
		text.Reset()
	}

	for i := 0; i < len(line); {
		if line[i] != '<' {
			text.WriteByte(line[i])
			i++
			continue
		}

		end := strings.IndexByte(line[i:], '>')
		if end < 0 {
			text.WriteString(line[i:])
			break
		}

		kind, value := classifyTag(line[i+1 : i+end])
		if kind == tagNone {
			text.WriteByte('<')
			i++
			continue
		}

		flush()
		switch kind {
		case tagBoldOpen:
			bold++
		case tagBoldClose:
			if bold > 0 {
				bold--
			}
		case tagItalicOpen:
			italic++
		case tagItalicClose:
			if italic > 0 {
				italic--
			}
		case tagColorOpen:
			colors = append(colors, value)
		case tagColorClose:
			if len(colors) > 0 {
				colors = colors[:len(colors)-1]
			}
		}
		i += end + 1
	}
	flush()

	return segments
}

// Strip removes all recognized tags from line.
func Strip(line string) string {
	var b strings.Builder
	for _, seg := range Parse(line) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
