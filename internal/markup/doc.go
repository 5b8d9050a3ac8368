// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markup renders the rich-text tags embedded in console log lines.
//
// Log lines carry a small tag vocabulary: <b>, <i>, <color=NAME> or
// <color=#RRGGBB>, and <size=N>, each with a matching closing tag. Parse
// splits a line into styled segments, Strip drops the tags, and Renderer
// turns segments into terminal styles through Lip Gloss. Text that looks
// like a tag but is not one of these is kept literally.
//
// # Usage
//
//	r := markup.NewRenderer(os.Stdout, markup.WithMaxWidth(80))
//	fmt.Println(r.Render("<color=red><b>boom</b></color>"))
package markup
