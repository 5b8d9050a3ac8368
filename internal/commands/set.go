// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"

	"github.com/jeranaias/ahhnold/internal/console"
)

// Host is where sample commands write their output. *console.Controller
// satisfies it.
type Host interface {
	Log(line string)
	LogError(line string)
}

// =============================================================================
// SET
// =============================================================================

// Set holds the sample commands and the host they report to.
type Set struct {
	host    Host
	quit    func()
	version string
	docs    *Docs
}

// Option configures a Set.
type Option func(*Set)

// WithQuit sets the function the quit command calls.
func WithQuit(fn func()) Option {
	return func(s *Set) { s.quit = fn }
}

// WithVersion overrides the version the version command reports.
func WithVersion(v string) Option {
	return func(s *Set) {
		if v != "" {
			s.version = v
		}
	}
}

// WithDocs sets the documentation source for the doc command.
func WithDocs(d *Docs) Option {
	return func(s *Set) {
		if d != nil {
			s.docs = d
		}
	}
}

// NewSet creates an unbound command set.
func NewSet(opts ...Option) *Set {
	s := &Set{
		version: console.Version,
		docs:    NewDocs(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bind sets the host that handlers write to. Handlers run before Bind
// produce no output.
func (s *Set) Bind(h Host) { s.host = h }

// Registrations returns the commands in the order they should appear in help.
func (s *Set) Registrations() []console.CommandRegistration {
	return []console.CommandRegistration{
		console.NewCommand("version", s.versionAction, "Outputs console version"),
		console.NewCommand("quit", s.quitAction, "Quit the console"),
		console.NewCommand("echo", s.echoAction, "Print the arguments"),
		console.NewCommand("doc", s.docAction, "Show documentation: doc [topic]"),
	}
}

// =============================================================================
// HANDLERS
// =============================================================================

func (s *Set) versionAction(args []string) {
	s.log("version: " + s.version)
}

func (s *Set) quitAction(args []string) {
	if s.quit == nil {
		s.logError("quit is not available here")
		return
	}
	s.quit()
}

func (s *Set) echoAction(args []string) {
	s.log(strings.Join(args, " "))
}

func (s *Set) docAction(args []string) {
	if len(args) == 0 {
		s.log("topics: " + strings.Join(s.docs.Topics(), ", "))
		return
	}

	lines, err := s.docs.Render(args[0])
	if err != nil {
		s.logError(err.Error())
		return
	}
	for _, line := range lines {
		s.log(line)
	}
}

func (s *Set) log(line string) {
	if s.host != nil {
		s.host.Log(line)
	}
}

func (s *Set) logError(line string) {
	if s.host != nil {
		s.host.LogError(line)
	}
}

// UnknownTopicError is returned by Docs.Render for a topic with no page.
type UnknownTopicError struct {
	Topic string
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("Unknown topic '%s', type 'doc' for list.", e.Topic)
}
