// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/ahhnold/internal/console"
)

type recordingHost struct {
	out  []string
	errs []string
}

func (h *recordingHost) Log(line string)      { h.out = append(h.out, line) }
func (h *recordingHost) LogError(line string) { h.errs = append(h.errs, line) }

func run(t *testing.T, s *Set, name string, args ...string) {
	t.Helper()
	for _, reg := range s.Registrations() {
		if reg.Name() == name {
			reg.Handler()(args)
			return
		}
	}
	t.Fatalf("command %q not registered", name)
}

// =============================================================================
// SAMPLE COMMAND TESTS
// =============================================================================

func TestRegistrations_NamesAreLowercase(t *testing.T) {
	for _, reg := range NewSet().Registrations() {
		assert.Equal(t, strings.ToLower(reg.Name()), reg.Name())
		assert.NotNil(t, reg.Handler(), reg.Name())
		assert.NotEmpty(t, reg.Help(), reg.Name())
	}
}

func TestVersion(t *testing.T) {
	host := &recordingHost{}
	s := NewSet(WithVersion("9.9.9"))
	s.Bind(host)

	run(t, s, "version")
	assert.Equal(t, []string{"version: 9.9.9"}, host.out)
}

func TestVersion_DefaultsToConsoleVersion(t *testing.T) {
	host := &recordingHost{}
	s := NewSet()
	s.Bind(host)

	run(t, s, "version")
	assert.Equal(t, []string{"version: " + console.Version}, host.out)
}

func TestEcho(t *testing.T) {
	host := &recordingHost{}
	s := NewSet()
	s.Bind(host)

	run(t, s, "echo", "hello", "big world")
	run(t, s, "echo")
	assert.Equal(t, []string{"hello big world", ""}, host.out)
}

func TestQuit(t *testing.T) {
	host := &recordingHost{}
	called := 0
	s := NewSet(WithQuit(func() { called++ }))
	s.Bind(host)

	run(t, s, "quit")
	assert.Equal(t, 1, called)
	assert.Empty(t, host.errs)
}

func TestQuit_Unavailable(t *testing.T) {
	host := &recordingHost{}
	s := NewSet()
	s.Bind(host)

	run(t, s, "quit")
	assert.Len(t, host.errs, 1)
}

func TestUnboundSetIsSilent(t *testing.T) {
	s := NewSet()
	assert.NotPanics(t, func() {
		run(t, s, "version")
		run(t, s, "quit")
	})
}

// =============================================================================
// DOC TESTS
// =============================================================================

func testDocs() *Docs {
	return NewDocsFS(fstest.MapFS{
		"docs/alpha.md":  {Data: []byte("# Alpha\n\nFirst page.\n")},
		"docs/beta.md":   {Data: []byte("Second page.\n")},
		"docs/notes.txt": {Data: []byte("ignored")},
	}, 40)
}

func TestDocs_Topics(t *testing.T) {
	assert.Equal(t, []string{"alpha", "beta"}, testDocs().Topics())
}

func TestDocs_Render(t *testing.T) {
	lines, err := testDocs().Render("Alpha")
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Alpha")
	assert.Contains(t, joined, "First page.")
	assert.NotContains(t, joined, "\x1b[", "notty style emits no escapes")
	assert.NotEqual(t, "", lines[0])
	assert.NotEqual(t, "", lines[len(lines)-1])
}

func TestDocs_UnknownTopic(t *testing.T) {
	for _, topic := range []string{"gamma", "", "../alpha", "notes"} {
		_, err := testDocs().Render(topic)
		var unknown *UnknownTopicError
		assert.True(t, errors.As(err, &unknown), topic)
	}
}

func TestDocs_EmbeddedPagesRender(t *testing.T) {
	docs := NewDocs()
	topics := docs.Topics()
	assert.Contains(t, topics, "console")
	for _, topic := range topics {
		lines, err := docs.Render(topic)
		assert.NoError(t, err, topic)
		assert.NotEmpty(t, lines, topic)
	}
}

func TestDocCommand(t *testing.T) {
	host := &recordingHost{}
	s := NewSet(WithDocs(testDocs()))
	s.Bind(host)

	run(t, s, "doc")
	assert.Equal(t, []string{"topics: alpha, beta"}, host.out)

	host.out = nil
	run(t, s, "doc", "beta")
	assert.Contains(t, strings.Join(host.out, "\n"), "Second page.")

	run(t, s, "doc", "gamma")
	assert.Equal(t, []string{"Unknown topic 'gamma', type 'doc' for list."}, host.errs)
}

// =============================================================================
// INTEGRATION
// =============================================================================

func TestSetWithController(t *testing.T) {
	s := NewSet()
	ctrl, err := console.New(s.Registrations())
	require.NoError(t, err)
	s.Bind(ctrl)

	ctrl.RunCommandString("ECHO hi there")
	logs := ctrl.Logs()
	require.Len(t, logs, 2)
	assert.Equal(t, console.FormatOutput("hi there"), logs[1])
}
