// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package overlay

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/ahhnold/internal/commands"
	"github.com/jeranaias/ahhnold/internal/config"
	"github.com/jeranaias/ahhnold/internal/console"
	"github.com/jeranaias/ahhnold/internal/ui/styles"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func plainTheme() *styles.Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return styles.NewThemeWithRenderer(r)
}

func newTestModel(t *testing.T, opts ...Option) (Model, *console.Controller) {
	t.Helper()

	var quit func()
	set := commands.NewSet(commands.WithQuit(func() {
		if quit != nil {
			quit()
		}
	}))
	ctrl, err := console.New(set.Registrations())
	require.NoError(t, err)
	set.Bind(ctrl)

	opts = append([]Option{WithTheme(plainTheme()), WithTransition(styles.TransitionNone)}, opts...)
	m := New(ctrl, opts...)
	quit = m.QuitFunc()
	t.Cleanup(m.Close)

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	return m, ctrl
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func toggle() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("`")}
}

func submit(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m = typeText(t, m, line)
	return updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// =============================================================================
// VISIBILITY TESTS
// =============================================================================

func TestClosedByDefault(t *testing.T) {
	m, ctrl := newTestModel(t)

	assert.False(t, m.Visible())
	assert.Contains(t, m.View(), "Press ` to open the console")
	assert.Empty(t, ctrl.Logs(), "intro waits for first open")
}

func TestToggleOpensWithIntroOnce(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = update(t, m, toggle())
	require.True(t, m.Visible())
	assert.Equal(t, []string{console.Intro}, ctrl.Logs())
	assert.Contains(t, m.View(), "|AHHNOLD Console 0.3.1|")

	m = update(t, m, toggle())
	assert.False(t, m.Visible())

	m = update(t, m, toggle())
	assert.True(t, m.Visible())
	assert.Len(t, ctrl.Logs(), 1, "intro drawn only on first open")
}

func TestIntroDisabledByConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Console.ShowIntro = false
	m, ctrl := newTestModel(t, WithConfig(cfg))

	m = update(t, m, toggle())
	assert.True(t, m.Visible())
	assert.Empty(t, ctrl.Logs())
}

func TestCustomToggleKey(t *testing.T) {
	cfg := config.Default()
	cfg.UI.ToggleKey = "f1"
	m, _ := newTestModel(t, WithConfig(cfg))

	m = update(t, m, toggle())
	assert.False(t, m.Visible())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.Visible())
}

func TestEscCloses(t *testing.T) {
	m, _ := newTestModel(t, WithStartOpen())
	require.True(t, m.Visible())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Visible())
}

func TestHideCommandCloses(t *testing.T) {
	m, _ := newTestModel(t, WithStartOpen())

	m, _ = submit(t, m, "hide")
	assert.False(t, m.Visible())
}

func TestKeysIgnoredWhileClosed(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(t, m, "help")
	assert.Equal(t, "", m.Input())
}

// =============================================================================
// INPUT TESTS
// =============================================================================

func TestSubmitRunsCommand(t *testing.T) {
	m, ctrl := newTestModel(t, WithStartOpen())

	m, cmd := submit(t, m, "echo hello world")
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "", m.Input())

	logs := ctrl.Logs()
	assert.Equal(t, console.FormatEcho("echo hello world"), logs[len(logs)-2])
	assert.Equal(t, console.FormatOutput("hello world"), logs[len(logs)-1])

	view := m.View()
	assert.Contains(t, view, "$echo hello world")
	assert.Contains(t, view, "hello world")
	assert.NotContains(t, view, "<color=", "markup is rendered, not shown")
}

func TestSubmitEmptyLineReportsError(t *testing.T) {
	m, ctrl := newTestModel(t, WithStartOpen())

	_, _ = updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	logs := ctrl.Logs()
	assert.Equal(t, console.FormatError("Unable to process command ''"), logs[len(logs)-1])
}

func TestQuitCommand(t *testing.T) {
	m, _ := newTestModel(t, WithStartOpen())

	_, cmd := submit(t, m, "quit")
	assert.True(t, isQuit(cmd))
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestRunMsg(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = update(t, m, RunMsg{Line: "version"})
	logs := ctrl.Logs()
	assert.Equal(t, console.FormatOutput("version: "+console.Version), logs[len(logs)-1])
	assert.False(t, m.Visible())
}

func TestHistoryRecall(t *testing.T) {
	m, _ := newTestModel(t, WithStartOpen())

	m, _ = submit(t, m, "echo one")
	m, _ = submit(t, m, "echo two")
	m = typeText(t, m, "dra")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "echo two", m.Input())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "echo one", m.Input())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "echo one", m.Input(), "stops at the oldest entry")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "echo two", m.Input())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "dra", m.Input(), "draft restored past the newest entry")
}

func TestTabCompletion(t *testing.T) {
	m, _ := newTestModel(t, WithStartOpen())

	m = typeText(t, m, "cl")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "clear", m.Input())

	m, _ = newTestModel(t, WithStartOpen())
	m = typeText(t, m, "h")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	first := m.Input()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	second := m.Input()
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "h"))
	assert.True(t, strings.HasPrefix(second, "h"))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, first, m.Input())
}

func TestTabWithoutCandidates(t *testing.T) {
	m, _ := newTestModel(t, WithStartOpen())

	m = typeText(t, m, "zz")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "zz", m.Input())
}

// =============================================================================
// CONFIG RELOAD TESTS
// =============================================================================

func TestConfigReloaded(t *testing.T) {
	m, ctrl := newTestModel(t, WithStartOpen())

	cfg := config.Default()
	cfg.Console.Prompt = "> "
	cfg.UI.ToggleKey = "f2"
	m = update(t, m, ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, console.FormatOutput("config reloaded"), ctrl.Logs()[len(ctrl.Logs())-1])
	assert.Contains(t, m.View(), "> ")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyF2})
	assert.False(t, m.Visible())
}

func TestConfigReloadFailed(t *testing.T) {
	m, ctrl := newTestModel(t, WithStartOpen())

	m = update(t, m, ConfigReloadedMsg{Err: errors.New("bad toml")})
	assert.Equal(t, console.FormatError("config reload failed: bad toml"), ctrl.Logs()[len(ctrl.Logs())-1])
	assert.True(t, m.Visible())
}

// =============================================================================
// RENDERING TESTS
// =============================================================================

func TestClearEmptiesView(t *testing.T) {
	m, ctrl := newTestModel(t, WithStartOpen())

	m, _ = submit(t, m, "echo visible")
	m, _ = submit(t, m, "clear")
	assert.Empty(t, ctrl.Logs())
	assert.NotContains(t, m.View(), "visible")
}

func TestSlideTransition(t *testing.T) {
	m, _ := newTestModel(t, WithTransition(styles.TransitionSlide))

	m, cmd := updateCmd(t, m, toggle())
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.frame)

	for f := 2; f <= styles.TransitionSlide.Frames; f++ {
		m = update(t, m, slideTickMsg{frame: f})
	}
	assert.Equal(t, styles.TransitionSlide.Frames, m.frame)
}

func TestCloseCancelsSubscriptions(t *testing.T) {
	m, ctrl := newTestModel(t)
	m.Close()

	ctrl.Log("after close")
	assert.False(t, m.feed.dirty)
}
