// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package overlay

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ahhnold/internal/commands"
	"github.com/jeranaias/ahhnold/internal/config"
	"github.com/jeranaias/ahhnold/internal/console"
	"github.com/jeranaias/ahhnold/internal/markup"
	"github.com/jeranaias/ahhnold/internal/ui/styles"
)

// Rows taken by everything except the scrollback: frame border (2), title,
// input line and help line.
const reservedHeight = 5

// feed collects controller notifications between Update calls. It is shared
// by pointer so the value-typed Model sees what handlers published.
type feed struct {
	lines      []string
	dirty      bool
	visibility *bool
	quit       bool
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model hosting one console controller.
type Model struct {
	ctrl     *console.Controller
	feed     *feed
	cancels  []func()
	theme    *styles.Theme
	renderer *markup.Renderer
	logger   *slog.Logger

	keys       KeyMap
	help       help.Model
	input      textinput.Model
	viewport   viewport.Model
	completion *commands.CompletionState

	visible    bool
	showIntro  bool
	introShown bool
	maxWidth   int

	// History browsing; -1 when editing a fresh line.
	historyIdx int
	draft      string

	transition styles.TransitionConfig
	frame      int

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithConfig applies prompt, toggle key, intro and width settings.
func WithConfig(cfg *config.Config) Option {
	return func(m *Model) {
		if cfg != nil {
			m.applyConfig(cfg)
		}
	}
}

// WithTheme sets the theme. Markup is rendered with the theme's renderer.
func WithTheme(t *styles.Theme) Option {
	return func(m *Model) {
		if t != nil {
			m.theme = t
		}
	}
}

// WithTransition sets the opening transition.
func WithTransition(c styles.TransitionConfig) Option {
	return func(m *Model) { m.transition = c }
}

// WithStartOpen opens the console on the first frame.
func WithStartOpen() Option {
	return func(m *Model) { m.visible = true }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates an overlay bound to ctrl. The overlay subscribes to ctrl
// immediately; call Close to drop the subscriptions.
func New(ctrl *console.Controller, opts ...Option) Model {
	ti := textinput.New()
	ti.Prompt = "$ "
	ti.Placeholder = "type 'help' for commands"
	ti.CharLimit = 1024

	m := Model{
		ctrl:       ctrl,
		feed:       &feed{},
		theme:      styles.NewTheme(),
		logger:     slog.New(slog.DiscardHandler),
		keys:       DefaultKeyMap(""),
		help:       help.New(),
		input:      ti,
		viewport:   viewport.New(80, 20),
		completion: commands.NewCompletionState(),
		showIntro:  true,
		historyIdx: -1,
		transition: styles.TransitionSlide,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.renderer = markup.NewRendererFrom(m.theme.Renderer(), markup.WithMaxWidth(m.lineWidth()))
	m.input.PromptStyle = m.theme.Prompt
	m.input.TextStyle = m.theme.InputText

	f := m.feed
	m.cancels = append(m.cancels,
		ctrl.OnLogChanged(func(lines []string) {
			f.lines = append(f.lines[:0], lines...)
			f.dirty = true
		}),
		ctrl.OnVisibilityChanged(func(visible bool) {
			f.visibility = &visible
		}),
	)

	f.lines = ctrl.Logs()
	f.dirty = true
	if m.visible {
		m.open()
	}
	m.sync()
	return m
}

// QuitFunc returns a function that makes the program exit after the
// current command finishes. Pass it to commands.WithQuit.
func (m Model) QuitFunc() func() {
	f := m.feed
	return func() { f.quit = true }
}

// Close removes the controller subscriptions.
func (m Model) Close() {
	for _, cancel := range m.cancels {
		cancel()
	}
}

// Visible reports whether the console is open.
func (m Model) Visible() bool { return m.visible }

// Input returns the current input line.
func (m Model) Input() string { return m.input.Value() }

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	if m.visible {
		return tea.Batch(textinput.Blink, m.startSlide())
	}
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case RunMsg:
		m.ctrl.RunCommandString(msg.Line)
		return m, m.sync()

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case slideTickMsg:
		m.frame = msg.frame
		if m.frame < m.transition.Frames {
			return m, slideTick(m.transition.FrameInterval(), m.frame+1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the overlay.
func (m Model) View() string {
	if !m.visible {
		return m.theme.Closed.Render(fmt.Sprintf("Press %s to open the console, %s to quit.",
			m.keys.Toggle.Help().Key, m.keys.Quit.Help().Key))
	}

	vp := m.viewport
	if full := vp.Height; m.frame < m.transition.Frames {
		vp.Height = m.transition.Height(full, m.frame)
		vp.GotoBottom()
	}

	body := m.theme.Title.Render(fmt.Sprintf("AHHNOLD Console %s", console.Version)) + "\n" +
		vp.View() + "\n" +
		m.input.View() + "\n" +
		m.theme.Hint.Render(m.help.ShortHelpView(m.keys.ShortHelp()))

	frame := m.theme.Frame
	if m.width > 0 {
		frame = frame.Width(m.width - frame.GetHorizontalBorderSize())
	}
	return frame.Render(body)
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	m.viewport.Width = max(1, m.theme.InnerWidth())
	m.viewport.Height = max(1, msg.Height-reservedHeight)
	m.input.Width = max(10, m.theme.InnerWidth()-len(m.input.Prompt)-1)
	m.help.Width = m.theme.InnerWidth()

	m.renderer.SetMaxWidth(m.lineWidth())
	m.feed.dirty = true
	return m, m.sync()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if !m.visible {
		if key.Matches(msg, m.keys.Toggle) {
			cmd := m.open()
			return m, tea.Batch(cmd, m.sync())
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Close):
		m.hide()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		line := m.input.Value()
		m.input.Reset()
		m.historyIdx = -1
		m.draft = ""
		m.completion.Clear()
		m.logger.Debug("submitting line", "length", len(line))
		m.ctrl.RunCommandString(line)
		return m, m.sync()

	case key.Matches(msg, m.keys.HistoryPrev):
		m.recall(-1)
		return m, nil

	case key.Matches(msg, m.keys.HistoryNext):
		m.recall(1)
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		m.complete(true)
		return m, nil

	case key.Matches(msg, m.keys.CompletePrev):
		m.complete(false)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.completion.Clear()
		m.historyIdx = -1
	}
	return m, cmd
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.ctrl.LogError(fmt.Sprintf("config reload failed: %v", msg.Err))
		return m, m.sync()
	}
	m.applyConfig(msg.Config)
	m.renderer.SetMaxWidth(m.lineWidth())
	m.feed.dirty = true
	m.ctrl.Log("config reloaded")
	return m, m.sync()
}

// =============================================================================
// HELPERS
// =============================================================================

func (m *Model) applyConfig(cfg *config.Config) {
	m.input.Prompt = cfg.Console.Prompt
	m.keys = DefaultKeyMap(cfg.UI.ToggleKey)
	m.showIntro = cfg.Console.ShowIntro
	m.maxWidth = cfg.UI.MaxLineWidth
}

// lineWidth is the configured maximum, capped by the space inside the frame.
func (m *Model) lineWidth() int {
	inner := 0
	if m.width > 0 {
		inner = m.theme.InnerWidth()
	}
	switch {
	case m.maxWidth > 0 && inner > 0:
		return min(m.maxWidth, inner)
	case m.maxWidth > 0:
		return m.maxWidth
	default:
		return inner
	}
}

// open shows the console, drawing the intro the first time.
func (m *Model) open() tea.Cmd {
	m.visible = true
	m.input.Focus()
	if m.showIntro && !m.introShown {
		m.introShown = true
		m.ctrl.DrawIntro()
	}
	m.logger.Debug("console opened")
	return m.startSlide()
}

func (m *Model) hide() {
	m.visible = false
	m.input.Blur()
	m.completion.Clear()
	m.logger.Debug("console hidden")
}

func (m *Model) startSlide() tea.Cmd {
	if m.transition.Frames <= 1 {
		m.frame = m.transition.Frames
		return nil
	}
	m.frame = 1
	return slideTick(m.transition.FrameInterval(), 2)
}

// sync applies notifications collected in the feed.
func (m *Model) sync() tea.Cmd {
	f := m.feed
	if f.dirty {
		f.dirty = false
		m.viewport.SetContent(m.renderer.RenderLines(f.lines))
		m.viewport.GotoBottom()
	}
	if f.visibility != nil {
		visible := *f.visibility
		f.visibility = nil
		if visible && !m.visible {
			m.open()
		} else if !visible && m.visible {
			m.hide()
		}
	}
	if f.quit {
		return tea.Quit
	}
	return nil
}

// recall steps through history; dir is -1 for older, 1 for newer.
func (m *Model) recall(dir int) {
	entries := m.ctrl.History()
	if len(entries) == 0 {
		return
	}

	idx := m.historyIdx
	switch {
	case idx == -1 && dir < 0:
		m.draft = m.input.Value()
		idx = len(entries) - 1
	case idx == -1:
		return
	default:
		idx += dir
	}

	if idx < 0 {
		idx = 0
	}
	if idx >= len(entries) {
		m.historyIdx = -1
		m.input.SetValue(m.draft)
		m.input.CursorEnd()
		return
	}

	m.historyIdx = idx
	m.input.SetValue(entries[idx])
	m.input.CursorEnd()
}

// complete fills the input with the next (or previous) command name.
func (m *Model) complete(forward bool) {
	if !m.completion.Active() {
		m.completion.Update(m.input.Value(), commands.Complete(m.input.Value(), m.ctrl.Commands()))
		if !m.completion.Active() {
			return
		}
	} else if forward {
		m.completion.Next()
	} else {
		m.completion.Prev()
	}
	m.input.SetValue(m.completion.Accept())
	m.input.CursorEnd()
}
