// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Version is the console version shown in the intro banner.
	Version = "0.3.1"

	// DefaultScrollbackSize is the default number of lines kept on screen.
	DefaultScrollbackSize = 20

	// RepeatCommandName is the name of the built-in repeat command.
	RepeatCommandName = "!!"
)

// =============================================================================
// OPTIONS
// =============================================================================

type options struct {
	logger         *slog.Logger
	scrollbackSize int
}

// Option configures a Controller.
type Option func(*options)

// WithLogger sets the diagnostic logger. Defaults to a logger that discards.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithScrollbackSize sets the scrollback capacity. Must be at least one.
func WithScrollbackSize(n int) Option {
	return func(o *options) {
		o.scrollbackSize = n
	}
}

// =============================================================================
// CONTROLLER
// =============================================================================

type subscription[T any] struct {
	id int
	fn func(T)
}

// Controller interprets input lines against its registry and owns the
// scrollback and command history of one console session.
type Controller struct {
	id         string
	registry   *Registry
	scrollback *Scrollback
	history    *History
	logs       []string
	lower      cases.Caser
	logger     *slog.Logger

	nextSubID      int
	logSubs        []subscription[[]string]
	visibilitySubs []subscription[bool]
}

// New creates a controller. The built-in commands are registered first,
// followed by registrations in the given order. A name registered twice
// (including a collision with a built-in) returns a DuplicateCommandError.
func New(registrations []CommandRegistration, opts ...Option) (*Controller, error) {
	o := options{
		logger:         slog.New(slog.DiscardHandler),
		scrollbackSize: DefaultScrollbackSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scrollbackSize < 1 {
		return nil, fmt.Errorf("console: scrollback size must be at least 1, got %d", o.scrollbackSize)
	}

	c := &Controller{
		id:         uuid.NewString(),
		registry:   NewRegistry(),
		scrollback: NewScrollback(o.scrollbackSize),
		history:    &History{},
		logs:       []string{},
		lower:      cases.Lower(language.Und),
	}
	c.logger = o.logger.With("session", c.id)

	builtins := []CommandRegistration{
		NewCommand("help", c.helpAction, "Print this help."),
		NewCommand(RepeatCommandName, c.repeatAction, "Repeat last command."),
		NewCommand("clear", c.clearAction, "Clear Console"),
		NewCommand("hide", c.hideAction, "Hide the console."),
	}
	for _, group := range [][]CommandRegistration{builtins, registrations} {
		for _, reg := range group {
			if err := c.registry.Register(reg); err != nil {
				return nil, fmt.Errorf("console: register commands: %w", err)
			}
		}
	}

	c.logger.Info("console created", "commands", c.registry.Len(), "scrollback", o.scrollbackSize)
	return c, nil
}

// ID returns the session identifier of this controller.
func (c *Controller) ID() string { return c.id }

// Commands returns every registration in registration order.
func (c *Controller) Commands() []CommandRegistration { return c.registry.All() }

// Logs returns the most recently published scrollback snapshot.
func (c *Controller) Logs() []string {
	out := make([]string, len(c.logs))
	copy(out, c.logs)
	return out
}

// History returns a copy of the command history, oldest first.
func (c *Controller) History() []string { return c.history.Entries() }

// =============================================================================
// INTERPRETER
// =============================================================================

// RunCommandString echoes, tokenizes and dispatches one raw input line.
// Failures are reported as error lines in the scrollback; nothing is
// returned to the caller. Every line that produced at least one token is
// recorded in history, including unknown commands.
func (c *Controller) RunCommandString(raw string) {
	c.appendLine(FormatEcho(raw))

	tokens := Tokenize(raw)
	if len(tokens) == 0 {
		c.report(&EmptyCommandError{Raw: raw})
		return
	}

	name := c.lower.String(tokens[0])
	if err := c.dispatch(name, tokens[1:]); err != nil {
		c.report(err)
	}

	c.history.Append(raw)
}

func (c *Controller) dispatch(name string, args []string) (err error) {
	reg, ok := c.registry.Lookup(name)
	if !ok {
		return &UnknownCommandError{Name: name}
	}
	handler := reg.Handler()
	if handler == nil {
		return &HandlerUnavailableError{Name: name}
	}

	defer func() {
		if r := recover(); r != nil {
			err = &HandlerPanicError{Name: name, Value: r}
		}
	}()

	c.logger.Debug("dispatching command", "command", name, "args", len(args))
	handler(args)
	return nil
}

func (c *Controller) report(err error) {
	c.logger.Debug("command not processed", "error", err)
	c.appendLine(FormatError(err.Error()))
}

// =============================================================================
// OUTPUT
// =============================================================================

// DrawIntro appends the console banner.
func (c *Controller) DrawIntro() {
	c.appendLine(Intro)
}

// Log appends an output line.
func (c *Controller) Log(line string) {
	c.appendLine(FormatOutput(line))
}

// LogError appends an error line.
func (c *Controller) LogError(line string) {
	c.appendLine(FormatError(line))
}

func (c *Controller) appendLine(line string) {
	c.scrollback.Append(line)
	c.publishLogs()
}

// =============================================================================
// NOTIFICATIONS
// =============================================================================

// OnLogChanged subscribes fn to scrollback changes. fn receives the full
// scrollback after every append or clear and must not retain or modify the
// slice across calls. The returned func removes the subscription.
func (c *Controller) OnLogChanged(fn func(lines []string)) (cancel func()) {
	id := c.subscribeID()
	c.logSubs = append(c.logSubs, subscription[[]string]{id: id, fn: fn})
	return func() { c.logSubs = removeSub(c.logSubs, id) }
}

// OnVisibilityChanged subscribes fn to visibility requests. The controller
// keeps no visibility state; the host decides what to do with the signal.
func (c *Controller) OnVisibilityChanged(fn func(visible bool)) (cancel func()) {
	id := c.subscribeID()
	c.visibilitySubs = append(c.visibilitySubs, subscription[bool]{id: id, fn: fn})
	return func() { c.visibilitySubs = removeSub(c.visibilitySubs, id) }
}

func (c *Controller) subscribeID() int {
	c.nextSubID++
	return c.nextSubID
}

func (c *Controller) publishLogs() {
	c.logs = c.scrollback.Lines()
	snapshot := c.Logs()
	for _, sub := range append([]subscription[[]string](nil), c.logSubs...) {
		c.notify("log", func() { sub.fn(snapshot) })
	}
}

func (c *Controller) publishVisibility(visible bool) {
	for _, sub := range append([]subscription[bool](nil), c.visibilitySubs...) {
		c.notify("visibility", func() { sub.fn(visible) })
	}
}

// notify runs one subscriber callback. A panicking subscriber is logged and
// skipped so the remaining subscribers and the command still run.
func (c *Controller) notify(kind string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn(kind+" subscriber failed", "panic", r)
		}
	}()
	fn()
}

func removeSub[T any](subs []subscription[T], id int) []subscription[T] {
	out := subs[:0:0]
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}
