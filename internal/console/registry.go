// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Handler executes a command with the positional arguments that followed
// the command name.
type Handler func(args []string)

// CommandRegistration binds a command name to its handler and help text.
// It is immutable once constructed.
type CommandRegistration struct {
	name    string
	handler Handler
	help    string
}

// NewCommand creates a registration. Names are stored as given, but typed
// command names are lowercased before lookup, so only lowercase names are
// reachable from the input line.
func NewCommand(name string, handler Handler, help string) CommandRegistration {
	return CommandRegistration{name: name, handler: handler, help: help}
}

// Name returns the registered command name.
func (r CommandRegistration) Name() string { return r.name }

// Help returns the help text shown by the help command.
func (r CommandRegistration) Help() string { return r.help }

// Handler returns the command handler, which may be nil.
func (r CommandRegistration) Handler() Handler { return r.handler }

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry maps command names to registrations and remembers the order in
// which they were registered.
type Registry struct {
	commands map[string]CommandRegistration
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandRegistration),
	}
}

// Register adds a command. Keys are compared exactly as stored.
func (r *Registry) Register(reg CommandRegistration) error {
	if _, exists := r.commands[reg.name]; exists {
		return &DuplicateCommandError{Name: reg.name}
	}
	r.commands[reg.name] = reg
	r.order = append(r.order, reg.name)
	return nil
}

// Lookup retrieves a command by its exact stored name.
func (r *Registry) Lookup(name string) (CommandRegistration, bool) {
	reg, ok := r.commands[name]
	return reg, ok
}

// All returns every registration in registration order.
func (r *Registry) All() []CommandRegistration {
	regs := make([]CommandRegistration, 0, len(r.order))
	for _, name := range r.order {
		regs = append(regs, r.commands[name])
	}
	return regs
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}
