// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
)

// ErrCommandNotFound is returned by Table.Lookup for unknown names.
var ErrCommandNotFound = errors.New("command not found")

type (
	// Command is a named command and its provider tree.
	Command struct {
		Name string
		Tree Tree
	}

	// Table maps command names to commands.
	Table struct {
		commands map[string]*Command
	}
)

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{commands: make(map[string]*Command)}
}

// Command returns the command called name, creating it when absent.
func (t *Table) Command(name string) *Command {
	if cmd, ok := t.commands[name]; ok {
		return cmd
	}
	cmd := &Command{Name: name}
	t.commands[name] = cmd
	return cmd
}

// Get returns the command called name.
func (t *Table) Get(name string) (*Command, bool) {
	if t == nil {
		return nil, false
	}
	cmd, ok := t.commands[name]
	return cmd, ok
}

// Lookup is Get returning ErrCommandNotFound for unknown names.
func (t *Table) Lookup(name string) (*Command, error) {
	cmd, ok := t.Get(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrCommandNotFound)
	}
	return cmd, nil
}

// Global returns the reserved command holding global flags and options.
func (t *Table) Global() (*Command, bool) {
	return t.Get(GlobalScope)
}

// Names returns every command name except GlobalScope, sorted.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := sortedKeys(t.commands)
	out := names[:0]
	for _, name := range names {
		if name != GlobalScope {
			out = append(out, name)
		}
	}
	return out
}

// Len returns the number of commands, GlobalScope included.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.commands)
}

// Hidden reports whether the command should be left out of listings: it is
// hidden when every variant that loads successfully is marked hidden.
func (c *Command) Hidden(loader Loader) bool {
	loaded := 0
	for _, p := range c.Tree.Providers() {
		md, err := p.Variant.Load(loader)
		if err != nil {
			continue
		}
		if !md.Hidden {
			return false
		}
		loaded++
	}
	return loaded > 0
}

// Description returns the first non-empty description in provider order.
func (c *Command) Description(loader Loader) string {
	for _, p := range c.Tree.Providers() {
		md, err := p.Variant.Load(loader)
		if err != nil {
			continue
		}
		if md.Description != "" {
			return md.Description
		}
	}
	return ""
}
