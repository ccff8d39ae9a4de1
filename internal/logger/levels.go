// SPDX-License-Identifier: MPL-2.0

package logger

import (
	"errors"
	"fmt"
	"slices"

	"titanium-cli/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// Level names.
const (
	LevelTrace   = "trace"
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelError   = "error"
	LevelGeneric = "_"
)

var (
	// ErrLevelNotFound is returned when a level name is not registered.
	ErrLevelNotFound = errors.New("log level not found")

	// ErrDuplicateLevel is returned when a level name is registered twice.
	ErrDuplicateLevel = errors.New("log level already registered")

	// ErrInvalidLevel is the sentinel wrapped by InvalidLevelError.
	ErrInvalidLevel = errors.New("invalid log level")
)

type (
	// Level is a logging severity.
	Level struct {
		Name string
		// Rank orders levels; lower is more verbose.
		Rank  int
		Color lipgloss.TerminalColor
		// Synthetic marks the generic level, which is never filtered and
		// never tagged.
		Synthetic bool
	}

	// InvalidLevelError is returned when a level cannot be registered.
	InvalidLevelError struct {
		Name   string
		Reason string
	}

	// Registry is the set of known levels.
	Registry struct {
		byName  map[string]Level
		ordered []Level
		generic *Level
	}
)

// Error implements the error interface.
func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q: %s", e.Name, e.Reason)
}

// Unwrap returns ErrInvalidLevel for errors.Is() compatibility.
func (e *InvalidLevelError) Unwrap() error { return ErrInvalidLevel }

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Level)}
}

// DefaultRegistry returns the CLI levels: trace, debug, info, warn and error,
// plus the generic level "_".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, l := range []Level{
		{Name: LevelTrace, Rank: 0, Color: ui.ColorVerbose},
		{Name: LevelDebug, Rank: 1, Color: ui.ColorDebug},
		{Name: LevelInfo, Rank: 2, Color: ui.ColorSuccess},
		{Name: LevelWarn, Rank: 3, Color: ui.ColorWarning},
		{Name: LevelError, Rank: 4, Color: ui.ColorError},
		{Name: LevelGeneric, Rank: 5, Synthetic: true},
	} {
		if err := r.Register(l); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds l. Names must be unique, ranks of regular levels must be
// distinct and at most one synthetic level may exist.
func (r *Registry) Register(l Level) error {
	if l.Name == "" {
		return &InvalidLevelError{Name: l.Name, Reason: "name must not be empty"}
	}
	if _, exists := r.byName[l.Name]; exists {
		return fmt.Errorf("%q: %w", l.Name, ErrDuplicateLevel)
	}

	if l.Synthetic {
		if r.generic != nil {
			return &InvalidLevelError{Name: l.Name, Reason: fmt.Sprintf("synthetic level %q already registered", r.generic.Name)}
		}
		r.generic = &l
		r.byName[l.Name] = l
		return nil
	}

	idx, found := slices.BinarySearchFunc(r.ordered, l.Rank, func(e Level, rank int) int {
		return e.Rank - rank
	})
	if found {
		return &InvalidLevelError{Name: l.Name, Reason: fmt.Sprintf("rank %d already used by %q", l.Rank, r.ordered[idx].Name)}
	}
	r.ordered = slices.Insert(r.ordered, idx, l)
	r.byName[l.Name] = l
	return nil
}

// Get returns the level called name.
func (r *Registry) Get(name string) (Level, error) {
	l, ok := r.byName[name]
	if !ok {
		return Level{}, fmt.Errorf("%q: %w", name, ErrLevelNotFound)
	}
	return l, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Ordered returns the regular level names from most to least verbose. The
// synthetic level is not included.
func (r *Registry) Ordered() []string {
	names := make([]string, len(r.ordered))
	for i, l := range r.ordered {
		names[i] = l.Name
	}
	return names
}

// Levels returns the regular levels from most to least verbose.
func (r *Registry) Levels() []Level {
	return slices.Clone(r.ordered)
}

// Generic returns the synthetic level.
func (r *Registry) Generic() (Level, bool) {
	if r.generic == nil {
		return Level{}, false
	}
	return *r.generic, true
}
