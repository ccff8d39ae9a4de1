// SPDX-License-Identifier: MPL-2.0

package logger

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"sync/atomic"

	"titanium-cli/internal/ui"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
)

// Channel is the sink every message passes through. It filters by minimum
// level, strips colors when colorization is off, tags regular levels and
// routes error and debug output to stderr.
//
// Levels must be registered before the channel is created.
type Channel struct {
	registry *Registry

	stdout *log.Logger
	stderr *log.Logger

	stdoutRenderer *lipgloss.Renderer
	errorStyle     lipgloss.Style

	minLevel string
	minRank  int
	colorize bool
	silent   bool

	logged atomic.Uint64
	hooks  []func(Level)
}

// NewChannel returns a channel writing to stdout and stderr. Nil writers fall
// back to os.Stdout and os.Stderr. All levels pass until SetMinLevel is called.
func NewChannel(registry *Registry, stdout, stderr io.Writer) *Channel {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	styles := levelStyles(registry)
	errRenderer := lipgloss.NewRenderer(stderr)

	return &Channel{
		registry:       registry,
		stdout:         newStreamLogger(stdout, styles),
		stderr:         newStreamLogger(stderr, styles),
		stdoutRenderer: lipgloss.NewRenderer(stdout),
		errorStyle:     errRenderer.NewStyle().Foreground(errorColor(registry)),
		minRank:        math.MinInt,
		colorize:       true,
	}
}

func newStreamLogger(w io.Writer, styles *log.Styles) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           log.Level(math.MinInt32),
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
	})
	l.SetStyles(styles)
	return l
}

// levelStyles renders each regular level as its bracketed upper-case tag.
func levelStyles(registry *Registry) *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels = make(map[log.Level]lipgloss.Style)
	for _, l := range registry.Levels() {
		style := lipgloss.NewStyle().SetString("[" + strings.ToUpper(l.Name) + "]")
		if l.Color != nil {
			style = style.Foreground(l.Color)
		}
		styles.Levels[streamLevel(l)] = style
	}
	return styles
}

func streamLevel(l Level) log.Level {
	return log.Level(l.Rank)
}

func errorColor(registry *Registry) lipgloss.TerminalColor {
	if l, err := registry.Get(LevelError); err == nil && l.Color != nil {
		return l.Color
	}
	return ui.ColorError
}

// Write emits message at level l.
func (c *Channel) Write(l Level, message string) {
	if c.silent {
		return
	}
	if !l.Synthetic && l.Rank < c.minRank {
		return
	}

	if !c.colorize {
		message = ansi.Strip(message)
	}
	if l.Name == LevelError {
		message = ui.RenderLines(c.errorStyle, message)
	}

	target := c.stdout
	if l.Name == LevelError || l.Name == LevelDebug {
		target = c.stderr
	}

	if l.Synthetic {
		target.Print(message)
	} else {
		target.Log(streamLevel(l), message)
	}

	c.logged.Add(1)
	for _, hook := range c.hooks {
		hook(l)
	}
}

// SetMinLevel suppresses regular levels ranked below name. The synthetic
// level cannot be used as a filter.
func (c *Channel) SetMinLevel(name string) error {
	l, err := c.registry.Get(name)
	if err != nil {
		return err
	}
	if l.Synthetic {
		return &InvalidLevelError{Name: name, Reason: "the generic level cannot be used as a filter"}
	}
	c.minLevel = l.Name
	c.minRank = l.Rank
	return nil
}

// MinLevel returns the current minimum level name, empty when unset.
func (c *Channel) MinLevel() string { return c.minLevel }

// SetColorize enables or disables colors in message text.
func (c *Channel) SetColorize(enabled bool) { c.colorize = enabled }

// Colorize reports whether colors are kept in message text.
func (c *Channel) Colorize() bool { return c.colorize }

// SetSilent turns every write into a no-op.
func (c *Channel) SetSilent(silent bool) { c.silent = silent }

// Silent reports whether the channel is silenced.
func (c *Channel) Silent() bool { return c.silent }

// Logged returns the number of messages written so far.
func (c *Channel) Logged() uint64 { return c.logged.Load() }

// OnLogged registers fn to run after every write that reaches a stream.
func (c *Channel) OnLogged(fn func(Level)) {
	if fn == nil {
		return
	}
	c.hooks = append(c.hooks, fn)
}

// Renderer returns the lipgloss renderer bound to the standard stream.
func (c *Channel) Renderer() *lipgloss.Renderer { return c.stdoutRenderer }

// String implements fmt.Stringer for debugging.
func (c *Channel) String() string {
	return fmt.Sprintf("Channel{min=%q colorize=%t silent=%t logged=%d}",
		c.minLevel, c.colorize, c.silent, c.Logged())
}
