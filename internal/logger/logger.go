// SPDX-License-Identifier: MPL-2.0

package logger

import (
	"fmt"
	"io"
	"os"

	"titanium-cli/internal/ui"
)

type (
	// Logger is the printing facade of the CLI.
	Logger struct {
		registry *Registry
		channel  *Channel
		theme    *ui.Theme
		generic  Level

		pkg           PackageInfo
		bannerEnabled bool
	}

	// Option configures a Logger.
	Option func(*loggerOptions)

	loggerOptions struct {
		registry *Registry
		stdout   io.Writer
		stderr   io.Writer
		pkg      PackageInfo
		banner   bool
		colorize bool
		silent   bool
	}
)

// WithRegistry uses registry instead of DefaultRegistry.
func WithRegistry(registry *Registry) Option {
	return func(o *loggerOptions) { o.registry = registry }
}

// WithWriters sets the standard and error streams.
func WithWriters(stdout, stderr io.Writer) Option {
	return func(o *loggerOptions) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// WithPackageInfo sets the product identification printed by Banner.
func WithPackageInfo(info PackageInfo) Option {
	return func(o *loggerOptions) { o.pkg = info }
}

// WithBanner enables or disables the banner. Enabled by default.
func WithBanner(enabled bool) Option {
	return func(o *loggerOptions) { o.banner = enabled }
}

// WithColorize enables or disables colors. Enabled by default.
func WithColorize(enabled bool) Option {
	return func(o *loggerOptions) { o.colorize = enabled }
}

// WithSilent silences all output.
func WithSilent(silent bool) Option {
	return func(o *loggerOptions) { o.silent = silent }
}

// New creates a Logger. Without options it prints every level to os.Stdout
// and os.Stderr using DefaultRegistry.
func New(opts ...Option) *Logger {
	o := loggerOptions{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		banner:   true,
		colorize: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}

	generic, ok := o.registry.Generic()
	if !ok {
		generic = Level{Name: LevelGeneric, Synthetic: true}
	}

	channel := NewChannel(o.registry, o.stdout, o.stderr)
	channel.SetColorize(o.colorize)
	channel.SetSilent(o.silent)

	return &Logger{
		registry:      o.registry,
		channel:       channel,
		theme:         ui.NewTheme(channel.Renderer()),
		generic:       generic,
		pkg:           o.pkg,
		bannerEnabled: o.banner,
	}
}

// Log writes a formatted message. When the first argument names a registered
// level it selects that level; otherwise all arguments are a format string
// and its values, written untagged. With no arguments Log writes a blank line.
//
// An error passed as the format or as the first value is replaced by its
// stack text, or its message, followed by a newline.
func (l *Logger) Log(args ...any) *Logger {
	level := l.generic
	if len(args) > 0 {
		if name, ok := args[0].(string); ok && l.registry.Has(name) {
			level, _ = l.registry.Get(name)
			args = args[1:]
		}
	}

	if len(args) == 0 {
		l.channel.Write(level, "")
		return l
	}
	l.channel.Write(level, l.format(args[0], args[1:]))
	return l
}

// Trace logs at the trace level.
func (l *Logger) Trace(format string, args ...any) *Logger {
	return l.levelf(LevelTrace, format, args)
}

// Debug logs at the debug level.
func (l *Logger) Debug(format string, args ...any) *Logger {
	return l.levelf(LevelDebug, format, args)
}

// Info logs at the info level.
func (l *Logger) Info(format string, args ...any) *Logger {
	return l.levelf(LevelInfo, format, args)
}

// Warn logs at the warn level.
func (l *Logger) Warn(format string, args ...any) *Logger {
	return l.levelf(LevelWarn, format, args)
}

// Error logs at the error level.
func (l *Logger) Error(format string, args ...any) *Logger {
	return l.levelf(LevelError, format, args)
}

func (l *Logger) levelf(name, format string, args []any) *Logger {
	level, err := l.registry.Get(name)
	if err != nil {
		level = l.generic
	}
	l.channel.Write(level, l.format(format, args))
	return l
}

// format applies printf-style substitution after replacing error values in
// the format and first-value positions with their text.
func (l *Logger) format(format any, values []any) string {
	if len(values) > 0 {
		if err, ok := values[0].(error); ok {
			values = append([]any{ErrorText(err) + "\n"}, values[1:]...)
		}
	}

	var text string
	switch f := format.(type) {
	case string:
		text = f
	case error:
		text = ErrorText(f) + "\n"
		if len(values) == 0 {
			return text
		}
	default:
		text = fmt.Sprint(f)
	}

	return fmt.Sprintf(text, values...)
}

// SetSilent silences or restores all output.
func (l *Logger) SetSilent(silent bool) { l.channel.SetSilent(silent) }

// SetMinLevel sets the least severe level that is still printed.
func (l *Logger) SetMinLevel(name string) error { return l.channel.SetMinLevel(name) }

// MinLevel returns the configured minimum level name.
func (l *Logger) MinLevel() string { return l.channel.MinLevel() }

// SetColorize enables or disables colors.
func (l *Logger) SetColorize(enabled bool) { l.channel.SetColorize(enabled) }

// Colorize reports whether colors are enabled.
func (l *Logger) Colorize() bool { return l.channel.Colorize() }

// LevelNames returns the selectable level names, most verbose first.
func (l *Logger) LevelNames() []string { return l.registry.Ordered() }

// Channel returns the underlying output channel.
func (l *Logger) Channel() *Channel { return l.channel }

// Theme returns the styles bound to the standard stream.
func (l *Logger) Theme() *ui.Theme { return l.theme }
