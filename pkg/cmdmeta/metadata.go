// SPDX-License-Identifier: MPL-2.0

package cmdmeta

import "fmt"

type (
	// Argument is a positional argument of a command.
	Argument struct {
		Name        string `json:"name" toml:"name"`
		Required    bool   `json:"required,omitempty" toml:"required"`
		Description string `json:"desc,omitempty" toml:"desc"`
	}

	// Flag is a boolean switch of a command.
	Flag struct {
		// Abbr is the single-character short form (-f).
		Abbr string `json:"abbr,omitempty" toml:"abbr"`
		// Negate adds a --no-<name> form.
		Negate      bool   `json:"negate,omitempty" toml:"negate"`
		Alias       string `json:"alias,omitempty" toml:"alias"`
		Description string `json:"desc,omitempty" toml:"desc"`
		Default     any    `json:"default,omitempty" toml:"default"`
		Hidden      bool   `json:"hidden,omitempty" toml:"hidden"`
		Required    bool   `json:"required,omitempty" toml:"required"`
	}

	// Option is a command-line option that takes a value.
	Option struct {
		Abbr  string `json:"abbr,omitempty" toml:"abbr"`
		Alias string `json:"alias,omitempty" toml:"alias"`
		// Hint names the value placeholder (--output <dir>).
		Hint        string `json:"hint,omitempty" toml:"hint"`
		Description string `json:"desc,omitempty" toml:"desc"`
		Default     any    `json:"default,omitempty" toml:"default"`
		// Values enumerates the accepted values, if restricted.
		Values   []string `json:"values,omitempty" toml:"values"`
		Hidden   bool     `json:"hidden,omitempty" toml:"hidden"`
		Required bool     `json:"required,omitempty" toml:"required"`
	}

	// Metadata is one provider's declaration of a command. Subcommands use
	// the same shape; their own Subcommands field is ignored.
	Metadata struct {
		Description  string               `json:"desc,omitempty" toml:"desc"`
		ExtendedDesc string               `json:"extendedDesc,omitempty" toml:"extendedDesc"`
		Title        string               `json:"title,omitempty" toml:"title"`
		Hidden       bool                 `json:"hidden,omitempty" toml:"hidden"`
		Args         []Argument           `json:"args,omitempty" toml:"args"`
		Flags        map[string]*Flag     `json:"flags,omitempty" toml:"flags"`
		Options      map[string]*Option   `json:"options,omitempty" toml:"options"`
		Subcommands  map[string]*Metadata `json:"subcommands,omitempty" toml:"subcommands"`
	}
)

// Describe returns the extended description, falling back to the short one.
func (m *Metadata) Describe() string {
	if m == nil {
		return ""
	}
	if m.ExtendedDesc != "" {
		return m.ExtendedDesc
	}
	return m.Description
}

// HasDefault reports whether the flag declares a non-empty default.
func (f *Flag) HasDefault() bool { return isSet(f.Default) }

// DefaultString renders the flag default for display.
func (f *Flag) DefaultString() string { return formatDefault(f.Default) }

// HasDefault reports whether the option declares a non-empty default.
func (o *Option) HasDefault() bool { return isSet(o.Default) }

// DefaultString renders the option default for display.
func (o *Option) DefaultString() string { return formatDefault(o.Default) }

// isSet treats nil, false, "" and numeric zero as "no default".
func isSet(v any) bool {
	switch d := v.(type) {
	case nil:
		return false
	case bool:
		return d
	case string:
		return d != ""
	case int:
		return d != 0
	case int64:
		return d != 0
	case float64:
		return d != 0
	default:
		return formatDefault(v) != ""
	}
}

func formatDefault(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
