// SPDX-License-Identifier: MPL-2.0

// Package cmdmetatest provides test helpers for creating cmdmeta.Metadata values.
//
// Usage:
//
//	import "titanium-cli/internal/testutil/cmdmetatest"
//
//	md := cmdmetatest.New("builds a project",
//	    cmdmetatest.WithOption("platform", cmdmetatest.OptionValues("ios", "android")),
//	    cmdmetatest.WithArg("dir", true),
//	)
package cmdmetatest

import (
	"titanium-cli/pkg/cmdmeta"
)

type (
	// MetadataOption configures test metadata.
	MetadataOption func(*cmdmeta.Metadata)

	// FlagOption configures a test flag.
	FlagOption func(*cmdmeta.Flag)

	// OptionOption configures a test option.
	OptionOption func(*cmdmeta.Option)
)

// New creates metadata with the given description and options.
func New(desc string, opts ...MetadataOption) *cmdmeta.Metadata {
	md := &cmdmeta.Metadata{Description: desc}
	for _, opt := range opts {
		opt(md)
	}
	return md
}

// --- Metadata Options ---

// WithTitle sets the heading title.
func WithTitle(title string) MetadataOption {
	return func(m *cmdmeta.Metadata) {
		m.Title = title
	}
}

// WithExtendedDesc sets the extended description.
func WithExtendedDesc(desc string) MetadataOption {
	return func(m *cmdmeta.Metadata) {
		m.ExtendedDesc = desc
	}
}

// Hidden marks the metadata hidden.
func Hidden() MetadataOption {
	return func(m *cmdmeta.Metadata) {
		m.Hidden = true
	}
}

// WithArg appends a positional argument.
func WithArg(name string, required bool) MetadataOption {
	return func(m *cmdmeta.Metadata) {
		m.Args = append(m.Args, cmdmeta.Argument{Name: name, Required: required, Description: name})
	}
}

// WithFlag adds a flag whose description is its name unless overridden.
func WithFlag(name string, opts ...FlagOption) MetadataOption {
	return func(m *cmdmeta.Metadata) {
		if m.Flags == nil {
			m.Flags = make(map[string]*cmdmeta.Flag)
		}
		f := &cmdmeta.Flag{Description: name}
		for _, opt := range opts {
			opt(f)
		}
		m.Flags[name] = f
	}
}

// WithOption adds an option whose description is its name unless overridden.
func WithOption(name string, opts ...OptionOption) MetadataOption {
	return func(m *cmdmeta.Metadata) {
		if m.Options == nil {
			m.Options = make(map[string]*cmdmeta.Option)
		}
		o := &cmdmeta.Option{Description: name}
		for _, opt := range opts {
			opt(o)
		}
		m.Options[name] = o
	}
}

// WithSubcommand adds a subcommand.
func WithSubcommand(name string, sub *cmdmeta.Metadata) MetadataOption {
	return func(m *cmdmeta.Metadata) {
		if m.Subcommands == nil {
			m.Subcommands = make(map[string]*cmdmeta.Metadata)
		}
		m.Subcommands[name] = sub
	}
}

// --- Flag Options ---

// FlagAbbr sets the single-letter abbreviation.
func FlagAbbr(abbr string) FlagOption {
	return func(f *cmdmeta.Flag) { f.Abbr = abbr }
}

// FlagRequired marks the flag required.
func FlagRequired() FlagOption {
	return func(f *cmdmeta.Flag) { f.Required = true }
}

// FlagDefault sets the default value.
func FlagDefault(v any) FlagOption {
	return func(f *cmdmeta.Flag) { f.Default = v }
}

// --- Option Options ---

// OptionHint sets the value placeholder.
func OptionHint(hint string) OptionOption {
	return func(o *cmdmeta.Option) { o.Hint = hint }
}

// OptionRequired marks the option required.
func OptionRequired() OptionOption {
	return func(o *cmdmeta.Option) { o.Required = true }
}

// OptionDefault sets the default value.
func OptionDefault(v any) OptionOption {
	return func(o *cmdmeta.Option) { o.Default = v }
}

// OptionValues sets the allowed values.
func OptionValues(values ...string) OptionOption {
	return func(o *cmdmeta.Option) { o.Values = values }
}
