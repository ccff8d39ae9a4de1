// SPDX-License-Identifier: MPL-2.0

package help

import (
	"strings"

	"titanium-cli/internal/merge"
	"titanium-cli/pkg/cmdmeta"
)

// flagLabel renders -a, --name, --no-name|--alias, --no-alias.
func flagLabel(name string, f *cmdmeta.Flag) string {
	var b strings.Builder
	if f.Abbr != "" {
		b.WriteString("-" + f.Abbr + ", ")
	}
	b.WriteString("--" + name)
	if f.Negate {
		b.WriteString(", --no-" + name)
	}
	if f.Alias != "" {
		b.WriteString("|--" + f.Alias)
		if f.Negate {
			b.WriteString(", --no-" + f.Alias)
		}
	}
	return b.String()
}

// optionLabel renders -a, --name | --alias <hint>.
func optionLabel(name string, o *cmdmeta.Option) string {
	var b strings.Builder
	if o.Abbr != "" {
		b.WriteString("-" + o.Abbr + ", ")
	}
	b.WriteString("--" + name)
	if o.Alias != "" {
		b.WriteString(" | --" + o.Alias)
	}
	b.WriteString(" " + merge.ValueHint(o))
	return b.String()
}

func argLabel(a cmdmeta.Argument) string {
	return "<" + a.Name + ">"
}

// origin renders the provider restriction of an annotated entry.
func origin[T any](e merge.Entry[T]) string {
	if !e.Annotated() {
		return ""
	}
	s := "[--sdk " + e.SDK
	if e.Platform != "" {
		s += " --platform " + e.Platform
	}
	return s + "]"
}
