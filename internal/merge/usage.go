// SPDX-License-Identifier: MPL-2.0

package merge

import "titanium-cli/pkg/cmdmeta"

// SubcommandPlaceholder stands in for a subcommand no provider defines.
const SubcommandPlaceholder = "<subcommand>"

// usage accumulates usage tokens in their three sections. Each flag, option
// and argument name contributes one token; the first provider wins.
type usage struct {
	seen       map[string]bool
	required   []string
	optional   []string
	positional []string
}

func newUsage() *usage {
	return &usage{seen: make(map[string]bool)}
}

func (u *usage) push(dst *[]string, key, token string) {
	if u.seen[key] {
		return
	}
	u.seen[key] = true
	*dst = append(*dst, token)
}

// addMetadata adds the flag, option and argument tokens of md.
func (u *usage) addMetadata(md *cmdmeta.Metadata) {
	for _, name := range sortedNames(md.Flags) {
		if f := md.Flags[name]; f != nil {
			u.addSwitch("flag:"+name, FlagToken(name, f), f.Required)
		}
	}
	for _, name := range sortedNames(md.Options) {
		if o := md.Options[name]; o != nil {
			u.addSwitch("option:"+name, OptionToken(name, o), o.Required)
		}
	}
	for _, a := range md.Args {
		if a.Name != "" {
			u.push(&u.positional, "arg:"+a.Name, ArgToken(a))
		}
	}
}

func (u *usage) addSwitch(key, token string, required bool) {
	if required {
		u.push(&u.required, key, token)
		return
	}
	u.push(&u.optional, key, "["+token+"]")
}

func (u *usage) tokens(lead string) []string {
	out := make([]string, 0, 1+len(u.required)+len(u.optional)+len(u.positional))
	if lead != "" {
		out = append(out, lead)
	}
	out = append(out, u.required...)
	out = append(out, u.optional...)
	return append(out, u.positional...)
}

// FlagToken renders a flag as it appears in a usage line: --name or
// --name|--alias.
func FlagToken(name string, f *cmdmeta.Flag) string {
	token := "--" + name
	if f.Alias != "" {
		token += "|--" + f.Alias
	}
	return token
}

// OptionToken renders an option with its value placeholder.
func OptionToken(name string, o *cmdmeta.Option) string {
	token := "--" + name
	if o.Alias != "" {
		token += "|--" + o.Alias
	}
	return token + " " + ValueHint(o)
}

// ValueHint returns <hint>, or <value> when the option declares no hint.
func ValueHint(o *cmdmeta.Option) string {
	if o.Hint != "" {
		return "<" + o.Hint + ">"
	}
	return "<value>"
}

// ArgToken renders a positional argument: <name>, or [<name>] when optional.
func ArgToken(a cmdmeta.Argument) string {
	if a.Required {
		return "<" + a.Name + ">"
	}
	return "[<" + a.Name + ">]"
}
