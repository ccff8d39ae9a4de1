// SPDX-License-Identifier: MPL-2.0

package merge

import (
	"slices"

	"titanium-cli/internal/registry"
	"titanium-cli/pkg/cmdmeta"
)

type (
	// Entry is one provider's contribution to a Group. SDK and Platform are
	// empty for global entries; Platform is empty for SDK-wide entries.
	Entry[T any] struct {
		SDK      string
		Platform string
		Item     T
	}

	// Group collects same-named items across providers. The first entry is
	// the primary one.
	Group[T any] struct {
		Name    string
		Entries []Entry[T]
	}

	// Groups holds the merged groups of one command or subcommand.
	Groups struct {
		Subcommands []Group[*cmdmeta.Metadata]
		Args        []Group[cmdmeta.Argument]
		Flags       []Group[*cmdmeta.Flag]
		Options     []Group[*cmdmeta.Option]
	}

	// source is a loaded provider ready for grouping.
	source struct {
		sdk      string
		platform string
		md       *cmdmeta.Metadata
	}

	// grouper accumulates entries by name, keeping first-seen order.
	grouper[T any] struct {
		index  map[string]int
		groups []Group[T]
	}
)

// Annotated reports whether the entry carries an origin.
func (e Entry[T]) Annotated() bool { return e.SDK != "" }

// Empty reports whether there is nothing to display.
func (g *Groups) Empty() bool {
	return g == nil || (len(g.Subcommands) == 0 && len(g.Args) == 0 && len(g.Flags) == 0 && len(g.Options) == 0)
}

func newSource(p registry.Provider, md *cmdmeta.Metadata) source {
	s := source{sdk: p.SDK, md: md}
	if !p.IsGlobal() && !p.IsSDKWide() {
		s.platform = p.Platform
	}
	return s
}

func (g *grouper[T]) add(name string, e Entry[T]) {
	if g.index == nil {
		g.index = make(map[string]int)
	}
	i, ok := g.index[name]
	if !ok {
		i = len(g.groups)
		g.index[name] = i
		g.groups = append(g.groups, Group[T]{Name: name})
	}
	g.groups[i].Entries = append(g.groups[i].Entries, e)
}

func (g *grouper[T]) sorted() []Group[T] {
	out := slices.Clone(g.groups)
	slices.SortStableFunc(out, func(a, b Group[T]) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return out
}

// buildGroups groups the items of sources. Hidden subcommands, flags and
// options are skipped, as are arguments without a name.
func buildGroups(sources []source) Groups {
	var (
		subs    grouper[*cmdmeta.Metadata]
		args    grouper[cmdmeta.Argument]
		flags   grouper[*cmdmeta.Flag]
		options grouper[*cmdmeta.Option]
	)

	for _, s := range sources {
		for _, name := range sortedNames(s.md.Subcommands) {
			if sc := s.md.Subcommands[name]; sc != nil && !sc.Hidden {
				subs.add(name, Entry[*cmdmeta.Metadata]{SDK: s.sdk, Platform: s.platform, Item: sc})
			}
		}
		for _, a := range s.md.Args {
			if a.Name != "" {
				args.add(a.Name, Entry[cmdmeta.Argument]{SDK: s.sdk, Platform: s.platform, Item: a})
			}
		}
		for _, name := range sortedNames(s.md.Flags) {
			if f := s.md.Flags[name]; f != nil && !f.Hidden {
				flags.add(name, Entry[*cmdmeta.Flag]{SDK: s.sdk, Platform: s.platform, Item: f})
			}
		}
		for _, name := range sortedNames(s.md.Options) {
			if o := s.md.Options[name]; o != nil && !o.Hidden {
				options.add(name, Entry[*cmdmeta.Option]{SDK: s.sdk, Platform: s.platform, Item: o})
			}
		}
	}

	return Groups{
		Subcommands: subs.sorted(),
		Args:        args.groups,
		Flags:       flags.sorted(),
		Options:     options.sorted(),
	}
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
