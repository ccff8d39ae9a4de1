// SPDX-License-Identifier: MPL-2.0

package merge

import (
	"titanium-cli/internal/registry"
	"titanium-cli/pkg/cmdmeta"
)

// Result is the merged view of one command.
type Result struct {
	// Groups are the command's own items across every provider.
	Groups
	// Local holds the groups of the matched subcommand, unannotated. It is
	// nil unless a subcommand was requested and some provider defines it.
	Local *Groups

	// Usage is the ordered token list following the command name.
	Usage []string
	// Description is the matched subcommand's description, or the first
	// non-empty extended or short description in provider order.
	Description string
	// Title is the first non-empty title in provider order.
	Title string

	// Subcommand is the requested subcommand name when a provider defines it.
	Subcommand string
	// SubcommandMeta is the first provider definition of Subcommand.
	SubcommandMeta *cmdmeta.Metadata

	// Failures records the variants that could not be loaded. They contribute
	// nothing to the result.
	Failures []error
}

// Collect merges the providers of tree. When sub is non-empty and some
// provider declares subcommands, usage tokens come from the matching
// subcommand, or the SubcommandPlaceholder when none matches.
func Collect(tree *registry.Tree, sub string, loader registry.Loader) *Result {
	res := &Result{}

	var sources []source
	for _, p := range tree.Providers() {
		md, err := p.Variant.Load(loader)
		if err != nil {
			res.Failures = append(res.Failures, err)
			continue
		}
		sources = append(sources, newSource(p, md))
	}

	res.Groups = buildGroups(sources)

	declaresSubs := false
	if sub != "" {
		for _, s := range sources {
			if len(s.md.Subcommands) == 0 {
				continue
			}
			declaresSubs = true
			if sc, ok := s.md.Subcommands[sub]; ok && sc != nil && res.SubcommandMeta == nil {
				res.Subcommand = sub
				res.SubcommandMeta = sc
			}
		}
	}

	u := newUsage()
	for _, s := range sources {
		if sub != "" && len(s.md.Subcommands) > 0 {
			if sc, ok := s.md.Subcommands[sub]; ok && sc != nil {
				u.addMetadata(sc)
			}
			continue
		}
		u.addMetadata(s.md)
	}

	lead := ""
	switch {
	case res.SubcommandMeta != nil:
		lead = sub
	case declaresSubs:
		lead = SubcommandPlaceholder
	}
	res.Usage = u.tokens(lead)

	if res.SubcommandMeta != nil {
		sc := *res.SubcommandMeta
		sc.Subcommands = nil
		local := buildGroups([]source{{md: &sc}})
		res.Local = &local
		res.Description = res.SubcommandMeta.Description
	} else {
		for _, s := range sources {
			if d := s.md.Describe(); d != "" {
				res.Description = d
				break
			}
		}
	}

	for _, s := range sources {
		if s.md.Title != "" {
			res.Title = s.md.Title
			break
		}
	}

	return res
}
