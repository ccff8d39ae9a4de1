// SPDX-License-Identifier: MPL-2.0

package registry

import "slices"

// GlobalScope is the pseudo-platform of an SDK-wide variant and the reserved
// name of the command holding the global flags and options.
const GlobalScope = "__global__"

type (
	// Tree is the provider tree of one command.
	Tree struct {
		// Global is the variant contributed outside any SDK, if any.
		Global *Variant
		// SDKs maps SDK id to platform id to variant. SDK-wide variants
		// live under GlobalScope.
		SDKs map[string]map[string]*Variant
	}

	// Provider is one flattened (sdk, platform, variant) triple. Both ids are
	// empty for the global variant.
	Provider struct {
		SDK      string
		Platform string
		Variant  *Variant
	}
)

// IsGlobal reports whether the provider is the global variant.
func (p Provider) IsGlobal() bool { return p.SDK == "" }

// IsSDKWide reports whether the provider is an SDK-wide variant.
func (p Provider) IsSDKWide() bool { return p.SDK != "" && p.Platform == GlobalScope }

// SetGlobal sets the global variant.
func (t *Tree) SetGlobal(v *Variant) {
	t.Global = v
}

// AddSDK registers an SDK-wide variant.
func (t *Tree) AddSDK(sdk string, v *Variant) {
	t.AddPlatform(sdk, GlobalScope, v)
}

// AddPlatform registers a variant for platform within sdk.
func (t *Tree) AddPlatform(sdk, platform string, v *Variant) {
	if t.SDKs == nil {
		t.SDKs = make(map[string]map[string]*Variant)
	}
	platforms := t.SDKs[sdk]
	if platforms == nil {
		platforms = make(map[string]*Variant)
		t.SDKs[sdk] = platforms
	}
	platforms[platform] = v
}

// Len returns the number of variants in the tree.
func (t *Tree) Len() int {
	n := 0
	if t.Global != nil {
		n++
	}
	for _, platforms := range t.SDKs {
		n += len(platforms)
	}
	return n
}

// Providers flattens the tree: the global variant first, then SDKs in
// lexicographic order, each starting with its SDK-wide variant followed by
// its platforms in lexicographic order.
func (t *Tree) Providers() []Provider {
	providers := make([]Provider, 0, t.Len())
	if t.Global != nil {
		providers = append(providers, Provider{Variant: t.Global})
	}

	for _, sdk := range sortedKeys(t.SDKs) {
		platforms := t.SDKs[sdk]
		if v, ok := platforms[GlobalScope]; ok {
			providers = append(providers, Provider{SDK: sdk, Platform: GlobalScope, Variant: v})
		}
		for _, platform := range sortedKeys(platforms) {
			if platform == GlobalScope {
				continue
			}
			providers = append(providers, Provider{SDK: sdk, Platform: platform, Variant: platforms[platform]})
		}
	}
	return providers
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
