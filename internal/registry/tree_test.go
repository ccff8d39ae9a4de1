// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"testing"

	"titanium-cli/pkg/cmdmeta"
)

func TestTreeProvidersOrder(t *testing.T) {
	t.Parallel()

	var tree Tree
	tree.AddPlatform("7.0.0", "ios", NewVariant("7.0.0/ios"))
	tree.AddPlatform("7.0.0", "android", NewVariant("7.0.0/android"))
	tree.AddSDK("7.0.0", NewVariant("7.0.0"))
	tree.AddSDK("6.3.0", NewVariant("6.3.0"))
	tree.SetGlobal(NewVariant("global"))

	want := []struct {
		sdk, platform, locator string
	}{
		{"", "", "global"},
		{"6.3.0", GlobalScope, "6.3.0"},
		{"7.0.0", GlobalScope, "7.0.0"},
		{"7.0.0", "android", "7.0.0/android"},
		{"7.0.0", "ios", "7.0.0/ios"},
	}

	got := tree.Providers()
	if len(got) != len(want) {
		t.Fatalf("Providers() returned %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		p := got[i]
		if p.SDK != w.sdk || p.Platform != w.platform || p.Variant.Locator() != w.locator {
			t.Errorf("Providers()[%d] = {%q %q %q}, want {%q %q %q}",
				i, p.SDK, p.Platform, p.Variant.Locator(), w.sdk, w.platform, w.locator)
		}
	}

	if !got[0].IsGlobal() || got[0].IsSDKWide() {
		t.Error("first provider should be global")
	}
	if !got[1].IsSDKWide() {
		t.Error("second provider should be SDK-wide")
	}
	if got[3].IsSDKWide() || got[3].IsGlobal() {
		t.Error("platform provider misclassified")
	}
	if tree.Len() != 5 {
		t.Errorf("Len() = %d, want 5", tree.Len())
	}
}

func TestTableNamesAndLookup(t *testing.T) {
	t.Parallel()

	table := NewTable()
	table.Command("build").Tree.SetGlobal(NewLoadedVariant(&cmdmeta.Metadata{Description: "build it"}))
	table.Command("clean").Tree.SetGlobal(NewLoadedVariant(&cmdmeta.Metadata{}))
	table.Command(GlobalScope).Tree.SetGlobal(NewLoadedVariant(&cmdmeta.Metadata{}))

	names := table.Names()
	if len(names) != 2 || names[0] != "build" || names[1] != "clean" {
		t.Errorf("Names() = %v, want [build clean]", names)
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
	if _, ok := table.Global(); !ok {
		t.Error("Global() not found")
	}
	if table.Command("build") != table.Command("build") {
		t.Error("Command() should return the same instance")
	}
	if _, err := table.Lookup("deploy"); err == nil {
		t.Error("Lookup() of unknown command should fail")
	}

	var nilTable *Table
	if nilTable.Names() != nil || nilTable.Len() != 0 {
		t.Error("nil table should be empty")
	}
}

func TestCommandHiddenAndDescription(t *testing.T) {
	t.Parallel()

	failing := LoaderFunc(func(string) (*cmdmeta.Metadata, error) { return nil, errBroken })

	tests := []struct {
		name     string
		build    func(*Tree)
		hidden   bool
		describe string
	}{
		{
			name:   "all hidden",
			build:  func(tr *Tree) { tr.SetGlobal(NewLoadedVariant(&cmdmeta.Metadata{Hidden: true})) },
			hidden: true,
		},
		{
			name: "one visible variant",
			build: func(tr *Tree) {
				tr.SetGlobal(NewLoadedVariant(&cmdmeta.Metadata{Hidden: true}))
				tr.AddSDK("1.0.0", NewLoadedVariant(&cmdmeta.Metadata{Description: "sdk build"}))
			},
			describe: "sdk build",
		},
		{
			name:  "only failures",
			build: func(tr *Tree) { tr.SetGlobal(NewVariant("broken")) },
		},
		{
			name: "global description wins",
			build: func(tr *Tree) {
				tr.SetGlobal(NewLoadedVariant(&cmdmeta.Metadata{Description: "global"}))
				tr.AddSDK("1.0.0", NewLoadedVariant(&cmdmeta.Metadata{Description: "sdk"}))
			},
			describe: "global",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := &Command{Name: "build"}
			tt.build(&cmd.Tree)

			if got := cmd.Hidden(failing); got != tt.hidden {
				t.Errorf("Hidden() = %v, want %v", got, tt.hidden)
			}
			if got := cmd.Description(failing); got != tt.describe {
				t.Errorf("Description() = %q, want %q", got, tt.describe)
			}
		})
	}
}
