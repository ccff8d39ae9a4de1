// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"titanium-cli/internal/registry"
	"titanium-cli/pkg/cmdmeta"
)

// commandsSubdir is where an SDK or platform directory keeps its commands.
var commandsSubdir = filepath.Join("cli", "commands")

// discoverCommandsDir lists the metadata files directly inside dir.
// A missing dir is silent when optional is true.
func (d *Discovery) discoverCommandsDir(dir string, source Source, optional bool) ([]*DiscoveredFile, []Diagnostic) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, []Diagnostic{unreadable(dir, err)}
	}

	files, err := listCommandFiles(absDir)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, []Diagnostic{unreadable(absDir, err)}
	}

	out := make([]*DiscoveredFile, 0, len(files))
	for _, f := range files {
		out = append(out, &DiscoveredFile{
			Path:    f,
			Source:  source,
			Command: commandName(f),
		})
	}
	return out, nil
}

// discoverSDKRoot walks <root>/<sdk>/cli/commands and
// <root>/<sdk>/<platform>/cli/commands.
func (d *Discovery) discoverSDKRoot(root string) ([]*DiscoveredFile, []Diagnostic) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, []Diagnostic{unreadable(root, err)}
	}

	sdks, err := listDirs(absRoot)
	if err != nil {
		return nil, []Diagnostic{unreadable(absRoot, err)}
	}

	var (
		files []*DiscoveredFile
		diags []Diagnostic
	)

	add := func(dir, sdk, platform string) {
		found, err := listCommandFiles(dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				diags = append(diags, unreadable(dir, err))
			}
			return
		}
		for _, f := range found {
			files = append(files, &DiscoveredFile{
				Path:     f,
				Source:   SourceSDK,
				Command:  commandName(f),
				SDK:      sdk,
				Platform: platform,
			})
		}
	}

	for _, sdk := range sdks {
		sdkDir := filepath.Join(absRoot, sdk)
		add(filepath.Join(sdkDir, commandsSubdir), sdk, registry.GlobalScope)

		platforms, err := listDirs(sdkDir)
		if err != nil {
			diags = append(diags, unreadable(sdkDir, err))
			continue
		}
		for _, platform := range platforms {
			// "cli" holds the SDK-wide commands, not a platform.
			if platform == "cli" {
				continue
			}
			add(filepath.Join(sdkDir, platform, commandsSubdir), sdk, platform)
		}
	}

	return files, diags
}

// listCommandFiles returns the metadata files in dir, sorted. When a command
// has both a .cue and a .toml file, the .cue file wins.
func listCommandFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !cmdmeta.IsMetadataFile(name) {
			continue
		}
		cmd := commandName(name)
		if prev, ok := byName[cmd]; ok && strings.EqualFold(filepath.Ext(prev), cmdmeta.ExtCUE) {
			continue
		}
		byName[cmd] = filepath.Join(dir, name)
	}

	out := make([]string, 0, len(byName))
	for _, p := range byName {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// listDirs returns the non-hidden subdirectory names of dir, sorted.
func listDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func commandName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func unreadable(path string, err error) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Code:     CodePathUnreadable,
		Message:  fmt.Sprintf("cannot read search path: %v", err),
		Path:     path,
		Cause:    err,
	}
}
