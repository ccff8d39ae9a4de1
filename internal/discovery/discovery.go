// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"

	"titanium-cli/internal/config"
	"titanium-cli/internal/registry"
)

// Source represents where a command file was found
type Source int

const (
	// SourceUserDir indicates the file was found in the user commands directory
	SourceUserDir Source = iota
	// SourceConfigPath indicates the file was found in a configured commands path
	SourceConfigPath
	// SourceSDK indicates the file was found inside an SDK root
	SourceSDK
)

type (
	// DiscoveredFile represents a found command file with its source.
	DiscoveredFile struct {
		// Path is the absolute path to the metadata file.
		Path string
		// Source indicates where the file was found.
		Source Source
		// Command is the command name, the file name without extension.
		Command string
		// SDK is the SDK version, empty for global commands.
		SDK string
		// Platform is the platform, registry.GlobalScope for SDK-wide files.
		Platform string
	}

	// Discovery finds command metadata files.
	Discovery struct {
		cfg         *config.Config
		commandsDir string
	}

	// Option configures Discovery.
	Option func(*Discovery)
)

// String returns a human-readable source name
func (s Source) String() string {
	switch s {
	case SourceUserDir:
		return "user commands"
	case SourceConfigPath:
		return "configured commands path"
	case SourceSDK:
		return "sdk"
	default:
		return "unknown"
	}
}

// WithCommandsDir overrides the user commands directory. An empty dir
// disables it.
func WithCommandsDir(dir string) Option {
	return func(d *Discovery) {
		d.commandsDir = dir
	}
}

// New creates a new Discovery instance. The user commands directory defaults
// to config.CommandsDir.
func New(cfg *config.Config, opts ...Option) *Discovery {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	d := &Discovery{cfg: cfg}
	if dir, err := config.CommandsDir(); err == nil {
		d.commandsDir = dir
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscoverAll finds all command files in order of precedence: the user
// commands directory, configured commands paths, then SDK roots.
func (d *Discovery) DiscoverAll() ([]*DiscoveredFile, []Diagnostic) {
	var (
		files []*DiscoveredFile
		diags []Diagnostic
	)

	if d.commandsDir != "" {
		found, dd := d.discoverCommandsDir(d.commandsDir, SourceUserDir, true)
		files = append(files, found...)
		diags = append(diags, dd...)
	}

	for _, p := range d.cfg.Paths.Commands {
		found, dd := d.discoverCommandsDir(string(p), SourceConfigPath, false)
		files = append(files, found...)
		diags = append(diags, dd...)
	}

	for _, p := range d.cfg.Paths.SDKs {
		found, dd := d.discoverSDKRoot(string(p))
		files = append(files, found...)
		diags = append(diags, dd...)
	}

	return files, diags
}

// Discover builds the command table from every discovered file. The first
// file registered for a (command, sdk, platform) slot wins; later ones are
// reported as duplicates. Unreadable paths are diagnostics; only an invalid
// search path configuration is an error.
func (d *Discovery) Discover() (*Result, error) {
	if valid, errs := d.cfg.Paths.IsValid(); !valid {
		return nil, errs[0]
	}

	files, diags := d.DiscoverAll()

	table := registry.NewTable()
	seen := make(map[string]string)
	kept := files[:0]

	for _, f := range files {
		key := f.Command + "\x00" + f.SDK + "\x00" + f.Platform
		if first, dup := seen[key]; dup {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeDuplicateCommand,
				Message:  fmt.Sprintf("command %q is already defined in %s", f.Command, first),
				Path:     f.Path,
			})
			continue
		}
		seen[key] = f.Path
		kept = append(kept, f)

		cmd := table.Command(f.Command)
		v := registry.NewVariant(f.Path)
		switch {
		case f.SDK == "":
			cmd.Tree.SetGlobal(v)
		default:
			cmd.Tree.AddPlatform(f.SDK, f.Platform, v)
		}
	}

	if table.Len() == 0 {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeNoCommands,
			Message:  "no command metadata found in any search path",
		})
	}

	return &Result{Table: table, Files: kept, Diagnostics: diags}, nil
}
