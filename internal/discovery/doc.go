// SPDX-License-Identifier: MPL-2.0

// Package discovery locates command metadata files and builds the command table.
//
// File organization:
//   - discovery.go: core types (Discovery, Source, DiscoveredFile) and Discover
//   - discovery_files.go: directory scanning for command and SDK roots
//   - diagnostic.go: non-fatal diagnostics returned to the CLI layer
//
// Files are registered as unloaded variants keyed by their path; nothing is
// parsed here. Parsing happens lazily when help output needs a variant.
package discovery
