// SPDX-License-Identifier: MPL-2.0

// Package cmdmeta provides the declarative metadata a provider contributes for
// a command: description, title, positional arguments, flags, options and
// subcommands.
//
// Metadata files are CUE (validated against the embedded #Metadata schema) or
// TOML. FileLoader loads them by path and is the loader used for variants
// registered by discovery.
package cmdmeta
