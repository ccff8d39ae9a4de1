// SPDX-License-Identifier: MPL-2.0

// Package merge reconciles the metadata of every provider of a command into
// one deterministic description: name-keyed groups of subcommands, arguments,
// flags and options annotated with their origin, the usage token list, and
// the resolved title and description.
//
// Providers are visited in registry.Tree.Providers order: the global variant,
// then SDKs lexicographically, each SDK-wide variant before its platforms.
package merge
