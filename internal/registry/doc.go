// SPDX-License-Identifier: MPL-2.0

// Package registry holds the process-wide command table.
//
// Each command is backed by a Tree of provider variants: an optional global
// variant plus variants keyed by SDK and platform. Variants start unloaded and
// are loaded lazily, at most once, through a Loader.
package registry
