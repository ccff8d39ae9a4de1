// SPDX-License-Identifier: MPL-2.0

// Package ui holds the shared color palette, the lipgloss theme used by the
// logger and help renderer, and width-aware text helpers for aligned tables.
package ui
