// SPDX-License-Identifier: MPL-2.0

package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette - shared hex colors for consistent theming across all CLI output.
// These colors are designed for dark terminal backgrounds with good contrast.
const (
	// ColorAccent is cyan - used for command names, labels and the product name.
	ColorAccent = lipgloss.Color("#06B6D4")

	// ColorMuted is gray - used for annotations and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for the info level.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors, failures, and negative outcomes.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings and caution states.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorDebug is magenta - used for the debug level.
	ColorDebug = lipgloss.Color("#D946EF")

	// ColorVerbose is light gray - used for the trace level.
	ColorVerbose = lipgloss.Color("#9CA3AF")
)

// Theme is the set of styles bound to one output renderer.
type Theme struct {
	renderer *lipgloss.Renderer

	// Cmd styles command names and table labels.
	Cmd lipgloss.Style
	// Muted styles annotations such as defaults and origins.
	Muted lipgloss.Style
	// Error styles error notices.
	Error lipgloss.Style
	// Bold highlights a value inside muted text.
	Bold lipgloss.Style
	// Product styles the product name in the banner.
	Product lipgloss.Style
}

// NewTheme builds the theme for r. A nil renderer uses one bound to stdout.
func NewTheme(r *lipgloss.Renderer) *Theme {
	if r == nil {
		r = lipgloss.NewRenderer(os.Stdout)
	}
	return &Theme{
		renderer: r,
		Cmd:      r.NewStyle().Foreground(ColorAccent),
		Muted:    r.NewStyle().Foreground(ColorMuted),
		Error:    r.NewStyle().Foreground(ColorError),
		Bold:     r.NewStyle().Bold(true),
		Product:  r.NewStyle().Bold(true).Foreground(ColorAccent),
	}
}

// Renderer returns the renderer the theme is bound to.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// HasColor reports whether the renderer emits color escapes. It is false when
// output is not a terminal.
func (t *Theme) HasColor() bool {
	return t.renderer.ColorProfile() != termenv.Ascii
}
