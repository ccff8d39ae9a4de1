// SPDX-License-Identifier: MPL-2.0

package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Width returns the display width of s, ignoring ANSI sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Rpad right-pads s with spaces to width display columns.
func Rpad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Blank returns a run of spaces as wide as s.
func Blank(s string) string {
	return strings.Repeat(" ", runewidth.StringWidth(s))
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Sentence capitalizes s and appends a period unless it already ends with
// one or with an exclamation mark.
func Sentence(s string) string {
	s = Capitalize(s)
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") {
		return s
	}
	return s + "."
}

// RenderLines applies style to each line of s separately so multi-line
// text is not padded to a common width.
func RenderLines(style lipgloss.Style, s string) string {
	if !strings.Contains(s, "\n") {
		if s == "" {
			return s
		}
		return style.Render(s)
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
