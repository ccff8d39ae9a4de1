// SPDX-License-Identifier: MPL-2.0

package discovery

import "titanium-cli/internal/registry"

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal discovery error diagnostic.
	SeverityError Severity = "error"

	// CodePathUnreadable marks a search path that could not be listed.
	CodePathUnreadable = "path_unreadable"
	// CodeDuplicateCommand marks a command file shadowed by an earlier one.
	CodeDuplicateCommand = "duplicate_command"
	// CodeNoCommands is reported when discovery found nothing at all.
	CodeNoCommands = "no_commands"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// Diagnostic represents a structured discovery diagnostic that is returned
	// to callers (rather than written to stderr) for consistent rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "path_unreadable").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}

	// Result bundles the command table with the files it was built from and
	// diagnostics produced along the way.
	Result struct {
		Table       *registry.Table
		Files       []*DiscoveredFile
		Diagnostics []Diagnostic
	}
)

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
