// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load configuration"},
			expected: "failed to load configuration",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "load configuration", Resource: "config.cue"},
			expected: "failed to load configuration: config.cue",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "discover commands",
				Resource:  "/opt/sdks",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to discover commands: /opt/sdks: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := WrapWithOperation(fmt.Errorf("context: %w", sentinel), "parse metadata")

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}
	if WrapWithOperation(nil, "noop") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check the file").
		WithSuggestions("Run config init", "Use --config").
		Wrap(fmt.Errorf("outer: %w", inner)).
		Build()

	plain := err.Format(false)
	for _, want := range []string{"failed to load configuration: outer: inner", "• Check the file", "• Use --config"} {
		if !strings.Contains(plain, want) {
			t.Errorf("Format(false) missing %q:\n%s", want, plain)
		}
	}
	if strings.Contains(plain, "Error chain") {
		t.Error("Format(false) should not include the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "1. outer: inner") || !strings.Contains(verbose, "2. inner") {
		t.Errorf("Format(true) missing chain:\n%s", verbose)
	}
	if !err.HasSuggestions() {
		t.Error("HasSuggestions() = false")
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}

	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithIssue(ConfigLoadFailedId).
		Build()

	if err.Resource != "config.cue" || err.IssueId != ConfigLoadFailedId {
		t.Errorf("Build() = %+v", err)
	}
	if err.Issue() != Get(ConfigLoadFailedId) {
		t.Error("Issue() should resolve the catalog entry")
	}
}

func TestIssueOf(t *testing.T) {
	t.Parallel()

	linked := NewErrorContext().
		WithOperation("discover commands").
		WithIssue(NoCommandsFoundId).
		BuildError()
	outer := NewErrorContext().
		WithOperation("start").
		Wrap(fmt.Errorf("wrapped: %w", linked)).
		BuildError()

	if got := IssueOf(outer); got == nil || got.Id() != NoCommandsFoundId {
		t.Errorf("IssueOf() = %v, want NoCommandsFound", got)
	}
	if IssueOf(errors.New("plain")) != nil {
		t.Error("IssueOf(plain error) should be nil")
	}
	if IssueOf(nil) != nil {
		t.Error("IssueOf(nil) should be nil")
	}
}
