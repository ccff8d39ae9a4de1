// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "build.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error keeps file and message", func(t *testing.T) {
		t.Parallel()

		err := FormatError(errors.New("some error"), "build.cue")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "build.cue") {
			t.Errorf("error should contain file path, got: %v", err)
		}
		if !strings.Contains(err.Error(), "some error") {
			t.Errorf("error should contain original message, got: %v", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "empty path", path: []string{}, expected: ""},
		{name: "single element", path: []string{"desc"}, expected: "desc"},
		{name: "nested path", path: []string{"flags", "force"}, expected: "flags.force"},
		{name: "array index", path: []string{"args", "0", "name"}, expected: "args[0].name"},
		{name: "index at end", path: []string{"options", "target", "values", "1"}, expected: "options.target.values[1]"},
		{name: "numeric first element", path: []string{"0", "name"}, expected: "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize([]byte("abc"), 3, "a.cue"); err != nil {
		t.Errorf("expected no error at the limit, got %v", err)
	}
	err := CheckFileSize([]byte("abcd"), 3, "a.cue")
	if err == nil {
		t.Fatal("expected error above the limit")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("unexpected error: %v", err)
	}
}
