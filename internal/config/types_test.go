// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestLogLevel_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value LogLevel
		want  bool
	}{
		{LogLevelTrace, true},
		{LogLevelDebug, true},
		{LogLevelInfo, true},
		{LogLevelWarn, true},
		{LogLevelError, true},
		{"", false},
		{"WARN", false},
		{"verbose", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.value.IsValid()
			if valid != tt.want {
				t.Errorf("LogLevel(%q).IsValid() = %v, want %v", tt.value, valid, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidLogLevel) {
					t.Errorf("expected ErrInvalidLogLevel, got %v", errs)
				}
				var lvlErr *InvalidLogLevelError
				if !errors.As(errs[0], &lvlErr) || lvlErr.Value != tt.value {
					t.Errorf("expected *InvalidLogLevelError for %q", tt.value)
				}
			}
		})
	}
}

func TestSearchPath_IsValid(t *testing.T) {
	t.Parallel()

	if valid, _ := SearchPath("/opt/sdks").IsValid(); !valid {
		t.Error("absolute path should be valid")
	}
	for _, p := range []SearchPath{"", "   ", "\t"} {
		valid, errs := p.IsValid()
		if valid || !errors.Is(errs[0], ErrInvalidSearchPath) {
			t.Errorf("SearchPath(%q).IsValid() = %v, %v", p, valid, errs)
		}
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.CLI.LogLevel = "loud"
	cfg.Paths.Commands = []SearchPath{" "}
	cfg.Paths.SDKs = []SearchPath{"/ok", ""}

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("config should be invalid")
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", errs[0])
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 2 {
		t.Fatalf("expected 2 grouped field errors, got %d", len(cfgErr.FieldErrors))
	}
	if !errors.Is(cfgErr.FieldErrors[0], ErrInvalidCLIConfig) {
		t.Errorf("first group should be CLI, got %v", cfgErr.FieldErrors[0])
	}

	var pathsErr *InvalidPathsConfigError
	if !errors.As(cfgErr.FieldErrors[1], &pathsErr) || len(pathsErr.FieldErrors) != 2 {
		t.Errorf("expected 2 path errors, got %v", cfgErr.FieldErrors[1])
	}
}
