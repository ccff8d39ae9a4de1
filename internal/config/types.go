// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Log levels accepted by cli.log_level. Defined locally to avoid coupling
// config to internal/logger; the CLI resolves them against the registry.
const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidSearchPath is returned when a SearchPath value is empty or whitespace-only.
	ErrInvalidSearchPath = errors.New("invalid search path")
	// ErrInvalidCLIConfig is the sentinel error wrapped by InvalidCLIConfigError.
	ErrInvalidCLIConfig = errors.New("invalid CLI config")
	// ErrInvalidPathsConfig is the sentinel error wrapped by InvalidPathsConfigError.
	ErrInvalidPathsConfig = errors.New("invalid paths config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel names the minimum level the output channel prints.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// SearchPath is a directory scanned for command metadata.
	SearchPath string

	// InvalidSearchPathError is returned when a SearchPath is empty or
	// whitespace-only. It wraps ErrInvalidSearchPath for errors.Is().
	InvalidSearchPathError struct {
		Value SearchPath
	}

	// InvalidCLIConfigError collects field-level errors of a CLIConfig.
	InvalidCLIConfigError struct {
		FieldErrors []error
	}

	// InvalidPathsConfigError collects field-level errors of a PathsConfig.
	InvalidPathsConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// CLI configures output behavior.
		CLI CLIConfig `json:"cli" mapstructure:"cli"`
		// Paths lists where command metadata is discovered.
		Paths PathsConfig `json:"paths" mapstructure:"paths"`
	}

	// CLIConfig configures output behavior.
	CLIConfig struct {
		// Colors enables ANSI colors in help and log output.
		Colors bool `json:"colors" mapstructure:"colors"`
		// LogLevel is the minimum level printed.
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`
		// Quiet silences all output.
		Quiet bool `json:"quiet" mapstructure:"quiet"`
		// Banner prints the product banner before help output.
		Banner bool `json:"banner" mapstructure:"banner"`
	}

	// PathsConfig lists the roots scanned by discovery.
	PathsConfig struct {
		// Commands are directories holding global command metadata files.
		Commands []SearchPath `json:"commands" mapstructure:"commands"`
		// SDKs are roots holding one directory per SDK version.
		SDKs []SearchPath `json:"sdks" mapstructure:"sdks"`
	}
)

// LogLevels returns every accepted log level, lowest first.
func LogLevels() []LogLevel {
	return []LogLevel{LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels,
// and a list of validation errors if it is not.
func (l LogLevel) IsValid() (bool, []error) {
	for _, known := range LogLevels() {
		if l == known {
			return true, nil
		}
	}
	return false, []error{&InvalidLogLevelError{Value: l}}
}

// Error implements the error interface.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: trace, debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel so callers can use errors.Is for programmatic detection.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the SearchPath.
func (p SearchPath) String() string { return string(p) }

// IsValid returns whether the SearchPath is non-empty and not whitespace-only.
func (p SearchPath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidSearchPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidSearchPathError) Error() string {
	return fmt.Sprintf("invalid search path %q: must not be empty", e.Value)
}

// Unwrap returns ErrInvalidSearchPath for errors.Is() compatibility.
func (e *InvalidSearchPathError) Unwrap() error { return ErrInvalidSearchPath }

// IsValid returns whether the CLIConfig has valid fields.
// Bool fields need no validation.
func (c CLIConfig) IsValid() (bool, []error) {
	if valid, fieldErrs := c.LogLevel.IsValid(); !valid {
		return false, []error{&InvalidCLIConfigError{FieldErrors: fieldErrs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCLIConfigError.
func (e *InvalidCLIConfigError) Error() string {
	return fmt.Sprintf("invalid CLI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidCLIConfig for errors.Is() compatibility.
func (e *InvalidCLIConfigError) Unwrap() error { return ErrInvalidCLIConfig }

// IsValid returns whether every search path is valid.
func (c PathsConfig) IsValid() (bool, []error) {
	var errs []error
	for _, group := range [][]SearchPath{c.Commands, c.SDKs} {
		for _, p := range group {
			if valid, fieldErrs := p.IsValid(); !valid {
				errs = append(errs, fieldErrs...)
			}
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidPathsConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPathsConfigError.
func (e *InvalidPathsConfigError) Error() string {
	return fmt.Sprintf("invalid paths config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidPathsConfig for errors.Is() compatibility.
func (e *InvalidPathsConfigError) Unwrap() error { return ErrInvalidPathsConfig }

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.CLI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Paths.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		CLI: CLIConfig{
			Colors:   true,
			LogLevel: LogLevelWarn,
			Quiet:    false,
			Banner:   true,
		},
		Paths: PathsConfig{
			Commands: []SearchPath{},
			SDKs:     []SearchPath{},
		},
	}
}
