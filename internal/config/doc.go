// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from config.cue in the XDG config directory
// (titanium/ under $XDG_CONFIG_HOME on Linux, ~/Library/Application Support
// on macOS, %APPDATA% on Windows), or from the file named by --config. Files
// are validated against the embedded config_schema.cue, merged over the
// defaults, and finally overridden by TITANIUM_* environment variables.
package config
