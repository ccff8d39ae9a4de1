// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for titanium.
//
// The root command owns help output: running titanium with no command, with
// an unknown one, or with --help renders help screens built from the command
// metadata found by discovery. Configuration and discovery failures never
// abort the run; they are carried into the help invocation and printed first.
package cmd
