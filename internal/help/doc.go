// SPDX-License-Identifier: MPL-2.0

// Package help renders the CLI help screens: the general command listing with
// global options, and per-command usage built from the merged metadata of all
// providers of a command.
//
// All output goes through a logger.Logger at the generic level.
package help
