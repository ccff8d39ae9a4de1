// SPDX-License-Identifier: MPL-2.0

// Package logger is the CLI's output layer.
//
// A Registry defines the severity levels (trace, debug, info, warn, error) and
// the synthetic generic level "_" used for plain, untagged lines. A Channel
// filters, tags and routes messages to stdout or stderr, rendering them with
// charmbracelet/log. Logger is the facade used by commands: printf-style
// level methods, the variadic Log entry point, Exception and Banner.
//
// One Logger is created per process by the CLI layer and passed explicitly to
// the components that print.
package logger
