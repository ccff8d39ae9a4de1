// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints, and may link to an entry of the issue catalog: Markdown
// explanations rendered with glamour when the CLI reports a failure.
package issue
