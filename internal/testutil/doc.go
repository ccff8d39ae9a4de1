// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include directory operations (MustChdir, MustMkdirAll) and
// fixture files (WriteFile). Metadata builders live in cmdmetatest.
package testutil
