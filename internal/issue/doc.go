// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError records what shipcalc was doing, on which resource, and what
// the user can try next. The issue catalog holds longer Markdown help pages,
// keyed by Id, that the CLI renders after a fatal error.
package issue
