// SPDX-License-Identifier: MPL-2.0

// Package tui provides the line-oriented console shipcalc talks through and
// the lipgloss styles it prints with.
//
// Styles are bound to the writer they render for, so output sent to a pipe or
// a buffer carries no escape sequences.
package tui
