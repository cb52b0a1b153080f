// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers that keep tests independent of the
// developer's configuration files and environment.
package testutil
