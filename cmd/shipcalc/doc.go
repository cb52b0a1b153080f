// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the shipcalc command tree.
//
// The root command runs the interactive estimate and is the failure boundary
// for the whole program: anything a session cannot recover from is logged,
// reported once as "An error occurred: ..." and turned into a non-zero exit
// status. The quote and config subcommands share the same App and
// configuration layers.
package cmd
