// SPDX-License-Identifier: MPL-2.0

// Package config handles shipcalc configuration using Viper with CUE as the file format.
//
// Values are layered, lowest precedence first: built-in defaults, a config.cue file
// (from the platform config directory, then the working directory, or an explicit
// path), a dotenv file, and SHIPCALC_* environment variables. Command-line flags are
// applied on top by the CLI layer.
//
// CUE files are validated against the embedded schema (config_schema.cue) before
// they reach Viper. Values from the environment skip CUE, so the decoded Config is
// validated again in Go.
package config
