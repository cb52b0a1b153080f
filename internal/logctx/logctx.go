// SPDX-License-Identifier: MPL-2.0

// Package logctx carries the diagnostic logger through context.Context.
package logctx

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log record.
const Prefix = "shipcalc"

// key is unexported to prevent collisions with context keys from other packages.
type key struct{}

var discard = log.New(io.Discard)

// New returns a logger writing to w. Records below warn are dropped unless
// verbose is set, in which case debug records are written too.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  level,
	})
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// FromContext returns the logger stored in ctx, or a logger that discards
// everything when none was attached.
func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(key{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return discard
}
