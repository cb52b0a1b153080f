// SPDX-License-Identifier: MPL-2.0

package logctx

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestFromContext_Default(t *testing.T) {
	t.Parallel()

	logger := FromContext(context.Background())
	if logger == nil {
		t.Fatal("FromContext() returned nil")
	}
	// Must not panic or write anywhere visible.
	logger.Error("dropped")
}

func TestWithLogger_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, true)
	ctx := WithLogger(context.Background(), logger)

	if FromContext(ctx) != logger {
		t.Fatal("FromContext() did not return the attached logger")
	}

	FromContext(ctx).Debug("state changed", "state", "done")
	out := buf.String()
	if !strings.Contains(out, Prefix) || !strings.Contains(out, "state changed") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	var quiet bytes.Buffer
	New(&quiet, false).Debug("hidden")
	New(&quiet, false).Info("hidden too")
	if quiet.Len() != 0 {
		t.Errorf("non-verbose logger wrote %q", quiet.String())
	}

	New(&quiet, false).Warn("shown")
	if !strings.Contains(quiet.String(), "shown") {
		t.Errorf("warn record missing: %q", quiet.String())
	}
}
