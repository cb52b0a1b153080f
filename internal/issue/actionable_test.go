// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load configuration"},
			want: "failed to load configuration",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "load configuration", Resource: "config.cue"},
			want: "failed to load configuration: config.cue",
		},
		{
			name: "with resource and cause",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "config.cue",
				Cause:     errors.New("permission denied"),
			},
			want: "failed to load configuration: config.cue: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("root cause")
	err := NewErrorContext().
		WithOperation("validate configuration").
		WithSuggestion("Check limits").
		WithSuggestion("Check policy").
		Wrap(fmt.Errorf("invalid config: %w", root)).
		Build()

	plain := err.Format(false)
	if !strings.Contains(plain, "  • Check limits\n  • Check policy") {
		t.Errorf("suggestions missing from %q", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("non-verbose output must not contain the chain: %q", plain)
	}

	verbose := err.Format(true)
	for _, want := range []string{"Error chain:", "1. invalid config: root cause", "2. root cause"} {
		if !strings.Contains(verbose, want) {
			t.Errorf("verbose output missing %q:\n%s", want, verbose)
		}
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}

	cause := errors.New("boom")
	err := NewErrorContext().WithOperation("read input").Wrap(cause).BuildError()
	if !errors.Is(err, cause) {
		t.Errorf("BuildError() should wrap cause, got %v", err)
	}
	var ae *ActionableError
	if !errors.As(err, &ae) || ae.HasSuggestions() {
		t.Errorf("unexpected ActionableError %+v", ae)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "x") != nil {
		t.Error("WrapWithOperation(nil) should be nil")
	}
	cause := errors.New("eof")
	err := WrapWithOperation(cause, "read answer")
	if err.Error() != "failed to read answer: eof" || !errors.Is(err, cause) {
		t.Errorf("unexpected error %v", err)
	}
}
