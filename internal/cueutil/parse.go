// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrFileTooLarge is returned when a document exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrUnknownDefinition is returned when the schema lacks the requested definition.
	ErrUnknownDefinition = errors.New("schema definition not found")
)

// Result holds a decoded document together with the unified CUE value.
type Result[T any] struct {
	Value   T
	Unified cue.Value
}

// ParseAndDecode compiles data, unifies it with the definition (e.g. "#Config")
// from schema, checks that every value is concrete and decodes the result
// into T.
func ParseAndDecode[T any](schema, data []byte, definition string, opts ...Option) (*Result[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	name := o.filename
	if name == "" {
		name = "<input>"
	}

	if size := int64(len(data)); size > o.maxFileSize {
		return nil, fmt.Errorf("%w: %s: size %d exceeds maximum of %d bytes", ErrFileTooLarge, name, size, o.maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	def := schemaValue.LookupPath(cue.ParsePath(definition))
	if !def.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDefinition, definition)
	}

	var buildOpts []cue.BuildOption
	if o.filename != "" {
		buildOpts = append(buildOpts, cue.Filename(o.filename))
	}
	userValue := ctx.CompileBytes(data, buildOpts...)
	if err := userValue.Err(); err != nil {
		return nil, FormatError(err, name)
	}

	unified := def.Unify(userValue)

	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, FormatError(err, name)
	}

	var value T
	if err := unified.Decode(&value); err != nil {
		return nil, FormatError(err, name)
	}

	return &Result[T]{Value: value, Unified: unified}, nil
}

// ParseAndDecodeString is ParseAndDecode for a schema held in a string, such
// as an embedded .cue file.
func ParseAndDecodeString[T any](schema string, data []byte, definition string, opts ...Option) (*Result[T], error) {
	return ParseAndDecode[T]([]byte(schema), data, definition, opts...)
}

// FormatError flattens a CUE error list into one error whose lines read
// "<path>: <message>", prefixed by name:
//
//	config.cue: limits.max_weight: invalid value -1 (out of bound >0)
func FormatError(err error, name string) error {
	if err == nil {
		return nil
	}

	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", name, err)
	}

	lines := make([]string, 0, len(list))
	for _, e := range list {
		path := strings.Join(e.Path(), ".")
		msg := e.Error()
		// CUE sometimes includes the path in the message itself
		if path != "" && strings.HasPrefix(msg, path) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		}
		if path != "" {
			lines = append(lines, path+": "+msg)
		} else {
			lines = append(lines, msg)
		}
	}

	return fmt.Errorf("%s: %s", name, strings.Join(lines, "\n"))
}
