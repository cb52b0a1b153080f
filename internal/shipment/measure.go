// SPDX-License-Identifier: MPL-2.0

package shipment

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// FieldWeight is the package weight.
	FieldWeight Field = "weight"
	// FieldWidth is the package width.
	FieldWidth Field = "width"
	// FieldHeight is the package height.
	FieldHeight Field = "height"
	// FieldLength is the package length.
	FieldLength Field = "length"
)

// ErrInvalidNumber is the sentinel wrapped by InvalidNumberError.
var ErrInvalidNumber = errors.New("invalid number")

type (
	// Field names one measure of a package.
	Field string

	// InvalidNumberError is returned when a measure is not a finite decimal number.
	// It wraps ErrInvalidNumber for errors.Is() compatibility.
	InvalidNumberError struct {
		Field Field
		Input string
	}
)

// DimensionFields lists the dimension measures in prompt order.
func DimensionFields() []Field {
	return []Field{FieldWidth, FieldHeight, FieldLength}
}

// String returns the field name.
func (f Field) String() string { return string(f) }

// ParseMeasure parses one line of user input as a decimal measure. Surrounding
// whitespace is ignored. Hexadecimal notation, NaN and infinities are rejected.
func ParseMeasure(field Field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if isHex(s) {
		return 0, &InvalidNumberError{Field: field, Input: raw}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidNumberError{Field: field, Input: raw}
	}
	return v, nil
}

// isHex reports whether s starts with a 0x or 0X prefix after an optional sign.
func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// Error implements the error interface.
func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid %s input %q", e.Field, e.Input)
}

// Unwrap returns ErrInvalidNumber for errors.Is compatibility.
func (e *InvalidNumberError) Unwrap() error { return ErrInvalidNumber }
