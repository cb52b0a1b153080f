// SPDX-License-Identifier: MPL-2.0

package shipment

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// DefaultMaxWeight is the heaviest package Package Express accepts.
	DefaultMaxWeight = 50.0
	// DefaultMaxTotalSize is the largest accepted width + height + length.
	DefaultMaxTotalSize = 50.0
)

var (
	// ErrTooHeavy is the sentinel wrapped by WeightLimitError.
	ErrTooHeavy = errors.New("package too heavy")
	// ErrTooBig is the sentinel wrapped by SizeLimitError.
	ErrTooBig = errors.New("package too big")
)

type (
	// Limits are the business thresholds a package must satisfy.
	// A value equal to the limit is accepted.
	Limits struct {
		MaxWeight    float64
		MaxTotalSize float64
	}

	// Dimensions groups the three package dimensions.
	Dimensions struct {
		Width  float64
		Height float64
		Length float64
	}

	// WeightLimitError is returned when a weight exceeds Limits.MaxWeight.
	// It wraps ErrTooHeavy for errors.Is() compatibility.
	WeightLimitError struct {
		Weight float64
		Max    float64
	}

	// SizeLimitError is returned when the dimension total exceeds Limits.MaxTotalSize.
	// It wraps ErrTooBig for errors.Is() compatibility.
	SizeLimitError struct {
		Total float64
		Max   float64
	}
)

// DefaultLimits returns the standard Package Express thresholds.
func DefaultLimits() Limits {
	return Limits{
		MaxWeight:    DefaultMaxWeight,
		MaxTotalSize: DefaultMaxTotalSize,
	}
}

// Total returns width + height + length.
func (d Dimensions) Total() float64 {
	return d.Width + d.Height + d.Length
}

// CheckWeight returns a *WeightLimitError when weight is over the limit.
func (l Limits) CheckWeight(weight float64) error {
	if weight > l.MaxWeight {
		return &WeightLimitError{Weight: weight, Max: l.MaxWeight}
	}
	return nil
}

// CheckDimensions returns a *SizeLimitError when the dimension total is over the limit.
func (l Limits) CheckDimensions(d Dimensions) error {
	if total := d.Total(); total > l.MaxTotalSize {
		return &SizeLimitError{Total: total, Max: l.MaxTotalSize}
	}
	return nil
}

// AcceptWeight validates weight and wraps it as a pipeline input.
func (l Limits) AcceptWeight(weight float64) (WeightAccepted, error) {
	if err := l.CheckWeight(weight); err != nil {
		return WeightAccepted{}, err
	}
	return WeightAccepted{Weight: weight}, nil
}

// AcceptDimensions validates d and wraps it as a pipeline input.
func (l Limits) AcceptDimensions(d Dimensions) (DimensionsAccepted, error) {
	if err := l.CheckDimensions(d); err != nil {
		return DimensionsAccepted{}, err
	}
	return DimensionsAccepted{Dimensions: d}, nil
}

// Error implements the error interface.
func (e *WeightLimitError) Error() string {
	return fmt.Sprintf("%s: weight %s exceeds %s", ErrTooHeavy, formatMeasure(e.Weight), formatMeasure(e.Max))
}

// Unwrap returns ErrTooHeavy for errors.Is compatibility.
func (e *WeightLimitError) Unwrap() error { return ErrTooHeavy }

// Error implements the error interface.
func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("%s: total size %s exceeds %s", ErrTooBig, formatMeasure(e.Total), formatMeasure(e.Max))
}

// Unwrap returns ErrTooBig for errors.Is compatibility.
func (e *SizeLimitError) Unwrap() error { return ErrTooBig }

func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
