// SPDX-License-Identifier: MPL-2.0

package shipment

import (
	"errors"
	"fmt"
)

const (
	// WeightPending waits for an accepted package weight.
	WeightPending State = iota
	// DimensionsPending waits for accepted width, height, and length.
	DimensionsPending
	// ReadyToCalculate has every measure and waits for the computed cost.
	ReadyToCalculate
	// Done is terminal; no input is accepted.
	Done
)

var (
	// ErrUnexpectedInput is returned when an input does not belong to the current state.
	ErrUnexpectedInput = errors.New("unexpected input for state")
	// ErrInvalidState is returned for State values outside the declared set.
	ErrInvalidState = errors.New("invalid shipment state")
)

type (
	// State identifies the active stage of the estimate pipeline.
	State int

	// Record accumulates the measures of one package as the pipeline advances.
	// A field is meaningful only once State has moved past the stage that sets it.
	Record struct {
		Weight float64
		Width  float64
		Height float64
		Length float64
		Cost   float64
		State  State
	}

	// Input is a validated value that moves a Record to its next state.
	// The set of implementations is closed: WeightAccepted, DimensionsAccepted
	// and CostCalculated.
	Input interface {
		input()
	}

	// WeightAccepted carries a weight that passed parsing and the weight limit.
	WeightAccepted struct {
		Weight float64
	}

	// DimensionsAccepted carries dimensions that passed parsing and the size limit.
	DimensionsAccepted struct {
		Dimensions Dimensions
	}

	// CostCalculated carries the final estimate.
	CostCalculated struct {
		Cost float64
	}

	// UnexpectedInputError is returned when Next receives an input that the
	// current state does not accept. It wraps ErrUnexpectedInput.
	UnexpectedInputError struct {
		State State
		Input Input
	}

	// InvalidStateError is returned for an out-of-range State. It wraps ErrInvalidState.
	InvalidStateError struct {
		State State
	}
)

func (WeightAccepted) input()     {}
func (DimensionsAccepted) input() {}
func (CostCalculated) input()     {}

// NewRecord returns an empty record waiting for the package weight.
func NewRecord() *Record {
	return &Record{State: WeightPending}
}

// String returns the state name used in logs and error messages.
func (s State) String() string {
	switch s {
	case WeightPending:
		return "weight-pending"
	case DimensionsPending:
		return "dimensions-pending"
	case ReadyToCalculate:
		return "ready-to-calculate"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Validate returns an error if the state is not one of the declared values.
func (s State) Validate() error {
	switch s {
	case WeightPending, DimensionsPending, ReadyToCalculate, Done:
		return nil
	default:
		return &InvalidStateError{State: s}
	}
}

// IsTerminal reports whether no further input is accepted.
func (s State) IsTerminal() bool {
	return s == Done
}

// Next is the transition function of the pipeline. It returns the state that
// follows s after in, or an error when s does not accept in. Next never mutates
// anything; Record.Apply pairs it with the field updates.
func Next(s State, in Input) (State, error) {
	switch s {
	case WeightPending:
		if _, ok := in.(WeightAccepted); ok {
			return DimensionsPending, nil
		}
	case DimensionsPending:
		if _, ok := in.(DimensionsAccepted); ok {
			return ReadyToCalculate, nil
		}
	case ReadyToCalculate:
		if _, ok := in.(CostCalculated); ok {
			return Done, nil
		}
	case Done:
	default:
		return s, &InvalidStateError{State: s}
	}
	return s, &UnexpectedInputError{State: s, Input: in}
}

// Apply stores in and advances the record. On error the record is unchanged,
// which is what keeps Weight and the dimensions write-once.
func (r *Record) Apply(in Input) error {
	next, err := Next(r.State, in)
	if err != nil {
		return err
	}

	switch v := in.(type) {
	case WeightAccepted:
		r.Weight = v.Weight
	case DimensionsAccepted:
		r.Width = v.Dimensions.Width
		r.Height = v.Dimensions.Height
		r.Length = v.Dimensions.Length
	case CostCalculated:
		r.Cost = v.Cost
	}
	r.State = next
	return nil
}

// Dimensions returns the stored width, height, and length.
func (r *Record) Dimensions() Dimensions {
	return Dimensions{Width: r.Width, Height: r.Height, Length: r.Length}
}

// Error implements the error interface.
func (e *UnexpectedInputError) Error() string {
	return fmt.Sprintf("%s %s: %T", ErrUnexpectedInput, e.State, e.Input)
}

// Unwrap returns ErrUnexpectedInput for errors.Is compatibility.
func (e *UnexpectedInputError) Unwrap() error { return ErrUnexpectedInput }

// Error implements the error interface.
func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidState, int(e.State))
}

// Unwrap returns ErrInvalidState for errors.Is compatibility.
func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }
