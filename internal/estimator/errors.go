// SPDX-License-Identifier: MPL-2.0

package estimator

import (
	"errors"
	"fmt"
)

const (
	// RejectRetry asks the rejected stage again. This is the default.
	RejectRetry RejectPolicy = "retry"
	// RejectAbort ends the session on the first business-rule rejection.
	RejectAbort RejectPolicy = "abort"
)

var (
	// ErrRejected is the sentinel wrapped by RejectedError.
	ErrRejected = errors.New("package rejected")
	// ErrInvalidRejectPolicy is returned when a RejectPolicy value is not recognized.
	ErrInvalidRejectPolicy = errors.New("invalid reject policy")
)

type (
	// RejectPolicy decides what happens after a business-rule rejection.
	RejectPolicy string

	// RejectedError ends a session under RejectAbort. It wraps both
	// ErrRejected and the limit error that caused it.
	RejectedError struct {
		Reason error
	}
)

// Validate returns an error if the policy is not recognized.
func (p RejectPolicy) Validate() error {
	switch p {
	case RejectRetry, RejectAbort:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRejectPolicy, string(p))
	}
}

// Error implements the error interface.
func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %v", ErrRejected, e.Reason)
}

// Unwrap exposes ErrRejected and the underlying limit error.
func (e *RejectedError) Unwrap() []error {
	return []error{ErrRejected, e.Reason}
}
