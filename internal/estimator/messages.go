// SPDX-License-Identifier: MPL-2.0

package estimator

import (
	"errors"
	"fmt"

	"github.com/packageexpress/shipcalc/internal/shipment"
)

// User-facing text of the estimate dialogue.
const (
	Banner      = "Welcome to Package Express. Please follow the instructions below."
	MsgTooHeavy = "Package too heavy to be shipped via Package Express. Have a good day."
	MsgTooBig   = "Package too big to be shipped via Package Express."
	MsgThanks   = "Thank you!"

	totalFormat = "Your estimated total for shipping this package is: %s"
)

// PromptFor returns the question asked for field.
func PromptFor(field shipment.Field) string {
	return fmt.Sprintf("Please enter the package %s:", field)
}

// InvalidInputMessage returns the message printed when field does not parse.
func InvalidInputMessage(field shipment.Field) string {
	return fmt.Sprintf("Invalid %s input.", field)
}

// TotalMessage returns the estimate line for an already formatted amount.
func TotalMessage(amount string) string {
	return fmt.Sprintf(totalFormat, amount)
}

// MessageFor maps a parse or rejection error to the line shown to the user.
// The second result is false for errors that have no dialogue message.
func MessageFor(err error) (string, bool) {
	var numErr *shipment.InvalidNumberError
	switch {
	case errors.As(err, &numErr):
		return InvalidInputMessage(numErr.Field), true
	case errors.Is(err, shipment.ErrTooHeavy):
		return MsgTooHeavy, true
	case errors.Is(err, shipment.ErrTooBig):
		return MsgTooBig, true
	default:
		return "", false
	}
}
