// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/packageexpress/shipcalc/internal/shipment"
)

const (
	// RejectRetry asks the rejected stage again.
	// Defined locally to avoid coupling config to internal/estimator;
	// the CLI casts to estimator.RejectPolicy at the boundary.
	RejectRetry RejectPolicy = "retry"
	// RejectAbort ends the session on the first rejection.
	RejectAbort RejectPolicy = "abort"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidRejectPolicy is returned when a RejectPolicy value is not recognized.
	ErrInvalidRejectPolicy = errors.New("invalid reject policy")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLimit is the sentinel wrapped by InvalidLimitError.
	ErrInvalidLimit = errors.New("invalid limit")
	// ErrInvalidConfig is the sentinel wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrConfigSyntax is wrapped by every CUE parse or schema error.
	ErrConfigSyntax = errors.New("invalid config file")
)

type (
	// RejectPolicy selects what happens after a business-rule rejection.
	RejectPolicy string

	// InvalidRejectPolicyError is returned when a RejectPolicy value is not recognized.
	// It wraps ErrInvalidRejectPolicy for errors.Is() compatibility.
	InvalidRejectPolicyError struct {
		Value RejectPolicy
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidLimitError is returned when a numeric setting is not a finite
	// positive number. It wraps ErrInvalidLimit for errors.Is() compatibility.
	InvalidLimitError struct {
		Key   string
		Value float64
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sections.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the complete shipcalc configuration.
	Config struct {
		// Limits are the business thresholds.
		Limits LimitsConfig `json:"limits" mapstructure:"limits" toml:"limits"`
		// Pricing controls how a cost is computed and printed.
		Pricing PricingConfig `json:"pricing" mapstructure:"pricing" toml:"pricing"`
		// Session controls the interactive dialogue.
		Session SessionConfig `json:"session" mapstructure:"session" toml:"session"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// LimitsConfig holds the package thresholds.
	LimitsConfig struct {
		MaxWeight    float64 `json:"max_weight" mapstructure:"max_weight" toml:"max_weight"`
		MaxTotalSize float64 `json:"max_total_size" mapstructure:"max_total_size" toml:"max_total_size"`
	}

	// PricingConfig holds the rate divisor and currency prefix.
	PricingConfig struct {
		RateDivisor float64 `json:"rate_divisor" mapstructure:"rate_divisor" toml:"rate_divisor"`
		Currency    string  `json:"currency" mapstructure:"currency" toml:"currency"`
	}

	// SessionConfig configures the interactive estimate.
	SessionConfig struct {
		// OnReject is "retry" (ask again) or "abort" (stop).
		OnReject RejectPolicy `json:"on_reject" mapstructure:"on_reject" toml:"on_reject"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables debug logging and full error chains
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxWeight:    shipment.DefaultMaxWeight,
			MaxTotalSize: shipment.DefaultMaxTotalSize,
		},
		Pricing: PricingConfig{
			RateDivisor: shipment.DefaultRateDivisor,
			Currency:    shipment.DefaultCurrency,
		},
		Session: SessionConfig{
			OnReject: RejectRetry,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// Validate returns an error if the policy is not recognized.
func (p RejectPolicy) Validate() error {
	switch p {
	case RejectRetry, RejectAbort:
		return nil
	default:
		return &InvalidRejectPolicyError{Value: p}
	}
}

// String returns the policy name.
func (p RejectPolicy) String() string { return string(p) }

// Error implements the error interface.
func (e *InvalidRejectPolicyError) Error() string {
	return fmt.Sprintf("invalid reject policy %q (valid: retry, abort)", e.Value)
}

// Unwrap returns ErrInvalidRejectPolicy for errors.Is() compatibility.
func (e *InvalidRejectPolicyError) Unwrap() error { return ErrInvalidRejectPolicy }

// Validate returns an error if the scheme is not recognized.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// String returns the scheme name.
func (c ColorScheme) String() string { return string(c) }

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidLimitError) Error() string {
	return fmt.Sprintf("%s must be a positive number, got %v", e.Key, e.Value)
}

// Unwrap returns ErrInvalidLimit for errors.Is() compatibility.
func (e *InvalidLimitError) Unwrap() error { return ErrInvalidLimit }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is()
// matches both the config sentinel and each field sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Validate checks every field and returns an *InvalidConfigError listing all
// problems, or nil.
func (c *Config) Validate() error {
	var errs []error

	positive := func(key string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, &InvalidLimitError{Key: key, Value: v})
		}
	}
	positive("limits.max_weight", c.Limits.MaxWeight)
	positive("limits.max_total_size", c.Limits.MaxTotalSize)
	positive("pricing.rate_divisor", c.Pricing.RateDivisor)

	if err := c.Session.OnReject.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// ShipmentLimits converts the limits section to the domain type.
func (c *Config) ShipmentLimits() shipment.Limits {
	return shipment.Limits{
		MaxWeight:    c.Limits.MaxWeight,
		MaxTotalSize: c.Limits.MaxTotalSize,
	}
}

// ShipmentPricing converts the pricing section to the domain type.
func (c *Config) ShipmentPricing() shipment.Pricing {
	return shipment.Pricing{
		RateDivisor: c.Pricing.RateDivisor,
		Currency:    c.Pricing.Currency,
	}
}
