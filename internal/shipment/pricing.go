// SPDX-License-Identifier: MPL-2.0

package shipment

import "strconv"

const (
	// DefaultRateDivisor scales the volume-weight product down to a price.
	DefaultRateDivisor = 100.0
	// DefaultCurrency is printed in front of every estimate.
	DefaultCurrency = "$"
)

// Pricing turns stored measures into a cost.
type Pricing struct {
	RateDivisor float64
	Currency    string
}

// DefaultPricing returns the standard Package Express rate.
func DefaultPricing() Pricing {
	return Pricing{
		RateDivisor: DefaultRateDivisor,
		Currency:    DefaultCurrency,
	}
}

// Cost returns (width * height * length * weight) / RateDivisor.
func (p Pricing) Cost(weight float64, d Dimensions) float64 {
	cost := (d.Width * d.Height * d.Length * weight) / p.RateDivisor
	if cost == 0 {
		// A negative zero would print as "-0.00".
		return 0
	}
	return cost
}

// Calculate prices a record whose weight and dimensions are stored.
func (p Pricing) Calculate(r *Record) CostCalculated {
	return CostCalculated{Cost: p.Cost(r.Weight, r.Dimensions())}
}

// Format renders cost with the currency prefix and exactly two decimals.
func (p Pricing) Format(cost float64) string {
	return p.Currency + strconv.FormatFloat(cost, 'f', 2, 64)
}
