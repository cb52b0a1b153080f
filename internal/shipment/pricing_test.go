// SPDX-License-Identifier: MPL-2.0

package shipment

import "testing"

func TestPricingCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		weight float64
		dims   Dimensions
		want   string
	}{
		{"reference example", 2, Dimensions{3, 4, 5}, "$1.20"},
		{"small cube", 10, Dimensions{2, 2, 2}, "$0.80"},
		{"unit package", 1, Dimensions{1, 1, 1}, "$0.01"},
		{"zero weight", 0, Dimensions{10, 10, 10}, "$0.00"},
		{"negative zero normalized", 0, Dimensions{-1, 2, 3}, "$0.00"},
		{"rounds to two decimals", 1, Dimensions{1, 1, 1.337}, "$0.01"},
		{"large", 50, Dimensions{16, 17, 17}, "$2312.00"},
	}

	p := DefaultPricing()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.Format(p.Cost(tt.weight, tt.dims)); got != tt.want {
				t.Errorf("Format(Cost(%v, %+v)) = %q, want %q", tt.weight, tt.dims, got, tt.want)
			}
		})
	}
}

func TestPricingCustomDivisorAndCurrency(t *testing.T) {
	t.Parallel()

	p := Pricing{RateDivisor: 50, Currency: "EUR "}
	if got := p.Format(p.Cost(2, Dimensions{3, 4, 5})); got != "EUR 2.40" {
		t.Errorf("got %q, want %q", got, "EUR 2.40")
	}
}
