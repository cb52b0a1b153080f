// SPDX-License-Identifier: MPL-2.0

package estimator

import "github.com/packageexpress/shipcalc/internal/shipment"

// QuoteRequest holds unparsed measures for a non-interactive estimate.
type QuoteRequest struct {
	Weight string
	Width  string
	Height string
	Length string
}

// Quote runs the same pipeline as a Session without prompting. The first
// parse or limit error is returned as is; the reject policy does not apply
// because there is nobody to ask again.
func Quote(req QuoteRequest, opts Options) (shipment.Record, error) {
	r := shipment.NewRecord()

	weight, err := shipment.ParseMeasure(shipment.FieldWeight, req.Weight)
	if err != nil {
		return *r, err
	}
	acceptedWeight, err := opts.Limits.AcceptWeight(weight)
	if err != nil {
		return *r, err
	}
	if err := r.Apply(acceptedWeight); err != nil {
		return *r, err
	}

	raw := map[shipment.Field]string{
		shipment.FieldWidth:  req.Width,
		shipment.FieldHeight: req.Height,
		shipment.FieldLength: req.Length,
	}
	parsed := make(map[shipment.Field]float64, len(raw))
	for _, field := range shipment.DimensionFields() {
		v, err := shipment.ParseMeasure(field, raw[field])
		if err != nil {
			return *r, err
		}
		parsed[field] = v
	}
	acceptedDims, err := opts.Limits.AcceptDimensions(shipment.Dimensions{
		Width:  parsed[shipment.FieldWidth],
		Height: parsed[shipment.FieldHeight],
		Length: parsed[shipment.FieldLength],
	})
	if err != nil {
		return *r, err
	}
	if err := r.Apply(acceptedDims); err != nil {
		return *r, err
	}

	if err := r.Apply(opts.Pricing.Calculate(r)); err != nil {
		return *r, err
	}
	return *r, nil
}
