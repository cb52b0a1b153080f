// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/packageexpress/shipcalc/internal/estimator"
	"github.com/packageexpress/shipcalc/internal/tui"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var errUnsupportedFormat = errors.New("unsupported output format")

type (
	quoteFlags struct {
		req    estimator.QuoteRequest
		format string
	}

	// quoteResult is the JSON form of a quote.
	quoteResult struct {
		Weight    float64 `json:"weight"`
		Width     float64 `json:"width"`
		Height    float64 `json:"height"`
		Length    float64 `json:"length"`
		TotalSize float64 `json:"total_size"`
		Cost      float64 `json:"cost"`
		Total     string  `json:"total"`
	}
)

// newQuoteCommand creates the `shipcalc quote` command.
func newQuoteCommand(app *App) *cobra.Command {
	var flags quoteFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Estimate a shipment from flags without prompting",
		Long: `Estimate a shipment from flags without prompting.

The values go through the same validation as the interactive estimate. An
invalid number or a rejected package is reported once and the command exits
with status 1; there is no retry.`,
		Example: `  shipcalc quote --weight 10 --width 2 --height 2 --length 2
  shipcalc quote --weight 5 --width 2 --height 3 --length 4 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd.Context(), app, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.req.Weight, "weight", "", "package weight")
	f.StringVar(&flags.req.Width, "width", "", "package width")
	f.StringVar(&flags.req.Height, "height", "", "package height")
	f.StringVar(&flags.req.Length, "length", "", "package length")
	f.StringVarP(&flags.format, "format", "o", formatText, "output format: text or json")
	for _, name := range []string{"weight", "width", "height", "length"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runQuote(ctx context.Context, app *App, flags quoteFlags) error {
	if flags.format != formatText && flags.format != formatJSON {
		return fmt.Errorf("%w %q (valid: %s, %s)", errUnsupportedFormat, flags.format, formatText, formatJSON)
	}

	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return app.reportConfigError(ctx, err)
	}

	opts := sessionOptions(cfg)
	rec, err := estimator.Quote(flags.req, opts)
	if err != nil {
		msg, ok := estimator.MessageFor(err)
		if !ok {
			return err
		}
		styles := tui.NewStyles(app.stderr)
		fmt.Fprintln(app.stderr, styles.Warning.Render(msg))
		return &ExitError{Code: 1, Err: err}
	}

	total := opts.Pricing.Format(rec.Cost)
	if flags.format == formatJSON {
		enc := json.NewEncoder(app.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(quoteResult{
			Weight:    rec.Weight,
			Width:     rec.Width,
			Height:    rec.Height,
			Length:    rec.Length,
			TotalSize: rec.Dimensions().Total(),
			Cost:      rec.Cost,
			Total:     total,
		})
	}

	fmt.Fprintln(app.stdout, estimator.TotalMessage(total))
	return nil
}
