// SPDX-License-Identifier: MPL-2.0

package estimator

import (
	"context"
	"fmt"

	"github.com/packageexpress/shipcalc/internal/logctx"
	"github.com/packageexpress/shipcalc/internal/shipment"

	"github.com/google/uuid"
)

type (
	// Console is the dialogue surface a Session talks through.
	// *tui.Console is the production implementation.
	Console interface {
		Ask(ctx context.Context, question string) (string, error)
		Say(msg string)
		Warn(msg string)
		Success(msg string)
	}

	// Options configure the rules a Session enforces.
	Options struct {
		Limits   shipment.Limits
		Pricing  shipment.Pricing
		OnReject RejectPolicy
	}

	// Session is one interactive estimate. It is not safe for concurrent use.
	Session struct {
		id      uuid.UUID
		record  *shipment.Record
		console Console
		opts    Options
	}
)

// DefaultOptions returns the standard limits and pricing with RejectRetry.
func DefaultOptions() Options {
	return Options{
		Limits:   shipment.DefaultLimits(),
		Pricing:  shipment.DefaultPricing(),
		OnReject: RejectRetry,
	}
}

// NewSession returns a session waiting for the package weight.
// An empty OnReject falls back to RejectRetry.
func NewSession(console Console, opts Options) *Session {
	if opts.OnReject == "" {
		opts.OnReject = RejectRetry
	}
	return &Session{
		id:      uuid.New(),
		record:  shipment.NewRecord(),
		console: console,
		opts:    opts,
	}
}

// ID identifies the session in log records.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Record returns a snapshot of the shipment record.
func (s *Session) Record() shipment.Record {
	return *s.record
}

// Run dispatches on the record's state until it reaches shipment.Done.
// It returns nil once the estimate was printed.
func (s *Session) Run(ctx context.Context) error {
	if err := s.opts.OnReject.Validate(); err != nil {
		return err
	}

	logger := logctx.FromContext(ctx).With("session", s.id.String())
	ctx = logctx.WithLogger(ctx, logger)
	logger.Debug("session started", "state", s.record.State)

	for !s.record.State.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("estimate interrupted at %s: %w", s.record.State, err)
		}
		if err := s.Step(ctx); err != nil {
			return err
		}
	}

	logger.Debug("session finished", "cost", s.record.Cost)
	return nil
}

// Step runs the active stage once. A stage that fails validation leaves the
// state untouched and returns nil, so the next Step runs it again from its
// first prompt.
func (s *Session) Step(ctx context.Context) error {
	switch s.record.State {
	case shipment.WeightPending:
		return s.weightStage(ctx)
	case shipment.DimensionsPending:
		return s.dimensionStage(ctx)
	case shipment.ReadyToCalculate:
		return s.calculationStage(ctx)
	case shipment.Done:
		return nil
	default:
		return s.record.State.Validate()
	}
}

func (s *Session) weightStage(ctx context.Context) error {
	raw, err := s.console.Ask(ctx, PromptFor(shipment.FieldWeight))
	if err != nil {
		return err
	}

	weight, err := shipment.ParseMeasure(shipment.FieldWeight, raw)
	if err != nil {
		return s.invalid(ctx, err)
	}

	accepted, err := s.opts.Limits.AcceptWeight(weight)
	if err != nil {
		return s.reject(ctx, err)
	}

	return s.advance(ctx, accepted)
}

func (s *Session) dimensionStage(ctx context.Context) error {
	values := make([]float64, 0, 3)
	for _, field := range shipment.DimensionFields() {
		raw, err := s.console.Ask(ctx, PromptFor(field))
		if err != nil {
			return err
		}

		v, err := shipment.ParseMeasure(field, raw)
		if err != nil {
			// The remaining prompts are skipped and nothing is stored.
			return s.invalid(ctx, err)
		}
		values = append(values, v)
	}

	accepted, err := s.opts.Limits.AcceptDimensions(shipment.Dimensions{
		Width:  values[0],
		Height: values[1],
		Length: values[2],
	})
	if err != nil {
		return s.reject(ctx, err)
	}

	return s.advance(ctx, accepted)
}

func (s *Session) calculationStage(ctx context.Context) error {
	calculated := s.opts.Pricing.Calculate(s.record)

	s.console.Success(TotalMessage(s.opts.Pricing.Format(calculated.Cost)))
	s.console.Say(MsgThanks)

	return s.advance(ctx, calculated)
}

// invalid reports a parse error. Parse errors are always retried.
func (s *Session) invalid(ctx context.Context, err error) error {
	msg, _ := MessageFor(err)
	s.console.Warn(msg)
	logctx.FromContext(ctx).Debug("input rejected", "state", s.record.State, "err", err)
	return nil
}

// reject reports a business-rule rejection and applies the reject policy.
func (s *Session) reject(ctx context.Context, err error) error {
	msg, _ := MessageFor(err)
	s.console.Warn(msg)
	logctx.FromContext(ctx).Debug("package rejected", "state", s.record.State, "policy", s.opts.OnReject, "err", err)

	if s.opts.OnReject == RejectAbort {
		return &RejectedError{Reason: err}
	}
	return nil
}

func (s *Session) advance(ctx context.Context, in shipment.Input) error {
	from := s.record.State
	if err := s.record.Apply(in); err != nil {
		return err
	}
	logctx.FromContext(ctx).Debug("stage completed", "from", from, "to", s.record.State)
	return nil
}
