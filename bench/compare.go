// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ajroetker/matbench/matmul"
	"github.com/ajroetker/matbench/matrix"
)

// Comparison is the outcome of a verified benchmark session.
type Comparison struct {
	// Strategies lists strategy names; the first is the reference.
	Strategies []string
	// Metrics holds one metric sequence per strategy, in the same order.
	Metrics [][]Metric
	// Reference is the snapshot of the reference strategy's result.
	Reference *matrix.Matrix
}

// Option configures Compare.
type Option func(*options)

type options struct {
	strategies []matmul.Strategy
	sink       func(*matrix.Matrix) error
	logger     zerolog.Logger
}

// WithStrategies sets the strategies to time. The first one produces the
// reference result; the others are verified against it. The default is
// matmul.Strategies().
func WithStrategies(strategies ...matmul.Strategy) Option {
	return func(o *options) { o.strategies = strategies }
}

// WithReferenceSink registers fn to receive the reference result as soon as
// it is available, before any other strategy runs. An error from fn aborts
// the session.
func WithReferenceSink(fn func(*matrix.Matrix) error) Option {
	return func(o *options) { o.sink = fn }
}

// WithLogger sets the logger for progress messages.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Compare multiplies a by b with every strategy, timing each with cfg, and
// verifies every result against the first strategy's.
//
// b must have been loaded with transposed storage (see matrix.Read). The
// shapes are checked before anything runs. The first failure ends the
// session; no partial Comparison is returned.
func Compare(cfg Config, a, b *matrix.Matrix, opts ...Option) (*Comparison, error) {
	o := options{
		strategies: matmul.Strategies(),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.strategies) == 0 {
		return nil, fmt.Errorf("%w: no strategies", ErrConfig)
	}

	runner, err := NewRunner(cfg, o.logger)
	if err != nil {
		return nil, err
	}
	bt, c, err := Prepare(a, b)
	if err != nil {
		return nil, err
	}
	log := o.logger.With().
		Int("m", a.Rows()).
		Int("k", a.Columns()).
		Int("n", bt.Rows()).
		Logger()

	cmp := &Comparison{
		Strategies: make([]string, 0, len(o.strategies)),
		Metrics:    make([][]Metric, 0, len(o.strategies)),
	}

	ref := o.strategies[0]
	log.Info().Str("strategy", ref.Name()).Msg("running reference")
	cmp.Strategies = append(cmp.Strategies, ref.Name())
	cmp.Metrics = append(cmp.Metrics, runner.Run(ref, a, bt, c))
	cmp.Reference = Snapshot(c)

	if o.sink != nil {
		if err := o.sink(cmp.Reference); err != nil {
			return nil, err
		}
	}

	for _, s := range o.strategies[1:] {
		log.Info().Str("strategy", s.Name()).Msg("running")
		metrics := runner.Run(s, a, bt, c)

		log.Info().Str("strategy", s.Name()).Msg("verifying results")
		if err := Verify(s.Name(), c, cmp.Reference); err != nil {
			return nil, err
		}
		log.Info().Str("strategy", s.Name()).Msg("results verified")

		cmp.Strategies = append(cmp.Strategies, s.Name())
		cmp.Metrics = append(cmp.Metrics, metrics)
	}
	return cmp, nil
}
