// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ajroetker/matbench/matmul"
	"github.com/ajroetker/matbench/matrix"
)

// Metric is the time taken by one trial.
type Metric struct {
	TimeTaken time.Duration
}

// Milliseconds returns TimeTaken in fractional milliseconds.
func (m Metric) Milliseconds() float64 {
	return float64(m.TimeTaken) / float64(time.Millisecond)
}

// Runner times a strategy over repeated trials.
//
// A single multiplication may be too short for the clock to resolve, so
// each trial times Repeats back-to-back calls; Trials such measurements
// expose run-to-run variance.
type Runner struct {
	Trials  int
	Repeats int
	Clock   Clock
	Logger  zerolog.Logger
}

// NewRunner builds a Runner from cfg. The logger may be zerolog.Nop().
func NewRunner(cfg Config, logger zerolog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clock, err := cfg.Clock.New()
	if err != nil {
		return nil, err
	}
	return &Runner{
		Trials:  cfg.Trials,
		Repeats: cfg.Repeats,
		Clock:   clock,
		Logger:  logger,
	}, nil
}

// Run returns one Metric per trial. Each call to s.Multiply overwrites c, so
// after Run returns c holds the strategy's result.
//
// Run does not recover from panics raised by s.
func (r *Runner) Run(s matmul.Strategy, a, bt, c *matrix.Matrix) []Metric {
	metrics := make([]Metric, r.Trials)
	for trial := range r.Trials {
		start := r.Clock.Now()
		for range r.Repeats {
			s.Multiply(a, bt, c)
		}
		end := r.Clock.Now()

		metrics[trial].TimeTaken = max(end-start, 0)
		r.Logger.Debug().
			Str("strategy", s.Name()).
			Int("trial", trial+1).
			Int("repeats", r.Repeats).
			Dur("elapsed", metrics[trial].TimeTaken).
			Msg("trial finished")
	}
	return metrics
}
