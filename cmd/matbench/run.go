// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/matbench/bench"
	"github.com/ajroetker/matbench/internal/cpuinfo"
	"github.com/ajroetker/matbench/matmul"
	"github.com/ajroetker/matbench/matrix"
	"github.com/ajroetker/matbench/report"
)

func run(in io.Reader, out io.Writer, logger zerolog.Logger, opts options) error {
	cfg := bench.Config{
		Trials:  opts.trials,
		Repeats: opts.repeats,
		Clock:   bench.ClockKind(opts.clock),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p := newPrompter(in, out)
	if err := p.complete(&opts.a); err != nil {
		return err
	}
	if err := p.complete(&opts.b); err != nil {
		return err
	}

	a, b, err := loadInputs(opts.a, opts.b)
	if err != nil {
		return err
	}
	logger.Info().
		Str("a", fmt.Sprintf("%dx%d", a.Rows(), a.Columns())).
		Str("b", fmt.Sprintf("%dx%d", b.Rows(), b.Columns())).
		Int("trials", cfg.Trials).
		Int("repeats", cfg.Repeats).
		Str("clock", string(cfg.Clock)).
		Msg("matrices loaded")

	if opts.print {
		fmt.Fprint(out, a)
	}

	cmp, err := bench.Compare(cfg, a, b,
		bench.WithStrategies(matmul.Serial{}, matmul.Parallel{Workers: opts.workers}),
		bench.WithLogger(logger),
		bench.WithReferenceSink(func(c *matrix.Matrix) error {
			if opts.print {
				fmt.Fprint(out, c)
			}
			if opts.out == "" {
				return nil
			}
			if err := matrix.Save(opts.out, c); err != nil {
				return err
			}
			logger.Info().Str("path", opts.out).Msg("serial result written")
			return nil
		}),
	)
	if err != nil {
		return err
	}

	var ropts []report.Option
	if !opts.noHost {
		ropts = append(ropts, report.WithHost(cpuinfo.Detect()))
	}
	return report.Write(out, cmp, ropts...)
}

// loadInputs reads A in row-major order and B in transposed order, in
// parallel.
func loadInputs(srcA, srcB matrixSource) (a, b *matrix.Matrix, err error) {
	var g errgroup.Group
	g.Go(func() error {
		var err error
		a, err = matrix.Load(srcA.path, srcA.name, srcA.rows, srcA.columns, false)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = matrix.Load(srcB.path, srcB.name, srcB.rows, srcB.columns, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
