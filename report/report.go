// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package report renders benchmark comparisons as a text table.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/matbench/bench"
	"github.com/ajroetker/matbench/internal/cpuinfo"
)

// ErrEmpty is returned when a comparison has no strategies or no trials.
var ErrEmpty = errors.New("report: nothing to report")

// Option configures Write.
type Option func(*options)

type options struct {
	host *cpuinfo.Info
	lang language.Tag
}

// WithHost prints a host description above the table.
func WithHost(info cpuinfo.Info) Option {
	return func(o *options) { o.host = &info }
}

// WithLanguage sets the locale for number formatting and titles.
// The default is English.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) { o.lang = tag }
}

// Mean returns the arithmetic mean of the trial times in milliseconds.
// It returns 0 for an empty sequence.
func Mean(metrics []bench.Metric) float64 {
	if len(metrics) == 0 {
		return 0
	}
	return lo.SumBy(metrics, bench.Metric.Milliseconds) / float64(len(metrics))
}

// Ratio returns mean(candidate) / mean(reference). Values below 1 mean the
// candidate was faster. When the reference mean is zero, Ratio returns 1 if
// the candidate mean is zero too and +Inf otherwise.
func Ratio(candidate, reference []bench.Metric) float64 {
	c, r := Mean(candidate), Mean(reference)
	if r == 0 {
		if c == 0 {
			return 1
		}
		return math.Inf(1)
	}
	return c / r
}

// Write renders cmp: one row per trial with each strategy's time in
// milliseconds, the mean of each column, and for every strategy after the
// first its mean relative to the first.
func Write(w io.Writer, cmp *bench.Comparison, opts ...Option) error {
	o := options{lang: language.English}
	for _, opt := range opts {
		opt(&o)
	}
	if cmp == nil || len(cmp.Metrics) == 0 || len(cmp.Metrics[0]) == 0 {
		return ErrEmpty
	}
	trials := len(cmp.Metrics[0])
	for i, metrics := range cmp.Metrics {
		if len(metrics) != trials {
			return fmt.Errorf("report: %s has %d trials, %s has %d",
				cmp.Strategies[i], len(metrics), cmp.Strategies[0], trials)
		}
	}

	p := message.NewPrinter(o.lang)
	title := cases.Title(o.lang)
	num := func(v float64) string { return p.Sprintf("%.6f", v) }

	if o.host != nil {
		if _, err := fmt.Fprintf(w, "Host: %s\n\n", o.host.Summary()); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	row := func(label string, cells []string) {
		fmt.Fprintf(tw, "%s\t|%s\t\n", label, strings.Join(cells, "\t|"))
	}

	row("Run#", lo.Map(cmp.Strategies, func(name string, _ int) string {
		return title.String(name)
	}))
	for t := range trials {
		row(fmt.Sprint(t+1), lo.Map(cmp.Metrics, func(metrics []bench.Metric, _ int) string {
			return num(metrics[t].Milliseconds())
		}))
	}
	row("average", lo.Map(cmp.Metrics, func(metrics []bench.Metric, _ int) string {
		return num(Mean(metrics))
	}))
	if len(cmp.Metrics) > 1 {
		ratios := lo.Map(cmp.Metrics, func(metrics []bench.Metric, i int) string {
			if i == 0 {
				return ""
			}
			return num(Ratio(metrics, cmp.Metrics[0]))
		})
		row("vs "+cmp.Strategies[0], ratios)
	}
	return tw.Flush()
}
