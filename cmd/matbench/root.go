// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/matbench/bench"
	"github.com/ajroetker/matbench/internal/cpuinfo"
)

// matrixSource locates one input matrix. Zero values are prompted for.
type matrixSource struct {
	name    string
	path    string
	rows    int
	columns int
}

func (s *matrixSource) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.path, s.name, "", fmt.Sprintf("file holding matrix %s", s.name))
	fs.IntVar(&s.rows, s.name+"-rows", 0, fmt.Sprintf("rows of matrix %s", s.name))
	fs.IntVar(&s.columns, s.name+"-cols", 0, fmt.Sprintf("columns of matrix %s", s.name))
}

type options struct {
	a, b     matrixSource
	trials   int
	repeats  int
	clock    string
	workers  int
	out      string
	print    bool
	noHost   bool
	logLevel string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := options{
		a: matrixSource{name: "a"},
		b: matrixSource{name: "b"},
	}
	cfg := bench.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "matbench",
		Short: "Benchmark serial against parallel dense matrix multiplication",
		Long: `matbench loads matrices A and B, multiplies them repeatedly with a serial
and a parallel strategy, checks that both results are bit-identical and
prints the time of every trial together with the averages.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(errOut, opts.logLevel)
			if err != nil {
				return err
			}
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), logger, opts)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	fs := cmd.Flags()
	opts.a.addFlags(fs)
	opts.b.addFlags(fs)
	fs.IntVar(&opts.trials, "trials", cfg.Trials, "timed trials per strategy")
	fs.IntVar(&opts.repeats, "repeats", cfg.Repeats, "multiplications per trial")
	fs.StringVar(&opts.clock, "clock", string(cfg.Clock), `time source: "wall" or "cpu" (process CPU time)`)
	fs.IntVar(&opts.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	fs.StringVar(&opts.out, "out", "matrixC.txt", "file for the serial result (empty to skip)")
	fs.BoolVar(&opts.print, "print", false, "print A and C")
	fs.BoolVar(&opts.noHost, "no-host", false, "omit the host description from the report")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")

	cmd.AddCommand(newCPUInfoCmd())
	return cmd
}

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print the CPU features and parallelism detected on this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cpuinfo.Fprint(cmd.OutOrStdout(), cpuinfo.Detect())
		},
	}
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().
		Logger(), nil
}
