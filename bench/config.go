// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import "fmt"

const (
	// DefaultTrials is the number of timed trials per strategy.
	DefaultTrials = 5
	// DefaultRepeats is the number of back-to-back multiplications per trial.
	DefaultRepeats = 15
)

// Config controls how each strategy is timed.
type Config struct {
	// Trials is the number of metrics recorded per strategy.
	Trials int
	// Repeats is the number of multiplications timed together in one trial.
	Repeats int
	// Clock selects wall or process CPU time.
	Clock ClockKind
}

// DefaultConfig returns 5 trials of 15 multiplications on the wall clock.
func DefaultConfig() Config {
	return Config{
		Trials:  DefaultTrials,
		Repeats: DefaultRepeats,
		Clock:   WallClock,
	}
}

// Validate reports whether c can drive a Runner.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrConfig, c.Trials)
	}
	if c.Repeats < 1 {
		return fmt.Errorf("%w: repeats must be >= 1, got %d", ErrConfig, c.Repeats)
	}
	if _, err := c.Clock.New(); err != nil {
		return err
	}
	return nil
}
