// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"time"
)

// ClockKind names a time source for trials.
type ClockKind string

const (
	// WallClock measures elapsed real time on the monotonic clock.
	WallClock ClockKind = "wall"
	// CPUClock measures user+system CPU time of the whole process. Time spent
	// by every worker goroutine is summed, so parallel work does not look
	// faster than serial work under this clock.
	CPUClock ClockKind = "cpu"
)

// Clock returns a non-decreasing reading. Only differences between
// readings are meaningful.
type Clock interface {
	Now() time.Duration
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Duration

// Now implements Clock.
func (f ClockFunc) Now() time.Duration { return f() }

// New returns a Clock of kind k. The empty kind is WallClock.
func (k ClockKind) New() (Clock, error) {
	switch k {
	case WallClock, "":
		origin := time.Now()
		return ClockFunc(func() time.Duration { return time.Since(origin) }), nil
	case CPUClock:
		if _, ok := processCPUTime(); !ok {
			return nil, fmt.Errorf("%w: cpu clock is not supported on this platform", ErrConfig)
		}
		return ClockFunc(func() time.Duration {
			d, _ := processCPUTime()
			return d
		}), nil
	default:
		return nil, fmt.Errorf("%w: unknown clock %q (want %q or %q)", ErrConfig, string(k), WallClock, CPUClock)
	}
}
