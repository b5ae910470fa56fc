// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build unix

package bench

import (
	"time"

	"golang.org/x/sys/unix"
)

// processCPUTime returns user plus system time consumed by all threads of
// the process.
func processCPUTime() (time.Duration, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano()), true
}
