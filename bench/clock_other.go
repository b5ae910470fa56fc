// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build !unix

package bench

import "time"

func processCPUTime() (time.Duration, bool) {
	return 0, false
}
