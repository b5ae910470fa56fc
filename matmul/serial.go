// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import "github.com/ajroetker/matbench/matrix"

// Serial multiplies on the calling goroutine with a plain triple loop.
// Its output is the reference every other strategy is verified against.
type Serial struct{}

// Name implements Strategy.
func (Serial) Name() string { return "serial" }

// Multiply implements Strategy.
func (Serial) Multiply(a, bt, c *matrix.Matrix) {
	m, n, k := checkShapes(a, bt, c)
	multiplyRows(a.Data(), bt.Data(), c.Data(), 0, m, n, k)
}
