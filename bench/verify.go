// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"math"

	"github.com/ajroetker/matbench/matrix"
)

// Snapshot returns an independent copy of c to serve as the reference for
// Verify. Later writes to c do not affect it.
func Snapshot(c *matrix.Matrix) *matrix.Matrix {
	return c.Clone()
}

// Verify compares candidate with reference element by element in row-major
// order and returns a *MismatchError for the first element whose bits differ.
//
// Every strategy computes each element with the same operations in the same
// order, so any difference at all is a bug in the strategy.
func Verify(strategy string, candidate, reference *matrix.Matrix) error {
	if candidate.Rows() != reference.Rows() || candidate.Columns() != reference.Columns() {
		return fmt.Errorf("%w: %s produced %dx%d, reference is %dx%d", ErrMismatch, strategy,
			candidate.Rows(), candidate.Columns(), reference.Rows(), reference.Columns())
	}

	got, want := candidate.Data(), reference.Data()
	columns := candidate.Columns()
	for i := range candidate.Rows() {
		for j := range columns {
			idx := i*columns + j
			if math.Float64bits(got[idx]) != math.Float64bits(want[idx]) {
				return &MismatchError{
					Strategy: strategy,
					Row:      i,
					Column:   j,
					Got:      got[idx],
					Want:     want[idx],
				}
			}
		}
	}
	return nil
}
