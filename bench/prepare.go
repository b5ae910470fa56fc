// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"

	"github.com/ajroetker/matbench/matrix"
)

// Prepare checks that a and b can be multiplied and allocates the result
// matrix C, a.Rows() x b.Columns(), to be reused by every strategy and
// trial.
//
// b must have been loaded with its data stored transposed. The returned bt
// is b reinterpreted as b.Columns() x b.Rows() over the same storage, the
// operand layout the strategies expect. Nothing is allocated when the
// shapes do not match.
func Prepare(a, b *matrix.Matrix) (bt, c *matrix.Matrix, err error) {
	if a.Columns() != b.Rows() {
		return nil, nil, fmt.Errorf("%w: A is %dx%d, B is %dx%d",
			ErrShapeMismatch, a.Rows(), a.Columns(), b.Rows(), b.Columns())
	}
	c, err = matrix.New("c", a.Rows(), b.Columns())
	if err != nil {
		return nil, nil, err
	}
	return b.Transposed(), c, nil
}
