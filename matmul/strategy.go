// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/matbench/matrix"
)

// ErrUnknownStrategy is returned by Lookup for names outside the registry.
var ErrUnknownStrategy = errors.New("matmul: unknown strategy")

// Strategy computes C = A * Bt^T into a caller-allocated C.
//
// Multiply overwrites every element of c. Shapes must satisfy
// a.Columns() == bt.Columns(), c.Rows() == a.Rows() and
// c.Columns() == bt.Rows(); violating them is a programming error and panics.
type Strategy interface {
	Name() string
	Multiply(a, bt, c *matrix.Matrix)
}

// Strategies returns the available strategies, reference first.
func Strategies() []Strategy {
	return []Strategy{Serial{}, Parallel{}}
}

// Names returns the names of Strategies in order.
func Names() []string {
	return lo.Map(Strategies(), func(s Strategy, _ int) string { return s.Name() })
}

// Lookup returns the registered strategy with the given name, ignoring case.
func Lookup(name string) (Strategy, error) {
	s, ok := lo.Find(Strategies(), func(s Strategy) bool {
		return strings.EqualFold(s.Name(), name)
	})
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// checkShapes validates the K-last contract and returns m, n, k.
func checkShapes(a, bt, c *matrix.Matrix) (m, n, k int) {
	m, k = a.Rows(), a.Columns()
	n = bt.Rows()
	if bt.Columns() != k {
		panic(fmt.Sprintf("matmul: Bt has %d columns, A has %d", bt.Columns(), k))
	}
	if c.Rows() != m || c.Columns() != n {
		panic(fmt.Sprintf("matmul: C is %dx%d, want %dx%d", c.Rows(), c.Columns(), m, n))
	}
	return m, n, k
}

// multiplyRows computes rows [rowStart, rowEnd) of c = a * bt^T.
//
// The explicit float64 conversion keeps the compiler from fusing the
// multiply and add, so the rounding sequence is identical for every caller.
func multiplyRows(a, bt, c []float64, rowStart, rowEnd, n, k int) {
	for i := rowStart; i < rowEnd; i++ {
		aRow := a[i*k : (i+1)*k]
		cRow := c[i*n : (i+1)*n]
		for j := range n {
			bRow := bt[j*k : (j+1)*k]
			var sum float64
			for p, av := range aRow {
				sum += float64(av * bRow[p])
			}
			cRow[j] = sum
		}
	}
}
