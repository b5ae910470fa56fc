// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package matrix_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/matbench/matrix"
)

func TestNew(t *testing.T) {
	m, err := matrix.New("a", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "a", m.Name())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Columns())
	assert.Len(t, m.Data(), 6)
	for _, v := range m.Data() {
		assert.Zero(t, v)
	}
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		rows, columns int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroColumns", 3, 0},
		{"Negative", -1, 2},
		{"Overflow", math.MaxInt/2 + 1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.New("x", tc.rows, tc.columns)
			require.ErrorIs(t, err, matrix.ErrDimensions)
		})
	}
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows("a", [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 5, 6}, m.Data()); diff != "" {
		t.Errorf("FromRows data mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6.0, m.At(1, 2))

	_, err = matrix.FromRows("ragged", [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensions)
	_, err = matrix.FromRows("empty", nil)
	require.ErrorIs(t, err, matrix.ErrDimensions)
}

func TestSetAt(t *testing.T) {
	m, err := matrix.New("a", 2, 2)
	require.NoError(t, err)
	m.Set(1, 0, 7.5)
	assert.Equal(t, 7.5, m.At(1, 0))
	assert.Equal(t, 7.5, m.Data()[2])
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })
}

// TestClone verifies that a clone is unaffected by later writes to the source.
func TestClone(t *testing.T) {
	m, err := matrix.FromRows("c", [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	snap := m.Clone()
	m.Set(0, 0, 100)
	m.Data()[3] = -1

	if diff := cmp.Diff([]float64{1, 2, 3, 4}, snap.Data()); diff != "" {
		t.Errorf("clone changed after source mutation (-want +got):\n%s", diff)
	}
	assert.Equal(t, m.Rows(), snap.Rows())
	assert.Equal(t, m.Columns(), snap.Columns())
}

func TestTransposed(t *testing.T) {
	m, err := matrix.New("b", 2, 3)
	require.NoError(t, err)

	bt := m.Transposed()
	assert.Equal(t, 3, bt.Rows())
	assert.Equal(t, 2, bt.Columns())
	assert.Equal(t, 2, m.Rows(), "source header must not change")

	bt.Data()[0] = 42
	assert.Equal(t, 42.0, m.Data()[0], "Transposed shares storage")
}

func TestString(t *testing.T) {
	m, err := matrix.FromRows("a", [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	want := "PRINTING MATRIX a\n1.000000 2.000000\n3.000000 4.000000\n"
	assert.Equal(t, want, m.String())
}
