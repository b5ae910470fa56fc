// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a dense row-major matrix of float64 values.
//
// The shape is fixed at construction. Matrices are not safe for concurrent
// writes to the same element; the multiplication strategies partition the
// output so that each element has a single writer.
type Matrix struct {
	name    string
	rows    int
	columns int
	data    []float64
}

// New allocates a zeroed rows x columns matrix.
func New(name string, rows, columns int) (*Matrix, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrDimensions, name, rows, columns)
	}
	if rows > math.MaxInt/columns {
		return nil, fmt.Errorf("%w: %s is %dx%d (size overflows)", ErrDimensions, name, rows, columns)
	}
	return &Matrix{
		name:    name,
		rows:    rows,
		columns: columns,
		data:    make([]float64, rows*columns),
	}, nil
}

// FromRows builds a matrix from a slice of equally sized rows.
func FromRows(name string, rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s has no rows", ErrDimensions, name)
	}
	m, err := New(name, len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.columns {
			return nil, fmt.Errorf("%w: %s row %d has %d values, want %d",
				ErrDimensions, name, i, len(row), m.columns)
		}
		copy(m.data[i*m.columns:], row)
	}
	return m, nil
}

// Name returns the diagnostic label.
func (m *Matrix) Name() string { return m.name }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Columns returns the number of columns.
func (m *Matrix) Columns() int { return m.columns }

// Data returns the backing storage. Writes through the returned slice
// modify the matrix.
func (m *Matrix) Data() []float64 { return m.data }

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.columns+j]
}

// Set stores v at element (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.columns+j] = v
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.columns {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d", i, j, m.rows, m.columns))
	}
}

// Clone returns a deep copy. The copy shares nothing with m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		name:    m.name,
		rows:    m.rows,
		columns: m.columns,
		data:    append([]float64(nil), m.data...),
	}
}

// Transposed returns a matrix header with rows and columns swapped that
// shares m's storage. No data moves: it reinterprets a matrix whose data was
// stored column by column (see Read with transposed=true) as its row-major
// transpose.
func (m *Matrix) Transposed() *Matrix {
	return &Matrix{
		name:    m.name,
		rows:    m.columns,
		columns: m.rows,
		data:    m.data,
	}
}

// String renders the matrix one row per line, preceded by a header naming it.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PRINTING MATRIX %s\n", m.name)
	for i := range m.rows {
		row := m.data[i*m.columns : (i+1)*m.columns]
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%f", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
