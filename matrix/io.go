// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Read allocates a rows x columns matrix and fills it with exactly
// rows*columns whitespace-separated values from r, given in row-major order.
//
// With transposed set, logical element (i, j) is stored at data[j*rows+i];
// the returned matrix still reports rows x columns and is meant to be
// reinterpreted with Transposed before multiplication.
func Read(r io.Reader, name string, rows, columns int, transposed bool) (*Matrix, error) {
	m, err := New(name, rows, columns)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for i := range rows {
		for j := range columns {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, fmt.Errorf("matrix: reading %s: %w", name, err)
				}
				return nil, fmt.Errorf("%w: %s has %d values, want %d",
					ErrShortInput, name, i*columns+j, rows*columns)
			}
			v, err := strconv.ParseFloat(sc.Text(), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s value %d (%q): %w",
					ErrMalformedInput, name, i*columns+j, sc.Text(), errors.Unwrap(err))
			}
			if transposed {
				m.data[j*rows+i] = v
			} else {
				m.data[i*columns+j] = v
			}
		}
	}

	if sc.Scan() {
		return nil, fmt.Errorf("%w: %s has more than %d values (next is %q)",
			ErrTrailingInput, name, rows*columns, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix: reading %s: %w", name, err)
	}
	return m, nil
}

// Load opens path and reads a matrix from it. See Read.
func Load(path, name string, rows, columns int, transposed bool) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix: opening %s: %w", name, err)
	}
	defer f.Close()
	return Read(f, name, rows, columns, transposed)
}

// Write emits every element of m in row-major order, one per line, with ten
// decimal places.
func Write(w io.Writer, m *Matrix) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, v := range m.data {
		buf = strconv.AppendFloat(buf[:0], v, 'f', 10, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("matrix: writing %s: %w", m.name, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("matrix: writing %s: %w", m.name, err)
	}
	return nil
}

// Save creates or truncates path and writes m to it. See Write.
func Save(path string, m *Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matrix: creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("matrix: closing %s: %w", path, cerr)
		}
	}()
	return Write(f, m)
}
