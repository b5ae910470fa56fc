// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates A's columns differ from B's rows.
	ErrShapeMismatch = errors.New("bench: the columns of A must be the same as the rows of B")
	// ErrMismatch indicates a strategy's result differs from the reference.
	ErrMismatch = errors.New("bench: results are not the same")
	// ErrConfig indicates an invalid Config or option.
	ErrConfig = errors.New("bench: invalid configuration")
)

// MismatchError reports the first element where a strategy's result differs
// from the reference. It matches ErrMismatch under errors.Is.
type MismatchError struct {
	Strategy    string
	Row, Column int
	Got, Want   float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %s differs at (%d, %d): got %v, want %v",
		ErrMismatch, e.Strategy, e.Row, e.Column, e.Got, e.Want)
}

func (e *MismatchError) Is(target error) bool { return target == ErrMismatch }
