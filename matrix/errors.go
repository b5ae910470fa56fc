// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import "errors"

var (
	// ErrDimensions indicates a non-positive, ragged or overflowing shape.
	ErrDimensions = errors.New("matrix: invalid dimensions")
	// ErrShortInput indicates the source ran out before rows*columns values were read.
	ErrShortInput = errors.New("matrix: the specified dimensions aren't met (input too short)")
	// ErrTrailingInput indicates the source holds more values than rows*columns.
	ErrTrailingInput = errors.New("matrix: the specified dimensions aren't met (trailing input)")
	// ErrMalformedInput indicates a token that is not a decimal number.
	ErrMalformedInput = errors.New("matrix: malformed input")
)
