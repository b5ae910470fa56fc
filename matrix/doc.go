// Copyright 2025 matbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package matrix provides the dense, row-major float64 matrix used by the
// multiplication strategies, together with its text loader and writer.
//
// # Layout
//
// Element (i, j) lives at Data()[i*Columns()+j]. A matrix loaded with
// transposed=true stores logical element (i, j) at Data()[j*Rows()+i]
// instead, so that each logical column is contiguous:
//
//	b, _ := matrix.Load("b.txt", "b", n, p, true) // logical n x p, stored p x n
//	bt := b.Transposed()                        // header p x n over the same data
//	// bt.Data()[j*n+k] == B(k, j)
//
// Multiplying against bt lets every output cell be computed as a dot
// product of two contiguous rows.
//
// # Text format
//
// Read accepts whitespace-separated decimal values in row-major order and
// requires exactly rows*columns of them. Write emits one value per line with
// ten decimal places.
package matrix
