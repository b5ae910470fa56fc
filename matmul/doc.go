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

// Package matmul provides interchangeable dense matrix multiplication
// strategies behind a common Strategy interface.
//
// All strategies use the K-last layout: both operands have the reduction
// dimension as their last (contiguous) dimension.
//
//   - A is M x K (row-major)
//   - Bt is N x K (row-major, i.e. B stored transposed)
//   - C is M x N (row-major)
//
// Each output element is C[i,j] = dot(A[i,:], Bt[j,:]), accumulated from
// zero with k ascending.
//
// # Strategies
//
//   - Serial: single goroutine triple loop. This is the reference result.
//   - Parallel: fork-join over output rows. Each call starts a fixed set of
//     goroutines, each draining row strips from a shared queue, and joins
//     them before returning.
//
// Both strategies run the same row kernel, so every element is produced by
// the same sequence of floating-point operations and the outputs are
// bit-identical regardless of how rows are scheduled.
//
// # Example Usage
//
//	a, _ := matrix.FromRows("a", [][]float64{{1, 2}, {3, 4}})
//	bt, _ := matrix.FromRows("b", [][]float64{{5, 7}, {6, 8}}) // B transposed
//	c, _ := matrix.New("c", 2, 2)
//	matmul.Parallel{}.Multiply(a, bt, c) // c = [[19, 22], [43, 50]]
package matmul
