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

// Command matbench times serial and parallel dense matrix multiplication,
// verifies that both produce identical results and prints a timing table.
//
// Usage:
//
//	matbench --a a.txt --a-rows 512 --a-cols 256 --b b.txt --b-rows 256 --b-cols 384
//
// Matrix files hold rows*cols whitespace-separated values in row-major
// order. Any matrix file or dimension not given as a flag is asked for on
// standard input. The serial result is written to matrixC.txt (see --out).
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("matbench failed")
		os.Exit(1)
	}
}
