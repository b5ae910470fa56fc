// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"runtime"
	"sync"

	"github.com/ajroetker/matbench/matrix"
)

// stripsPerWorker is how many strips each worker gets on average when
// RowsPerStrip is left at zero. More strips than workers lets fast workers
// pick up the rows of slow ones.
const stripsPerWorker = 4

// Parallel multiplies by splitting the output rows into horizontal strips
// and computing strips concurrently.
//
// Every call spawns its workers and waits for all of them before returning,
// so no goroutine outlives Multiply and all writes to C are visible to the
// caller afterwards. Each output row belongs to exactly one strip, so no
// two goroutines write the same element.
type Parallel struct {
	// Workers is the number of goroutines. Zero means runtime.GOMAXPROCS(0).
	// It is capped at the number of strips.
	Workers int

	// RowsPerStrip is the number of rows a worker takes at a time. Zero picks
	// a size that yields about stripsPerWorker strips per worker.
	RowsPerStrip int
}

// Name implements Strategy.
func (Parallel) Name() string { return "parallel" }

// Multiply implements Strategy.
func (p Parallel) Multiply(a, bt, c *matrix.Matrix) {
	m, n, k := checkShapes(a, bt, c)
	ad, bd, cd := a.Data(), bt.Data(), c.Data()

	numWorkers := p.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	rowsPerStrip := p.RowsPerStrip
	if rowsPerStrip <= 0 {
		rowsPerStrip = max(1, m/(numWorkers*stripsPerWorker))
	}
	numStrips := (m + rowsPerStrip - 1) / rowsPerStrip
	numWorkers = min(numWorkers, numStrips)

	// Work queue of row strips
	work := make(chan int, numStrips)
	for strip := range numStrips {
		work <- strip
	}
	close(work)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for strip := range work {
				rowStart := strip * rowsPerStrip
				rowEnd := min(rowStart+rowsPerStrip, m)
				multiplyRows(ad, bd, cd, rowStart, rowEnd, n, k)
			}
		})
	}
	wg.Wait()
}
