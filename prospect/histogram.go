// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prospect

import (
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/prospectord/counter"
)

// Histogram - difficulty distribution shared by benchmark workers
//
// the running total is an atomic counter, the mutex covers only the
// single bucket increment
type Histogram struct {
	total counter.Counter

	sync.Mutex
	buckets map[uint32]uint64
}

// NewHistogram - create an empty histogram
func NewHistogram() *Histogram {
	return &Histogram{
		buckets: make(map[uint32]uint64),
	}
}

// Add - record one successful hash of the given difficulty
func (h *Histogram) Add(difficulty uint32) {
	h.total.Increment()
	h.Lock()
	h.buckets[difficulty] += 1
	h.Unlock()
}

// Total - hashes recorded so far
func (h *Histogram) Total() uint64 {
	return h.total.Uint64()
}

// Report - snapshot of a benchmark run over an elapsed interval
type Report struct {
	Buckets          []uint64 // count per difficulty, zero filled up to the maximum seen
	Total            uint64
	Elapsed          time.Duration
	AveragePerSecond uint64
}

// Report - snapshot the distribution
//
// buckets run from difficulty 0 to the maximum observed, unseen
// intermediate difficulties report zero; the average is total divided
// by whole elapsed seconds, zero when no second has passed
func (h *Histogram) Report(elapsed time.Duration) Report {

	h.Lock()
	maximum := uint32(0)
	for difficulty := range h.buckets {
		if difficulty > maximum {
			maximum = difficulty
		}
	}
	buckets := make([]uint64, maximum+1)
	for difficulty, count := range h.buckets {
		buckets[difficulty] = count
	}
	h.Unlock()

	total := h.total.Uint64()

	seconds := uint64(elapsed / time.Second)
	average := uint64(0)
	if seconds > 0 {
		average = total / seconds
	}

	return Report{
		Buckets:          buckets,
		Total:            total,
		Elapsed:          elapsed,
		AveragePerSecond: average,
	}
}

// String - the report line, e.g.:
//
//   55s – Avg Hashes/Sec: 1234 – 0: 3 1: 9 2: 1
func (r Report) String() string {
	s := fmt.Sprintf("%ds – Avg Hashes/Sec: %d –", uint64(r.Elapsed/time.Second), r.AveragePerSecond)
	for difficulty, count := range r.Buckets {
		s += fmt.Sprintf(" %d: %d", difficulty, count)
	}
	return s
}
