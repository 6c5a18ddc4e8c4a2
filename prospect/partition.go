// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prospect

import (
	"math"
)

// FirstNonce - the first nonce scanned by the given worker
//
// the nonce domain is divided into strides of ⌊MaxUint64/workers⌋,
// worker i starting at stride×i; workers are not bounded by the next
// start, they scan forward until stopped by the cutoff, so the tail
// above stride×workers is reached only by the last worker running
// long enough
func FirstNonce(workers int, index int) uint64 {
	if workers < 1 {
		workers = 1
	}
	if index < 0 {
		index = 0
	}
	return math.MaxUint64 / uint64(workers) * uint64(index)
}
