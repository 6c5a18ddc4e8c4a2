// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// HighWater - type to track the maximum of a 32 bit unsigned value
// shared by any number of goroutines
//
// the value only ever moves upwards, updates are lock-free
type HighWater uint32

// Raise - set the value to candidate if it is strictly greater than
// the current value, returns true if the value was changed
//
// concurrent raises never lose an update: whatever the interleaving
// the final value is the maximum of all candidates
func (hw *HighWater) Raise(candidate uint32) bool {
	for {
		current := atomic.LoadUint32((*uint32)(hw))
		if candidate <= current {
			return false
		}
		if atomic.CompareAndSwapUint32((*uint32)(hw), current, candidate) {
			return true
		}
	}
}

// Peek - returns current value
func (hw *HighWater) Peek() uint32 {
	return atomic.LoadUint32((*uint32)(hw))
}
