// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hasher

import (
	"math/bits"
)

// Difficulty - derive the difficulty score of a digest
//
// the score is the count of leading zero bits, a digest of all zero
// bytes scores the maximum of 256
func Difficulty(digest Digest) uint32 {
	for i, b := range digest {
		if 0 != b {
			return uint32(i*8 + bits.LeadingZeros8(b))
		}
	}
	return DigestLength * 8
}
