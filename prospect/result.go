// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prospect

import (
	"github.com/bitmark-inc/prospectord/hasher"
)

// Result - the winning candidate of a search session
//
// a zero value result is the sentinel for "nothing above difficulty
// zero was found"; callers treat difficulty 0 as possibly-no-solution
// rather than as an error
type Result struct {
	Nonce      uint64
	Difficulty uint32
	Digest     hasher.Digest
}

// pick the candidate with the strictly greatest difficulty
//
// ties keep the earliest worker index attaining the maximum; this is
// a deliberate policy, it matches neither lowest nonce nor earliest
// discovery; failed workers contribute no candidate
func selectBest(results []workerResult) Result {

	best := Result{}
	for _, r := range results {
		if r.failed {
			continue
		}
		if r.difficulty > best.Difficulty {
			best = Result{
				Nonce:      r.nonce,
				Difficulty: r.difficulty,
				Digest:     r.digest,
			}
		}
	}
	return best
}
