// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prospect

import (
	"time"

	"github.com/bitmark-inc/prospectord/counter"
	"github.com/bitmark-inc/prospectord/hasher"
)

// one scanning worker
type worker struct {
	hasher     hasher.Hasher
	challenge  hasher.Challenge
	first      uint64
	checkpoint uint64
	policy     cutoff
	best       *counter.HighWater
	histogram  *Histogram                               // benchmark mode only
	status     func(elapsed time.Duration, best uint32) // worker 0 only
}

// candidate of one worker; failed marks a crashed worker whose
// candidate is discarded
type workerResult struct {
	nonce      uint64
	difficulty uint32
	digest     hasher.Digest
	failed     bool
}

// scan nonces until the policy stops at a checkpoint
//
// a panic out of the backend marks this result failed and leaves
// sibling workers untouched
func (w *worker) scan() (result workerResult) {

	defer func() {
		if r := recover(); nil != r {
			result = workerResult{failed: true}
		}
	}()

	scratch, err := w.hasher.NewScratch()
	if nil != err {
		return workerResult{failed: true}
	}

	result.nonce = w.first

	start := time.Now()
	nonce := w.first

	for {
		outcome, ok := w.hasher.Hash(scratch, w.challenge, nonce)

		// a miss is expected, just move on
		if ok {
			if nil != w.histogram {
				w.histogram.Add(outcome.Difficulty)
			}
			if outcome.Difficulty > result.difficulty {
				result.nonce = nonce
				result.difficulty = outcome.Difficulty
				result.digest = outcome.Digest
				w.best.Raise(outcome.Difficulty)
			}
		}

		// the checkpoint test precedes the increment, so a worker
		// whose first nonce is a multiple of the granularity checks
		// on its very first iteration
		if 0 == nonce%w.checkpoint {
			elapsed := time.Since(start)
			best := w.best.Peek()
			if nil != w.status {
				w.status(elapsed, best)
			}
			if w.policy.stop(elapsed, best) {
				break
			}
		}

		nonce += 1
	}

	return result
}
