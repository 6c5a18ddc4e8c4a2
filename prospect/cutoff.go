// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prospect

import (
	"time"
)

// checkpoint granularity: nonces between cutoff evaluations
const (
	boundedCheckpoint = 100
	fixedCheckpoint   = 1000
)

// decides at each checkpoint whether a worker may stop
type cutoff interface {
	stop(elapsed time.Duration, best uint32) bool
}

// production policy: always continue inside the nominal budget, past
// it stop only once the shared best difficulty reaches the floor
//
// there is no second time ceiling: an unreachable floor keeps the
// search running indefinitely
type boundedWithFloor struct {
	budget time.Duration
	floor  uint32
}

func (c boundedWithFloor) stop(elapsed time.Duration, best uint32) bool {
	if elapsed < c.budget {
		return false
	}
	return best >= c.floor
}

// benchmark policy: run for the fixed time, difficulty never matters
type fixedDuration struct {
	limit time.Duration
}

func (c fixedDuration) stop(elapsed time.Duration, _ uint32) bool {
	return elapsed >= c.limit
}
