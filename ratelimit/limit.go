// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - pacing helper over golang.org/x/time/rate
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/prospectord/fault"
)

// Limit - block until the limiter admits one event
//
// a limiter that can never admit the event (zero burst) reports
// fault.RateLimiting instead of blocking forever
func Limit(limiter *rate.Limiter) error {
	reservation := limiter.Reserve()
	if !reservation.OK() {
		return fault.RateLimiting
	}
	time.Sleep(reservation.Delay())
	return nil
}
