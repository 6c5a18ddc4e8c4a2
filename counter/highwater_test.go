// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/prospectord/counter"
)

// test that only strictly greater candidates change the value
func TestHighWaterRaise(t *testing.T) {

	var hw counter.HighWater

	if 0 != hw.Peek() {
		t.Fatalf("high water is not zero at start: %d", hw.Peek())
	}

	testItems := []struct {
		candidate uint32
		changed   bool
		expected  uint32
	}{
		{0, false, 0},
		{7, true, 7},
		{7, false, 7},
		{3, false, 7},
		{9, true, 9},
		{8, false, 9},
		{9, false, 9},
		{100, true, 100},
	}

	for i, item := range testItems {
		changed := hw.Raise(item.candidate)
		if changed != item.changed {
			t.Errorf("%d: raise(%d) changed: %v  expected: %v", i, item.candidate, changed, item.changed)
		}
		if item.expected != hw.Peek() {
			t.Errorf("%d: value: %d  expected: %d", i, hw.Peek(), item.expected)
		}
	}
}

// test that concurrent raises end at the maximum candidate
// and that peek never observes a decreasing value
func TestHighWaterConcurrentRaise(t *testing.T) {

	const goroutines = 8

	var hw counter.HighWater
	var wg sync.WaitGroup

	maximum := uint32(0)
	for g := 0; g < goroutines; g += 1 {
		values := make([]uint32, 0, 500)
		for v := uint32(0); v < 500; v += 1 {
			value := v*uint32(g+1)%4999 + 1
			values = append(values, value)
			if value > maximum {
				maximum = value
			}
		}
		wg.Add(1)
		go func(values []uint32) {
			defer wg.Done()
			previous := uint32(0)
			for _, v := range values {
				hw.Raise(v)
				current := hw.Peek()
				if current < previous {
					t.Errorf("peek went backwards: %d after %d", current, previous)
					return
				}
				previous = current
			}
		}(values)
	}
	wg.Wait()

	if maximum != hw.Peek() {
		t.Errorf("final value: %d  expected maximum: %d", hw.Peek(), maximum)
	}
}
