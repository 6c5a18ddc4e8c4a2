// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prospect

import (
	"testing"
	"time"
)

func TestFormatRemaining(t *testing.T) {

	testItems := []struct {
		d        time.Duration
		expected string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{900 * time.Millisecond, "00:00"},
		{time.Second, "00:01"},
		{59 * time.Second, "00:59"},
		{60 * time.Second, "01:00"},
		{83 * time.Second, "01:23"},
		{45 * time.Minute, "45:00"},
	}

	for i, item := range testItems {
		s := formatRemaining(item.d)
		if item.expected != s {
			t.Errorf("%d: format(%s): %q  expected: %q", i, item.d, s, item.expected)
		}
	}
}
