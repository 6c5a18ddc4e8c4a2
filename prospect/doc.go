// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prospect - parallel nonce search engine
//
// A session starts one worker per configured worker count, each
// scanning its own slice of the 64 bit nonce domain with an exclusive
// hash scratch, all sharing one high water difficulty tracker
//
// Two session kinds:
//
//   Search - bounded-with-floor: run the nominal time budget, then
//   keep scanning until the shared best difficulty reaches the floor;
//   returns the single best candidate
//
//   Benchmark - fixed per worker duration; collects the difficulty
//   distribution and the hash rate
//
// Workers notice a stop condition only at their checkpoints (every
// 100 nonces bounded, every 1000 benchmark) so a bounded number of
// extra hashes past the logical stop instant is normal; there is no
// external cancellation
package prospect
