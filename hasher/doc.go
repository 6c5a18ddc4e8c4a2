// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hasher - the contract between the nonce search engine and
// its proof-of-work hash backends
//
// A backend combines a fixed 32 byte challenge with a 64 bit nonce
// (packed little endian) and either reports no result or yields a 32
// byte digest together with a non-negative integer difficulty, higher
// difficulty being more valuable
//
// The provided backends share one difficulty convention: the count of
// leading zero bits of the digest
//
// Scratch values hold whatever per call working storage a backend
// needs; a scratch is created once per worker and must never be used
// from two goroutines at the same time
package hasher
