// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hasher

// lengths of the fixed size values
const (
	ChallengeLength = 32 // bytes
	DigestLength    = 32 // bytes
	NonceLength     = 8  // bytes, packed little endian
)

// Scratch - opaque per worker working storage for a backend
//
// a backend type-asserts its own concrete scratch; passing a scratch
// from one backend to another is a programming error
type Scratch interface{}

// Outcome - a successful hash: the digest and its derived difficulty
type Outcome struct {
	Digest     Digest
	Difficulty uint32
}

// Hasher - a proof-of-work hash backend
//
// Hash reports false when the backend found no result for this nonce,
// an expected and frequent outcome, not an error
//
// the scratch is owned exclusively by the calling worker; Hash is
// only safe for concurrent use with distinct scratch values
type Hasher interface {
	Name() string
	NewScratch() (Scratch, error)
	Hash(scratch Scratch, challenge Challenge, nonce uint64) (Outcome, bool)
}
