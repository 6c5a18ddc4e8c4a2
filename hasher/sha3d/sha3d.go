// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sha3d - cheap proof-of-work backend
//
// sha3-256 over challenge‖nonce, no memory hardness; intended for
// hash rate benchmarking and engine testing
package sha3d

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/prospectord/hasher"
)

const inputLength = hasher.ChallengeLength + hasher.NonceLength

// Hasher - sha3-256 backend
type Hasher struct{}

// per worker reused input buffer
type scratchMemory struct {
	input [inputLength]byte
}

// New - sha3-256 backend
func New() *Hasher {
	return &Hasher{}
}

// Name - algorithm name
func (h *Hasher) Name() string {
	return hasher.SHA3
}

// NewScratch - allocate the per worker input buffer
func (h *Hasher) NewScratch() (hasher.Scratch, error) {
	return new(scratchMemory), nil
}

// Hash - one attempt, never reports no result
func (h *Hasher) Hash(scratch hasher.Scratch, challenge hasher.Challenge, nonce uint64) (hasher.Outcome, bool) {

	s := scratch.(*scratchMemory)

	copy(s.input[:hasher.ChallengeLength], challenge[:])
	binary.LittleEndian.PutUint64(s.input[hasher.ChallengeLength:], nonce)

	digest := hasher.Digest(sha3.Sum256(s.input[:]))

	return hasher.Outcome{
		Digest:     digest,
		Difficulty: hasher.Difficulty(digest),
	}, true
}
