// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package argon2d - memory-hard proof-of-work backend
//
// hashes challenge‖nonce with argon2 in data dependent mode, the
// packed input acts as both password and salt
package argon2d

import (
	"encoding/binary"

	argon2 "github.com/bitmark-inc/go-argon2"

	"github.com/bitmark-inc/prospectord/hasher"
)

// internal hashing parameters
const (
	hashMode    = argon2.ModeArgon2d
	hashVersion = argon2.Version13
	parallelism = 1

	defaultMemory     = 1 << 17 // KiB, i.e. 128 MiB
	defaultIterations = 4

	inputLength = hasher.ChallengeLength + hasher.NonceLength
)

// Hasher - argon2d backend with fixed tuning
type Hasher struct {
	memory     int
	iterations int
}

// per worker state: the argon2 context and the reused input buffer
type scratchMemory struct {
	context *argon2.Context
	input   [inputLength]byte
}

// New - argon2d backend with the default tuning
func New() *Hasher {
	return NewWithParameters(defaultMemory, defaultIterations)
}

// NewWithParameters - argon2d backend with specific memory (KiB) and
// iteration tuning, out of range values fall back to the defaults
func NewWithParameters(memory int, iterations int) *Hasher {
	if memory <= 0 {
		memory = defaultMemory
	}
	if iterations <= 0 {
		iterations = defaultIterations
	}
	return &Hasher{
		memory:     memory,
		iterations: iterations,
	}
}

// Name - algorithm name
func (h *Hasher) Name() string {
	return hasher.Argon2d
}

// NewScratch - allocate the per worker state
func (h *Hasher) NewScratch() (hasher.Scratch, error) {
	return &scratchMemory{
		context: &argon2.Context{
			Iterations:  h.iterations,
			Memory:      h.memory,
			Parallelism: parallelism,
			HashLen:     hasher.DigestLength,
			Mode:        hashMode,
			Version:     hashVersion,
		},
	}, nil
}

// Hash - one attempt
//
// an internal argon2 failure is reported as no result
func (h *Hasher) Hash(scratch hasher.Scratch, challenge hasher.Challenge, nonce uint64) (hasher.Outcome, bool) {

	s := scratch.(*scratchMemory)

	copy(s.input[:hasher.ChallengeLength], challenge[:])
	binary.LittleEndian.PutUint64(s.input[hasher.ChallengeLength:], nonce)

	record, err := argon2.Hash(s.context, s.input[:], s.input[:])
	if nil != err {
		return hasher.Outcome{}, false
	}

	var digest hasher.Digest
	copy(digest[:], record)

	return hasher.Outcome{
		Digest:     digest,
		Difficulty: hasher.Difficulty(digest),
	}, true
}
