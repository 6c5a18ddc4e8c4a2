// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sha3d_test

import (
	"encoding/binary"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/prospectord/hasher"
	"github.com/bitmark-inc/prospectord/hasher/sha3d"
)

func TestName(t *testing.T) {
	h := sha3d.New()
	if hasher.SHA3 != h.Name() {
		t.Errorf("name: %q  expected: %q", h.Name(), hasher.SHA3)
	}
}

// the digest is sha3-256 of challenge followed by the little endian
// packed nonce
func TestHashPacking(t *testing.T) {

	h := sha3d.New()

	scratch, err := h.NewScratch()
	if nil != err {
		t.Fatalf("new scratch error: %v", err)
	}

	challenge, err := hasher.ChallengeFromHex("a600000000000000000000000000000000000000000000000000000000000001")
	if nil != err {
		t.Fatalf("challenge error: %v", err)
	}

	const nonce = 0x0123456789abcdef

	outcome, ok := h.Hash(scratch, challenge, nonce)
	if !ok {
		t.Fatalf("hash reported no result")
	}

	input := make([]byte, hasher.ChallengeLength+hasher.NonceLength)
	copy(input, challenge[:])
	binary.LittleEndian.PutUint64(input[hasher.ChallengeLength:], nonce)
	expected := hasher.Digest(sha3.Sum256(input))

	if expected != outcome.Digest {
		t.Errorf("digest: %s  expected: %s", outcome.Digest, expected)
	}
	if hasher.Difficulty(expected) != outcome.Difficulty {
		t.Errorf("difficulty: %d  expected: %d", outcome.Difficulty, hasher.Difficulty(expected))
	}
}

// the scratch buffer must not leak between calls
func TestHashSequence(t *testing.T) {

	h := sha3d.New()

	scratch, err := h.NewScratch()
	if nil != err {
		t.Fatalf("new scratch error: %v", err)
	}

	var challenge hasher.Challenge

	first, _ := h.Hash(scratch, challenge, 7)
	_, _ = h.Hash(scratch, challenge, 8)
	again, _ := h.Hash(scratch, challenge, 7)

	if first != again {
		t.Errorf("outcome changed: %#v  then: %#v", first.Digest, again.Digest)
	}

	other, _ := h.Hash(scratch, challenge, 8)
	if first.Digest == other.Digest {
		t.Errorf("distinct nonces produced identical digest: %s", first.Digest)
	}
}
