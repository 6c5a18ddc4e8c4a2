// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/bitmark-inc/prospectord/fault"
	"github.com/bitmark-inc/prospectord/hasher"
	"github.com/bitmark-inc/prospectord/hasher/argon2d"
	"github.com/bitmark-inc/prospectord/hasher/sha3d"
)

var (
	ErrDigestMismatch    = fault.InvalidError("digest does not match")
	ErrHashFailed        = fault.ProcessError("hash failed")
	ErrNoSolutionFound   = fault.ProcessError("no solution found")
	ErrRequiredChallenge = fault.InvalidError("challenge argument is required")
	ErrRequiredNonce     = fault.InvalidError("nonce argument is required")
)

// backend from the flag value falling back to a per command default
func hashBackend(name string, fallback string) (hasher.Hasher, error) {
	if "" == name {
		name = fallback
	}
	switch name {
	case hasher.Argon2d:
		return argon2d.New(), nil
	case hasher.SHA3:
		return sha3d.New(), nil
	default:
		return nil, fault.InvalidAlgorithmName
	}
}

// challenge from the flag value falling back to random
func challengeArgument(text string) (hasher.Challenge, error) {
	if "" == text {
		return hasher.RandomChallenge()
	}
	return hasher.ChallengeFromHex(text)
}

// nonce from the flag value, decimal or hex with an 0x prefix
func nonceArgument(text string) (uint64, error) {
	if "" == text {
		return 0, ErrRequiredNonce
	}
	return strconv.ParseUint(text, 0, 64)
}
