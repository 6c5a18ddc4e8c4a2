// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hasher

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/prospectord/fault"
)

// Challenge - the fixed input shared by all workers of a search
// session
//
// stored and transmitted as is, represented as hex text
type Challenge [ChallengeLength]byte

// RandomChallenge - create a challenge from the system entropy source
func RandomChallenge() (Challenge, error) {
	var challenge Challenge
	_, err := rand.Read(challenge[:])
	return challenge, err
}

// ChallengeFromHex - convert a hex string into a challenge
func ChallengeFromHex(s string) (Challenge, error) {
	var challenge Challenge
	err := challenge.UnmarshalText([]byte(s))
	return challenge, err
}

// String - convert a challenge to hex string for use by the fmt
// package (for %s)
func (challenge Challenge) String() string {
	return hex.EncodeToString(challenge[:])
}

// MarshalText - convert a challenge to hex text
func (challenge Challenge) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(ChallengeLength))
	hex.Encode(buffer, challenge[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a challenge
func (challenge *Challenge) UnmarshalText(s []byte) error {
	if hex.EncodedLen(ChallengeLength) != len(s) {
		return fault.InvalidChallengeLength
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(challenge[:], buffer)
	return nil
}
