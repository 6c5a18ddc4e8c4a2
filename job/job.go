// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package job

import (
	"encoding/binary"

	"github.com/bitmark-inc/prospectord/fault"
	"github.com/bitmark-inc/prospectord/hasher"
	"github.com/bitmark-inc/prospectord/prospect"
)

// SolutionRequest - the verb stored in every outgoing solution
const SolutionRequest = "prospect.solution"

// Item - one challenge as published by a node
//
// zero MinDifficulty or CutoffSeconds fall back to the configured
// session defaults
type Item struct {
	Job           string
	Challenge     hasher.Challenge
	MinDifficulty uint32
	CutoffSeconds uint64
}

// Validate - check the decoded item is usable
//
// the challenge length is already enforced by its JSON decoding
func (item *Item) Validate() error {
	if "" == item.Job {
		return fault.InvalidJob
	}
	return nil
}

// Solution - a winning nonce to send back to the node
//
// Packed is the little-endian form of the nonce
type Solution struct {
	Request    string
	Job        string
	Packed     []byte
	Difficulty uint32
	Digest     hasher.Digest
}

// NewSolution - wrap a search result for submission
func NewSolution(job string, result prospect.Result) *Solution {
	packed := make([]byte, hasher.NonceLength)
	binary.LittleEndian.PutUint64(packed, result.Nonce)

	return &Solution{
		Request:    SolutionRequest,
		Job:        job,
		Packed:     packed,
		Difficulty: result.Difficulty,
		Digest:     result.Digest,
	}
}
