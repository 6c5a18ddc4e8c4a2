// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/prospectord/hasher"
	"github.com/bitmark-inc/prospectord/util"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	h, err := hashBackend(c.String("algorithm"), hasher.Argon2d)
	if nil != err {
		return err
	}

	challengeText := c.String("challenge")
	if "" == challengeText {
		return ErrRequiredChallenge
	}
	challenge, err := hasher.ChallengeFromHex(challengeText)
	if nil != err {
		return err
	}

	nonce, err := nonceArgument(c.String("nonce"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "algorithm: %s\n", h.Name())
		fmt.Fprintf(m.e, "challenge: %s\n", challenge)
		fmt.Fprintf(m.e, "nonce: 0x%016x\n", nonce)
	}

	scratch, err := h.NewScratch()
	if nil != err {
		return err
	}

	outcome, ok := h.Hash(scratch, challenge, nonce)
	if !ok {
		return ErrHashFailed
	}

	out := struct {
		Challenge  string `json:"challenge"`
		Nonce      string `json:"nonce"`
		Difficulty uint32 `json:"difficulty"`
		Digest     string `json:"digest"`
	}{
		Challenge:  challenge.String(),
		Nonce:      fmt.Sprintf("0x%016x", nonce),
		Difficulty: outcome.Difficulty,
		Digest:     util.ToBase58(outcome.Digest[:]),
	}
	printJson(m.w, out)

	// compare against a previously reported digest
	expectedText := c.String("digest")
	if "" != expectedText {
		var expected hasher.Digest
		err = hasher.DigestFromBytes(&expected, util.FromBase58(expectedText))
		if nil != err {
			return err
		}
		if expected != outcome.Digest {
			return ErrDigestMismatch
		}
	}

	return nil
}
