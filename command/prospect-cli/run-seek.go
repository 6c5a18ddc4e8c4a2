// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/prospectord/hasher"
	"github.com/bitmark-inc/prospectord/prospect"
	"github.com/bitmark-inc/prospectord/util"
)

func runSeek(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	h, err := hashBackend(c.String("algorithm"), hasher.Argon2d)
	if nil != err {
		return err
	}

	challenge, err := challengeArgument(c.String("challenge"))
	if nil != err {
		return err
	}

	workers := c.Int("workers")
	cutoff := time.Duration(c.Int("cutoff")) * time.Second
	minimum := uint32(c.Uint64("minimum"))

	if m.verbose {
		fmt.Fprintf(m.e, "algorithm: %s\n", h.Name())
		fmt.Fprintf(m.e, "challenge: %s\n", challenge)
		fmt.Fprintf(m.e, "workers: %d  cutoff: %s  minimum difficulty: %d\n",
			workers, cutoff, minimum)
	}

	conf := prospect.Config{
		Workers:       workers,
		Cutoff:        cutoff,
		MinDifficulty: minimum,
	}
	if m.verbose {
		conf.Status = func(line string) {
			fmt.Fprintf(m.e, "%s\n", line)
		}
	}

	result := prospect.Search(h, challenge, conf)
	if 0 == result.Difficulty {
		return ErrNoSolutionFound
	}

	out := struct {
		Challenge  string `json:"challenge"`
		Nonce      string `json:"nonce"`
		Difficulty uint32 `json:"difficulty"`
		Digest     string `json:"digest"`
	}{
		Challenge:  challenge.String(),
		Nonce:      fmt.Sprintf("0x%016x", result.Nonce),
		Difficulty: result.Difficulty,
		Digest:     util.ToBase58(result.Digest[:]),
	}
	printJson(m.w, out)
	return nil
}
