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
)

func runRate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	h, err := hashBackend(c.String("algorithm"), hasher.SHA3)
	if nil != err {
		return err
	}

	challenge, err := challengeArgument(c.String("challenge"))
	if nil != err {
		return err
	}

	workers := c.Int("workers")
	duration := time.Duration(c.Int("time")) * time.Second

	if m.verbose {
		fmt.Fprintf(m.e, "algorithm: %s\n", h.Name())
		fmt.Fprintf(m.e, "challenge: %s\n", challenge)
		fmt.Fprintf(m.e, "workers: %d  time: %s\n", workers, duration)
	}

	conf := prospect.Config{
		Workers:  workers,
		Duration: duration,
	}
	if m.verbose {
		conf.Status = func(line string) {
			fmt.Fprintf(m.e, "%s\n", line)
		}
	}

	report := prospect.Benchmark(h, challenge, conf)

	out := struct {
		Algorithm        string   `json:"algorithm"`
		Workers          int      `json:"workers"`
		Seconds          uint64   `json:"seconds"`
		Total            uint64   `json:"total"`
		AveragePerSecond uint64   `json:"average_per_second"`
		Buckets          []uint64 `json:"buckets"`
	}{
		Algorithm:        h.Name(),
		Workers:          workers,
		Seconds:          uint64(report.Elapsed / time.Second),
		Total:            report.Total,
		AveragePerSecond: report.AveragePerSecond,
		Buckets:          report.Buckets,
	}
	printJson(m.w, out)
	return nil
}
