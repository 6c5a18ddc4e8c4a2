// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Benchmark the hashing backends
//
// Runs the full worker pool against one challenge for a fixed time
// and reports the hash rate and difficulty distribution.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/prospectord/fault"
	"github.com/bitmark-inc/prospectord/hasher"
	"github.com/bitmark-inc/prospectord/hasher/argon2d"
	"github.com/bitmark-inc/prospectord/hasher/sha3d"
	"github.com/bitmark-inc/prospectord/prospect"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "time", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "algorithm", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'a'},
		{Long: "challenge", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("option parse error: %s", err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--time=SECONDS] [--algorithm=argon2d|sha3] [--challenge=HEX] [workers]", program)
	}

	quiet := len(options["quiet"]) > 0

	sampleTime := prospect.DefaultBenchmarkDuration
	if len(options["time"]) > 0 {
		seconds, err := strconv.ParseUint(options["time"][0], 10, 32)
		if err != nil {
			exitwithstatus.Message("%s: convert time error: %s", program, err)
		}
		if seconds < 1 {
			exitwithstatus.Message("%s: invalid time: %d", program, seconds)
		}
		sampleTime = time.Duration(seconds) * time.Second
	}

	algorithm := hasher.SHA3
	if len(options["algorithm"]) > 0 {
		algorithm = options["algorithm"][0]
	}
	h, err := newBackend(algorithm)
	if err != nil {
		exitwithstatus.Message("%s: algorithm error: %s", program, err)
	}

	challenge, err := hasher.RandomChallenge()
	if err != nil {
		exitwithstatus.Message("%s: challenge error: %s", program, err)
	}
	if len(options["challenge"]) > 0 {
		challenge, err = hasher.ChallengeFromHex(options["challenge"][0])
		if err != nil {
			exitwithstatus.Message("%s: convert challenge error: %s", program, err)
		}
	}

	workers := workerArgument(arguments)

	if !quiet {
		fmt.Printf("hashing %s with %d workers for: %7.1f seconds\n",
			h.Name(), workers, sampleTime.Seconds())
		fmt.Printf("challenge: %s\n", challenge)
	}

	conf := prospect.Config{
		Workers:  workers,
		Duration: sampleTime,
	}
	if !quiet {
		conf.Status = func(line string) {
			fmt.Printf("%s\n", line)
		}
	}

	report := prospect.Benchmark(h, challenge, conf)

	if !quiet {
		fmt.Printf("finished\n")
	}

	fmt.Printf("%s\n", report)
}

// worker count from the positional arguments
//
// a missing or unparsable count runs a single worker
func workerArgument(arguments []string) int {
	if len(arguments) < 1 {
		return 1
	}
	workers, err := strconv.Atoi(arguments[0])
	if err != nil || workers < 1 {
		return 1
	}
	return workers
}

// backend from the algorithm name
func newBackend(algorithm string) (hasher.Hasher, error) {
	switch algorithm {
	case hasher.Argon2d:
		return argon2d.New(), nil
	case hasher.SHA3:
		return sha3d.New(), nil
	default:
		return nil, fault.InvalidAlgorithmName
	}
}
