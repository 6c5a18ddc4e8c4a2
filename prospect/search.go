// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prospect

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/prospectord/counter"
	"github.com/bitmark-inc/prospectord/hasher"
)

// DefaultBenchmarkDuration - per worker run time of a benchmark
// session when the configuration leaves it unset
const DefaultBenchmarkDuration = 55 * time.Second

// at most one status line per second reaches the sink
var statusInterval = rate.Every(time.Second)

// StatusFunc - optional sink for worker 0 status lines
//
// called from inside the scan loop, must not block
type StatusFunc func(line string)

// Config - parameters of one session, all fixed for its duration
//
// Workers below one is treated as one; Cutoff and MinDifficulty drive
// Search, a zero Cutoff means the budget is already exhausted so only
// the floor matters; Duration drives Benchmark, zero falling back to
// DefaultBenchmarkDuration
type Config struct {
	Workers       int
	Cutoff        time.Duration
	MinDifficulty uint32
	Duration      time.Duration
	Status        StatusFunc
}

func (conf Config) workerCount() int {
	if conf.Workers < 1 {
		return 1
	}
	return conf.Workers
}

// Search - scan for the highest difficulty under the
// bounded-with-floor policy, blocking until every worker stopped
//
// never fails: with no candidate above difficulty zero the sentinel
// zero value result is returned
func Search(h hasher.Hasher, challenge hasher.Challenge, conf Config) Result {

	policy := boundedWithFloor{
		budget: conf.Cutoff,
		floor:  conf.MinDifficulty,
	}
	results := run(h, challenge, conf.workerCount(), boundedCheckpoint, policy, nil, searchStatus(conf))
	return selectBest(results)
}

// Benchmark - run every worker for the fixed duration and report the
// difficulty distribution and hash rate
func Benchmark(h hasher.Hasher, challenge hasher.Challenge, conf Config) Report {

	duration := conf.Duration
	if duration <= 0 {
		duration = DefaultBenchmarkDuration
	}

	histogram := NewHistogram()
	start := time.Now()

	policy := fixedDuration{
		limit: duration,
	}
	run(h, challenge, conf.workerCount(), fixedCheckpoint, policy, histogram, benchmarkStatus(conf, histogram, start))

	return histogram.Report(time.Since(start))
}

// start one goroutine per worker and join all of them
func run(
	h hasher.Hasher,
	challenge hasher.Challenge,
	workers int,
	checkpoint uint64,
	policy cutoff,
	histogram *Histogram,
	status func(elapsed time.Duration, best uint32),
) []workerResult {

	best := new(counter.HighWater)
	results := make([]workerResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i += 1 {
		w := &worker{
			hasher:     h,
			challenge:  challenge,
			first:      FirstNonce(workers, i),
			checkpoint: checkpoint,
			policy:     policy,
			best:       best,
			histogram:  histogram,
		}
		if 0 == i {
			w.status = status
		}

		wg.Add(1)
		go func(i int, w *worker) {
			defer wg.Done()
			results[i] = w.scan()
		}(i, w)
	}
	wg.Wait()

	return results
}

// status closure for Search: the mining progress line, throttled
func searchStatus(conf Config) func(time.Duration, uint32) {
	if nil == conf.Status {
		return nil
	}
	limiter := rate.NewLimiter(statusInterval, 1)
	budget := conf.Cutoff
	sink := conf.Status

	return func(elapsed time.Duration, best uint32) {
		if !limiter.Allow() {
			return
		}
		if elapsed < budget {
			sink(fmt.Sprintf("Mining... (difficulty %d, time %s)", best, formatRemaining(budget-elapsed)))
		} else {
			// past the budget, holding on for the floor
			sink(fmt.Sprintf("Mining... (difficulty %d)", best))
		}
	}
}

// status closure for Benchmark: the periodic report line, throttled
func benchmarkStatus(conf Config, histogram *Histogram, start time.Time) func(time.Duration, uint32) {
	if nil == conf.Status {
		return nil
	}
	limiter := rate.NewLimiter(statusInterval, 1)
	sink := conf.Status

	return func(time.Duration, uint32) {
		if !limiter.Allow() {
			return
		}
		sink(histogram.Report(time.Since(start)).String())
	}
}

// remaining budget as zero padded MM:SS
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := uint64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
