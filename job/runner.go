// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package job

import (
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/prospectord/fault"
	"github.com/bitmark-inc/prospectord/hasher"
	"github.com/bitmark-inc/prospectord/hasher/argon2d"
	"github.com/bitmark-inc/prospectord/hasher/sha3d"
	"github.com/bitmark-inc/prospectord/prospect"
	"github.com/bitmark-inc/prospectord/ratelimit"
	"github.com/bitmark-inc/prospectord/util"
)

const (
	// session defaults when neither the item nor the configuration
	// carries a value
	defaultCutoff = 10 * time.Second

	// pacing of session starts, guards against a republish loop
	sessionInterval = time.Second
)

// runs one search session per pending item
type runner struct {
	log       *logger.L
	queue     *pendingQueue
	solved    *solvedCache
	solutions chan<- *Solution
	limiter   *rate.Limiter

	hasher        hasher.Hasher
	minDifficulty uint32
	cutoff        time.Duration

	workers uint32 // atomic, live updatable
	working uint32 // atomic, non zero while a session runs
}

// initialise the runner
func (run *runner) initialise(
	configuration *Configuration,
	queue *pendingQueue,
	solved *solvedCache,
	solutions chan<- *Solution,
) error {

	log := logger.New("runner")
	run.log = log

	log.Info("initialising…")

	run.queue = queue
	run.solved = solved
	run.solutions = solutions
	run.limiter = rate.NewLimiter(rate.Every(sessionInterval), 1)

	h, err := newBackend(configuration)
	if nil != err {
		log.Errorf("algorithm: %q  error: %s", configuration.Algorithm, err)
		return err
	}
	run.hasher = h
	log.Infof("algorithm: %s", h.Name())

	run.minDifficulty = configuration.MinDifficulty
	run.cutoff = time.Duration(configuration.CutoffSeconds) * time.Second
	if run.cutoff <= 0 {
		run.cutoff = defaultCutoff
	}

	run.setWorkers(1)

	return nil
}

// search sessions until shutdown
func (run *runner) Run(args interface{}, shutdown <-chan struct{}) {

	log := run.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-run.queue.freshWork():
			for item := run.queue.take(); nil != item; item = run.queue.take() {
				run.process(item)
			}
		}
	}
}

// one search session
func (run *runner) process(item *Item) {

	log := run.log

	if run.solved.seen(item.Challenge) {
		log.Infof("job: %s challenge already solved, skipping", item.Job)
		return
	}

	// pace session starts
	err := ratelimit.Limit(run.limiter)
	if nil != err {
		log.Errorf("job: %s  error: %s", item.Job, err)
		return
	}

	minDifficulty := item.MinDifficulty
	if 0 == minDifficulty {
		minDifficulty = run.minDifficulty
	}

	cutoff := time.Duration(item.CutoffSeconds) * time.Second
	if 0 == item.CutoffSeconds {
		cutoff = run.cutoff
	}

	workers := int(atomic.LoadUint32(&run.workers))
	log.Infof("job: %s  workers: %d  cutoff: %s  minimum difficulty: %d",
		item.Job, workers, cutoff, minDifficulty)

	atomic.StoreUint32(&run.working, 1)
	start := time.Now()

	result := prospect.Search(run.hasher, item.Challenge, prospect.Config{
		Workers:       workers,
		Cutoff:        cutoff,
		MinDifficulty: minDifficulty,
		Status: func(line string) {
			log.Debug(line)
		},
	})

	atomic.StoreUint32(&run.working, 0)

	if (prospect.Result{}) == result {
		log.Warnf("job: %s no solution after %s", item.Job, time.Since(start))
		return
	}

	log.Infof("job: %s  difficulty: %d  nonce: 0x%016x  digest: %s",
		item.Job, result.Difficulty, result.Nonce, util.ToBase58(result.Digest[:]))

	run.solved.mark(item.Challenge)

	select {
	case run.solutions <- NewSolution(item.Job, result):
	default:
		log.Errorf("job: %s solution queue full, dropping", item.Job)
	}
}

func (run *runner) setWorkers(count uint32) {
	if count < 1 {
		count = 1
	}
	atomic.StoreUint32(&run.workers, count)
}

func (run *runner) isWorking() bool {
	return 0 != atomic.LoadUint32(&run.working)
}

// the configured hash backend
func newBackend(configuration *Configuration) (hasher.Hasher, error) {
	switch configuration.Algorithm {
	case hasher.Argon2d, "":
		return argon2d.NewWithParameters(configuration.Argon2.Memory, configuration.Argon2.Iterations), nil
	case hasher.SHA3:
		return sha3d.New(), nil
	default:
		return nil, fault.InvalidAlgorithmName
	}
}
