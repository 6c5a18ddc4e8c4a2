// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package job

import (
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/prospectord/background"
	"github.com/bitmark-inc/prospectord/fault"
	"github.com/bitmark-inc/prospectord/util"
)

// a block of configuration data
// this is read from the configuration file
type Configuration struct {
	Subscribe     []string     `gluamapper:"subscribe" json:"subscribe"`
	Submit        []string     `gluamapper:"submit" json:"submit"`
	Algorithm     string       `gluamapper:"algorithm" json:"algorithm"`
	Argon2        Argon2Config `gluamapper:"argon2" json:"argon2"`
	MinDifficulty uint32       `gluamapper:"min_difficulty" json:"min_difficulty"`
	CutoffSeconds uint64       `gluamapper:"cutoff_seconds" json:"cutoff_seconds"`
	SolvedSeconds uint64       `gluamapper:"solved_seconds" json:"solved_seconds"`
}

// Argon2Config - tuning for the argon2d backend, zero values keep the
// backend defaults
type Argon2Config struct {
	Memory     int `gluamapper:"memory" json:"memory"` // KiB
	Iterations int `gluamapper:"iterations" json:"iterations"`
}

const (
	defaultSolvedTTL   = 10 * time.Minute
	solutionQueueDepth = 16
)

// globals for background proccess
type jobData struct {
	sync.RWMutex // to allow locking

	// logger
	log *logger.L

	// pending challenge slot
	queue *pendingQueue

	// recently solved challenges
	solved *solvedCache

	// from runner to submitter
	solutions chan *Solution

	// for challenge reception
	sub subscriber

	// for solution delivery
	post submitter

	// for the search sessions
	mine runner

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData jobData

// Initialise - start the session loop background processes
func Initialise(configuration *Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("job")
	globalData.log.Info("starting…")

	globalData.queue = newPendingQueue()

	ttl := time.Duration(configuration.SolvedSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultSolvedTTL
	}
	globalData.solved = newSolvedCache(ttl)

	globalData.solutions = make(chan *Solution, solutionQueueDepth)

	// socket allocation comes last so that a configuration error
	// leaves nothing bound
	if err := globalData.mine.initialise(configuration, globalData.queue, globalData.solved, globalData.solutions); nil != err {
		return err
	}
	if err := globalData.post.initialise(configuration, globalData.solutions); nil != err {
		return err
	}
	if err := globalData.sub.initialise(configuration, globalData.queue); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	// list of background processes to start
	processes := background.Processes{
		&globalData.sub,
		&globalData.post,
		&globalData.mine,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// SetWorkers - worker count for subsequent search sessions
//
// a session already running keeps the count it started with
func SetWorkers(count uint32) {
	globalData.mine.setWorkers(count)
}

// IsWorking - a search session is currently running
func IsWorking() bool {
	return globalData.mine.isWorking()
}

// config endpoints are bare IP:port values canonicalised to tcp URLs;
// scheme-prefixed endpoints pass through untouched for inproc wiring
func canonicalEndpoint(address string) (string, error) {
	if "" == address {
		return "", fault.InvalidEndpoint
	}
	if strings.Contains(address, "://") {
		return address, nil
	}
	return util.CanonicalIPandPort("tcp://", address)
}
