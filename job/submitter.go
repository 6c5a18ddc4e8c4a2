// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package job

import (
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/prospectord/fault"
)

// delivers solutions back to the node
type submitter struct {
	log       *logger.L
	connectTo []string
	solutions <-chan *Solution
}

// initialise the submitter
func (post *submitter) initialise(configuration *Configuration, solutions <-chan *Solution) error {

	log := logger.New("submitter")
	post.log = log
	post.solutions = solutions

	log.Info("initialising…")

	if 0 == len(configuration.Submit) {
		log.Error("no submit endpoints")
		return fault.InvalidEndpoint
	}

	for i, address := range configuration.Submit {
		connectTo, err := canonicalEndpoint(address)
		if nil != err {
			log.Errorf("submit[%d]=%q  error: %s", i, address, err)
			return err
		}
		post.connectTo = append(post.connectTo, connectTo)
	}

	return nil
}

// send solutions until shutdown
//
// the socket lives entirely inside this process
func (post *submitter) Run(args interface{}, shutdown <-chan struct{}) {

	log := post.log

	log.Info("starting…")

	socket, err := zmq.NewSocket(zmq.PUSH)
	if nil != err {
		log.Errorf("socket error: %s", err)
		return
	}
	defer socket.Close()

	socket.SetLinger(0)

	for _, connectTo := range post.connectTo {
		err = socket.Connect(connectTo)
		if nil != err {
			log.Errorf("connect to: %q  error: %s", connectTo, err)
			return
		}
		log.Infof("submit to: %q", connectTo)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case solution := <-post.solutions:
			data, err := json.Marshal(solution)
			if nil != err {
				log.Errorf("JSON encode error: %s", err)
				continue loop
			}

			log.Infof("submitting job: %s  difficulty: %d", solution.Job, solution.Difficulty)
			_, err = socket.SendBytes(data, 0|zmq.DONTWAIT)
			if nil != err {
				log.Errorf("send error: %s", err)
			}
		}
	}
}
