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
	"github.com/bitmark-inc/prospectord/zmqutil"
)

const (
	subscriberSignal = "inproc://prospect-subscriber-signal"
)

// receives published challenge items and fills the pending slot
type subscriber struct {
	log        *logger.L
	sigSend    *zmq.Socket // signal send
	sigReceive *zmq.Socket // signal receive
	socket     *zmq.Socket // SUB connection to the node
	queue      *pendingQueue
}

// initialise the subscriber
func (sub *subscriber) initialise(configuration *Configuration, queue *pendingQueue) error {

	log := logger.New("subscriber")
	sub.log = log
	sub.queue = queue

	log.Info("initialising…")

	if 0 == len(configuration.Subscribe) {
		log.Error("no subscribe endpoints")
		return fault.InvalidEndpoint
	}

	// signalling channel
	sigSend, sigReceive, err := zmqutil.NewSignalPair(subscriberSignal)
	if nil != err {
		return err
	}
	sub.sigSend = sigSend
	sub.sigReceive = sigReceive

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return err
	}

	socket.SetLinger(0)

	// set subscription prefix - empty => receive everything
	socket.SetSubscribe("")

	for i, address := range configuration.Subscribe {
		connectTo, err := canonicalEndpoint(address)
		if nil != err {
			log.Errorf("subscribe[%d]=%q  error: %s", i, address, err)
			socket.Close()
			return err
		}

		err = socket.Connect(connectTo)
		if nil != err {
			log.Errorf("connect to: %q  error: %s", connectTo, err)
			socket.Close()
			return err
		}
		log.Infof("subscribe to: %q", connectTo)
	}
	sub.socket = socket

	return nil
}

// wait for published challenges until shutdown
func (sub *subscriber) Run(args interface{}, shutdown <-chan struct{}) {

	log := sub.log

	log.Info("starting…")

	go func() {
		defer sub.socket.Close()
		defer sub.sigReceive.Close()

		poller := zmqutil.NewPoller()
		poller.Add(sub.socket, zmq.POLLIN)
		poller.Add(sub.sigReceive, zmq.POLLIN)

	loop:
		for {
			polled, err := poller.Poll(-1)
			if nil != err {
				log.Errorf("poll error: %s", err)
				continue loop
			}

			for _, p := range polled {
				switch s := p.Socket; s {
				case sub.sigReceive:
					_, _ = s.RecvMessageBytes(0)
					break loop
				default:
					data, err := s.RecvMessageBytes(0)
					if nil != err {
						log.Errorf("receive error: %s", err)
						continue loop
					}
					sub.process(data[0])
				}
			}
		}
	}()

	// wait for shutdown
	<-shutdown
	_, _ = sub.sigSend.SendMessage("stop")
	_ = sub.sigSend.Close()
}

// decode and validate one published item
func (sub *subscriber) process(data []byte) {

	log := sub.log

	item := &Item{}
	err := json.Unmarshal(data, item)
	if nil != err {
		log.Errorf("JSON decode error: %s", err)
		return
	}

	err = item.Validate()
	if nil != err {
		log.Errorf("received item: %v  error: %s", item, err)
		return
	}

	log.Infof("received job: %s  challenge: %s", item.Job, item.Challenge)
	sub.queue.store(item)
}
