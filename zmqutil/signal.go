// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil - ZeroMQ helpers shared by the messaging processes
package zmqutil

import (
	zmq "github.com/pebbe/zmq4"
)

// NewSignalPair - return a connected send/receive pair of sockets
// for shutdown signalling over an inproc endpoint
//
// the send half owns the inproc name, closing it frees the name for
// a later restart
func NewSignalPair(signal string) (*zmq.Socket, *zmq.Socket, error) {

	send, err := zmq.NewSocket(zmq.PUSH)
	if nil != err {
		return nil, nil, err
	}
	receive, err := zmq.NewSocket(zmq.PULL)
	if nil != err {
		send.Close()
		return nil, nil, err
	}

	send.SetLinger(0)
	receive.SetLinger(0)

	err = send.Bind(signal)
	if nil == err {
		err = receive.Connect(signal)
	}
	if nil != err {
		send.Close()
		receive.Close()
		return nil, nil, err
	}

	return send, receive, nil
}
