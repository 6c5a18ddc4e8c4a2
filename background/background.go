// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - any type that implements the single Run method
//
// Run is called as a goroutine, it is passed the args value given to
// Start and a shutdown channel; the routine must return after the
// shutdown channel is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for the stop operation
type T struct {
	sync.WaitGroup
	finalise []chan struct{}
}

// Start - start up a set of background processes
// all processes share the same args value
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.finalise = make([]chan struct{}, len(processes))

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		register.finalise[i] = shutdown
		register.Add(1)
		go func(p Process, shutdown <-chan struct{}) {
			defer register.Done()
			p.Run(args, shutdown)
		}(p, shutdown)
	}
	return register
}

// Stop - stop a set of background processes
// close all shutdown channels and wait for the routines to return
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, shutdown := range t.finalise {
		close(shutdown)
	}

	// wait for finished
	t.Wait()
}
