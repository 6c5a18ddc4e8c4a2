// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package job

import (
	"sync"
)

// single pending slot with latest-wins replacement
//
// the runner blocks on the fresh channel rather than spinning on an
// empty slot; the channel only ever signals, the slot holds the data
type pendingQueue struct {
	sync.Mutex
	item  *Item
	fresh chan struct{}
}

func newPendingQueue() *pendingQueue {
	return &pendingQueue{
		fresh: make(chan struct{}, 1),
	}
}

// store an item, replacing any not yet started one
func (queue *pendingQueue) store(item *Item) {
	queue.Lock()
	queue.item = item
	queue.Unlock()

	// a pending signal already covers this item
	select {
	case queue.fresh <- struct{}{}:
	default:
	}
}

// take the pending item, nil if the slot is empty
func (queue *pendingQueue) take() *Item {
	queue.Lock()
	defer queue.Unlock()

	item := queue.item
	queue.item = nil
	return item
}

// freshWork - signalled at least once after every store
func (queue *pendingQueue) freshWork() <-chan struct{} {
	return queue.fresh
}
