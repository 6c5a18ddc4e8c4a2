// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package job - the mining session loop around the search engine
//
// a subscriber receives challenge items as JSON over a ZeroMQ SUB
// socket and fills a single pending slot, where a newer item replaces
// an older one that has not been started.  the runner takes items from
// the slot, skips challenges already solved within the cache TTL, runs
// one bounded search session per item and hands any solution to the
// submitter, which delivers it as JSON over a PUSH socket.
//
// a search session in progress is never preempted: worker count
// changes and fresh items apply from the next session onwards.
package job
