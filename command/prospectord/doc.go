// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Nonce searching daemon
//
// This program subscribes to a stream of hashing jobs, splits the
// nonce space over a pool of workers to find a nonce that meets each
// job's difficulty and submits any winning nonce back to the job
// server.
//
// The configuration file is watched while the daemon runs so that the
// worker pool can grow or shrink without a restart.
package main
