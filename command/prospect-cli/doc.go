// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line interface to the nonce search engine
//
// Runs one-off searches and benchmarks from a terminal without any
// configuration file, printing results as JSON.
package main
