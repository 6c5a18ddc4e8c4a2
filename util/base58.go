// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// ToBase58 - convert a binary buffer to its Base58 string form
func ToBase58(buffer []byte) string {
	return base58.Encode(buffer)
}

// FromBase58 - convert a Base58 string to its binary form
//
// an invalid string yields an empty buffer
func FromBase58(s string) []byte {
	buffer, err := base58.Decode(s)
	if nil != err {
		return []byte{}
	}
	return buffer
}
