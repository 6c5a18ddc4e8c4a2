// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hasher

// names of all backend algorithms
const (
	Argon2d = "argon2d"
	SHA3    = "sha3"
)

// ValidAlgorithm - validate a backend algorithm name
func ValidAlgorithm(name string) bool {
	switch name {
	case Argon2d, SHA3:
		return true
	default:
		return false
	}
}
