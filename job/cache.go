// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package job

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/prospectord/hasher"
)

// remembers recently solved challenges so that a republished job is
// not searched a second time within the TTL
type solvedCache struct {
	cache *cache.Cache
}

func newSolvedCache(ttl time.Duration) *solvedCache {
	return &solvedCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *solvedCache) mark(challenge hasher.Challenge) {
	c.cache.Set(challenge.String(), struct{}{}, cache.DefaultExpiration)
}

func (c *solvedCache) seen(challenge hasher.Challenge) bool {
	_, found := c.cache.Get(challenge.String())
	return found
}

func (c *solvedCache) clear() {
	c.cache.Flush()
}
