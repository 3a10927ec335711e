// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

const (
	// Keep name lookups for 5 minutes; any mutation flushes them anyway
	DefaultNameLookupTTL = 5 * time.Minute
	// Sized for ~100k distinct names at about 1% false positives
	DefaultBloomSize   uint = 1 << 20
	DefaultBloomHashes uint = 7
)

// NameCache memoises search-by-name results and remembers every name
// ever inserted. The filter never forgets, so a deleted name only costs
// a scan; a name it has never seen cannot be in the tree.
type NameCache struct {
	ttl  time.Duration
	memo *cache.Cache
	seen *bloom.BloomFilter
}

// NewNameCache creates a cache; a ttl <= 0 keeps entries until the next
// mutation.
func NewNameCache(ttl time.Duration, bloomSize, bloomHashes uint) *NameCache {
	cleanup := 2 * ttl
	if ttl <= 0 {
		ttl = cache.NoExpiration
		cleanup = 0
	}
	return &NameCache{
		ttl:  ttl,
		memo: cache.New(ttl, cleanup),
		seen: bloom.New(bloomSize, bloomHashes),
	}
}

// NewDefaultNameCache creates a cache with the default sizing
func NewDefaultNameCache() *NameCache {
	return NewNameCache(DefaultNameLookupTTL, DefaultBloomSize, DefaultBloomHashes)
}

// Observe records that name is present in the tree
func (c *NameCache) Observe(name string) {
	c.seen.AddString(name)
}

// MaybeContains is false only when name was never observed
func (c *NameCache) MaybeContains(name string) bool {
	return c.seen.TestString(name)
}

func (c *NameCache) Set(name string, keys []string) {
	// Use Set instead of Add to allow overwriting
	c.memo.Set(name, keys, c.ttl)
}

func (c *NameCache) Get(name string) ([]string, bool) {
	val, ok := c.memo.Get(name)
	if !ok {
		return nil, false
	}
	return val.([]string), true
}

// Invalidate drops every memoised lookup
func (c *NameCache) Invalidate() {
	c.memo.Flush()
}

// Len - number of memoised lookups
func (c *NameCache) Len() int {
	return c.memo.ItemCount()
}
