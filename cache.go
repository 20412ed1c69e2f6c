/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package modusgeo

import (
	"github.com/dgraph-io/ristretto/v2"
)

// RegionCache caches built Regions keyed by the raw filter bytes they were
// decoded from. Query layers tend to re-parse identical filters on every
// request; since Regions are immutable, a cached value can be handed to any
// number of concurrent scans.
type RegionCache struct {
	cache *ristretto.Cache[string, Region]
}

// NewRegionCache creates a RegionCache holding up to maxEntries regions,
// with admission managed by ristretto's TinyLFU policy.
func NewRegionCache(maxEntries int64) (*RegionCache, error) {
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, Region]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &RegionCache{cache: cache}, nil
}

// Get returns the cached Region for the given raw filter, if present.
func (rc *RegionCache) Get(key string) (Region, bool) {
	return rc.cache.Get(key)
}

// Set stores a Region under the given raw filter key. Admission is
// best-effort; a rejected set only costs a rebuild on the next lookup.
func (rc *RegionCache) Set(key string, region Region) {
	rc.cache.Set(key, region, 1)
}

// Wait blocks until pending sets have been applied. Mostly useful in tests.
func (rc *RegionCache) Wait() {
	rc.cache.Wait()
}

// Close releases the cache's resources.
func (rc *RegionCache) Close() {
	rc.cache.Close()
}
