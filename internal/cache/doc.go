// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

/*
Package cache provides a bounded, thread-safe LRU map used to memoize
expensive scoring intermediates (pairwise business similarities and per-user
mean ratings).

The dataset behind those values never changes while the process runs, so
entries carry no TTL: they leave the cache only through LRU eviction or Clear.

	c := cache.NewLRU[string, float64](50000)
	c.Add("westlake|b1|b2", 0.25)
	if v, ok := c.Get("westlake|b1|b2"); ok {
	    ...
	}
*/
package cache
