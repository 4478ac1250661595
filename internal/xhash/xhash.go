// Package xhash provides the 64-bit keyed hash primitive used to key both
// the exact-match table and the delete index.
package xhash

import "github.com/cespare/xxhash/v2"

// Sum64 returns a 64-bit avalanche-quality hash of b. It is deterministic
// across runs and platforms for identical input.
//
// Zero is reserved as the "empty slot" sentinel by the open-addressed
// tables built on top of this hash. A non-empty input hashing to exactly
// zero is possible but astronomically unlikely (2^-64) and is not handled
// here: deleteindex marks occupancy by a non-nil bucket and is unaffected,
// while exacttable treats hash 0 as an empty slot and accepts the risk.
func Sum64(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Sum64String is the string-input counterpart of Sum64, avoiding a copy
// into a byte slice on the hot lookup path.
func Sum64String(s string) uint64 {
	return xxhash.Sum64String(s)
}
