package symspell

import "errors"

var (
	// ErrInvalidEditDistance is returned by New when MaxEditDistance is
	// outside {1, 2, 3}.
	ErrInvalidEditDistance = errors.New("symspell: invalid max edit distance")
	// ErrInvalidPrefixLength is returned by New when PrefixLength <= 0.
	ErrInvalidPrefixLength = errors.New("symspell: invalid prefix length")
	// ErrAlreadyLoaded is returned by Load when called on a Dictionary
	// that has already completed a successful Load. Online mutation
	// after load is a non-goal; dictionaries are build-once.
	ErrAlreadyLoaded = errors.New("symspell: dictionary already loaded")
	// ErrNotLoaded is returned by Lookup and Stats when called before Load
	// has completed. GetProbability and GetIWF have no error return; they
	// report the same not-loaded condition as a plain miss.
	ErrNotLoaded = errors.New("symspell: dictionary not loaded")
	// ErrArenaExhausted is returned by Load when a backing arena
	// (internal/arena) runs out of capacity. It wraps the underlying
	// internal/arena.ErrExhausted so callers can errors.Is against a
	// single root-level sentinel regardless of which arena hit the limit.
	ErrArenaExhausted = errors.New("symspell: arena exhausted")
	// ErrTableSaturated is returned by Load when a fixed-size hash table
	// (the exact-match table or the delete index) fills before every slot
	// needed for the dictionary could be placed. It wraps the internal
	// table's own saturation error.
	ErrTableSaturated = errors.New("symspell: hash table saturated")
)
