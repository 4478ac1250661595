// Package exacttable implements the fixed-size, open-addressed exact-match
// table: term hash -> (frequency, probability, inverse word frequency).
//
// Slots are compared by hash alone (never by the original bytes) per the
// documented accepted risk: with a 64-bit avalanche hash and dictionaries
// of at most a few million words, the collision probability is negligible,
// and the reference C implementation this was distilled from makes the
// same tradeoff.
package exacttable

import (
	"fmt"
	"math"
)

// ErrSaturated is returned by Insert when the table is full and the
// requested hash is not already present.
var ErrSaturated = fmt.Errorf("exacttable: table saturated")

// Slot is one occupied or empty entry. Hash == 0 means empty.
type Slot struct {
	Hash uint64
	Freq uint64
	Prob float32
	IWF  float32
}

// Table is a fixed-capacity, linear-probed open-addressed table.
type Table struct {
	slots []Slot
	count int
}

// New creates a Table with the given fixed slot count. size should be a
// prime chosen so that the expected word count keeps load factor <= 0.5
// (see the primes named in symspell's top-level Config).
func New(size int) *Table {
	return &Table{slots: make([]Slot, size)}
}

// Len returns the number of occupied slots.
func (t *Table) Len() int { return t.count }

// Cap returns the table's fixed slot count.
func (t *Table) Cap() int { return len(t.slots) }

// Insert writes (hash, freq) into the table. If hash is already present,
// its frequency is updated to max(existing, freq). Returns an error if the
// table is saturated and hash is not already present.
func (t *Table) Insert(hash uint64, freq uint64) error {
	n := len(t.slots)
	idx := int(hash % uint64(n))
	for i := 0; i < n; i++ {
		pos := (idx + i) % n
		s := &t.slots[pos]
		if s.Hash == 0 {
			s.Hash = hash
			s.Freq = freq
			t.count++
			return nil
		}
		if s.Hash == hash {
			if freq > s.Freq {
				s.Freq = freq
			}
			return nil
		}
	}
	return fmt.Errorf("%w: at capacity %d", ErrSaturated, n)
}

// Lookup returns the slot for hash and true on a hit, or the zero Slot and
// false on a miss (probing stops at the first empty slot).
func (t *Table) Lookup(hash uint64) (Slot, bool) {
	n := len(t.slots)
	idx := int(hash % uint64(n))
	for i := 0; i < n; i++ {
		pos := (idx + i) % n
		s := t.slots[pos]
		if s.Hash == 0 {
			return Slot{}, false
		}
		if s.Hash == hash {
			return s, true
		}
	}
	return Slot{}, false
}

// Finalize computes probability and IWF for every occupied slot, using
// maxFreq as the normalizing denominator.
func (t *Table) Finalize(maxFreq uint64) {
	if maxFreq == 0 {
		return
	}
	for i := range t.slots {
		s := &t.slots[i]
		if s.Hash == 0 {
			continue
		}
		prob := float32(s.Freq) / float32(maxFreq)
		s.Prob = prob
		s.IWF = iwf(prob)
	}
}

// iwf computes the inverse word frequency score for a probability,
// returning the 99.0 sentinel when probability is not positive.
func iwf(prob float32) float32 {
	if prob > 0 {
		v := -math.Log(float64(prob))
		return float32(math.Abs(v))
	}
	return 99.0
}
