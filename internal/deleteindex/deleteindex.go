// Package deleteindex implements the primary SymSpell index: an
// open-addressed table mapping a delete-variant string to the bucket of
// (word, frequency) pairs that produced it.
//
// Unlike exacttable, probing here compares variant bytes, not just hash,
// because delete-variants are short and structurally similar enough that
// hash collisions would otherwise pollute candidate sets (see package
// symspell's design notes).
package deleteindex

import (
	"fmt"

	"github.com/symspell/symspell/internal/arena"
	"github.com/symspell/symspell/internal/xhash"
)

const initialWordCapacity = 4

// word is one (term, frequency) pair inside a bucket.
type word struct {
	term string
	freq uint64
}

// Bucket holds every source word that produced a given delete-variant.
type Bucket struct {
	variant string
	words   []word
}

// Variant returns the delete-variant string this bucket is keyed by.
func (b *Bucket) Variant() string { return b.variant }

// Len returns the number of distinct words in the bucket.
func (b *Bucket) Len() int { return len(b.words) }

// Each calls fn once per (term, frequency) pair in the bucket.
func (b *Bucket) Each(fn func(term string, freq uint64)) {
	for _, w := range b.words {
		fn(w.term, w.freq)
	}
}

// ErrSaturated is returned by Add when the table is full and the
// requested variant is not already present.
var ErrSaturated = fmt.Errorf("deleteindex: table saturated")

type slot struct {
	hash   uint64
	bucket *Bucket
}

// Index is a fixed-capacity, linear-probed table of delete-variant
// buckets. Bucket structs and all variant and term bytes live in
// caller-supplied arenas; each bucket's word list is an ordinary Go slice
// that grows with append.
type Index struct {
	slots      []slot
	entryArena *arena.Structs[Bucket]
	strArena   *arena.Bytes
	entries    int
}

// New creates an Index with the given fixed slot count, backed by the
// provided arenas for bucket structs and string bytes respectively.
func New(size int, entryArena *arena.Structs[Bucket], strArena *arena.Bytes) *Index {
	return &Index{slots: make([]slot, size), entryArena: entryArena, strArena: strArena}
}

// Len returns the number of occupied delete-variant slots.
func (ix *Index) Len() int { return ix.entries }

// Cap returns the index's fixed slot count.
func (ix *Index) Cap() int { return len(ix.slots) }

// Add records that word produced the delete-variant, with the given
// source frequency. If the word already appears in the variant's bucket,
// its frequency is updated to max(existing, freq).
func (ix *Index) Add(variant string, wordTerm string, freq uint64) error {
	h := xhash.Sum64String(variant)
	n := len(ix.slots)
	idx := int(h % uint64(n))
	for i := 0; i < n; i++ {
		pos := (idx + i) % n
		s := &ix.slots[pos]
		if s.bucket == nil {
			b, err := ix.entryArena.New()
			if err != nil {
				return err
			}
			v, err := ix.strArena.PutString(variant)
			if err != nil {
				return err
			}
			b.variant = v
			b.words = make([]word, 0, initialWordCapacity)
			if err := appendWord(ix.strArena, b, wordTerm, freq); err != nil {
				return err
			}
			s.hash = h
			s.bucket = b
			ix.entries++
			return nil
		}
		if s.hash == h && s.bucket.variant == variant {
			return appendWord(ix.strArena, s.bucket, wordTerm, freq)
		}
	}
	return fmt.Errorf("%w: at capacity %d", ErrSaturated, n)
}

func appendWord(strArena *arena.Bytes, b *Bucket, term string, freq uint64) error {
	for i := range b.words {
		if b.words[i].term == term {
			if freq > b.words[i].freq {
				b.words[i].freq = freq
			}
			return nil
		}
	}
	v, err := strArena.PutString(term)
	if err != nil {
		return err
	}
	b.words = append(b.words, word{term: v, freq: freq})
	return nil
}

// Lookup returns the bucket for variant and true on a hit, or nil and
// false on a miss (probing stops at the first empty slot).
func (ix *Index) Lookup(variant string) (*Bucket, bool) {
	h := xhash.Sum64String(variant)
	n := len(ix.slots)
	idx := int(h % uint64(n))
	for i := 0; i < n; i++ {
		pos := (idx + i) % n
		s := ix.slots[pos]
		if s.bucket == nil {
			return nil, false
		}
		if s.hash == h && s.bucket.variant == variant {
			return s.bucket, true
		}
	}
	return nil, false
}
