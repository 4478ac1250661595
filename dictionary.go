// Package symspell implements single-word spelling correction using the
// Symmetric Delete (SymSpell) algorithm: a precomputed delete-variant
// index paired with a hash-keyed exact-match table, tuned for
// sub-millisecond interactive lookups against dictionaries with up to a
// few million entries.
package symspell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/symspell/symspell/internal/arena"
	"github.com/symspell/symspell/internal/deleteindex"
	"github.com/symspell/symspell/internal/deletegen"
	"github.com/symspell/symspell/internal/editdist"
	"github.com/symspell/symspell/internal/exacttable"
	"github.com/symspell/symspell/internal/xhash"
)

// maxCandidatesPerLookup bounds the slow-path candidate buffer, matching
// the reference implementation's MAX_CANDIDATES_PER_LOOKUP.
const maxCandidatesPerLookup = 10000

// Dictionary is a loaded SymSpell index. It is safe for concurrent Lookup
// calls (internally serialized); Load must complete before any Lookup,
// GetProbability, GetIWF, or Stats call, and must only be called once.
type Dictionary struct {
	cfg Config

	exact *exacttable.Table
	index *deleteindex.Index

	entryArena *arena.Structs[deleteindex.Bucket]
	strArena   *arena.Bytes

	loaded atomic.Bool

	mu           sync.Mutex
	gen          *deletegen.Generator
	variantBuf   []string
	candidateBuf []Suggestion
	cache        *lru.Cache[cacheKey, []Suggestion]

	wordCount   int
	maxFreqSeen uint64
}

type cacheKey struct {
	query string
	dist  int
	k     int
}

// New constructs a Dictionary per the given options. The returned
// Dictionary is not yet loaded; call Load before Lookup.
func New(opts ...Option) (*Dictionary, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.BFSQueueCapacity <= 0 {
		cfg.BFSQueueCapacity = deletegen.QueueCapacity
	}

	entryArenaBudget := cfg.ArenaSizeBytes / bucketStructSize
	entryArena := arena.NewStructs[deleteindex.Bucket]("entry-arena", entryArenaBudget)
	strArena := arena.NewBytes("string-arena", cfg.ArenaSizeBytes)

	d := &Dictionary{
		cfg:        cfg,
		exact:      exacttable.New(cfg.ExactTableSize),
		index:      deleteindex.New(deleteTableSize(cfg.MaxEditDistance), entryArena, strArena),
		entryArena: entryArena,
		strArena:   strArena,
		gen:        deletegen.New(cfg.BFSQueueCapacity),
		variantBuf: make([]string, 0, 512),
	}

	if cfg.SuggestionCacheSize > 0 {
		c, err := lru.New[cacheKey, []Suggestion](cfg.SuggestionCacheSize)
		if err != nil {
			return nil, fmt.Errorf("symspell: suggestion cache: %w", err)
		}
		d.cache = c
	}

	return d, nil
}

// bucketStructSize is a rough per-bucket struct overhead used only to size
// the entry arena's slot count from a byte budget; the arena itself stores
// typed Go values, not raw bytes, so this is an estimate, not an exact
// accounting.
const bucketStructSize = 64

// Load reads (term, frequency) records from r, one per line, with fields
// separated by runs of whitespace, and populates the dictionary. term is
// the field at termIndex, frequency the field at countIndex (both
// 0-based). A zero frequency is treated as 1. Malformed
// lines (too few fields, unparseable count) are skipped with a logged
// warning; the build continues. Load may only be called once per
// Dictionary.
func (d *Dictionary) Load(ctx context.Context, r io.Reader, termIndex, countIndex int) error {
	if d.loaded.Load() {
		return ErrAlreadyLoaded
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lineNum int
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNum++
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if termIndex >= len(fields) || countIndex >= len(fields) {
			d.cfg.Logger.Warnf("symspell: load: line %d: fewer than %d fields, skipping", lineNum, max(termIndex, countIndex)+1)
			continue
		}
		term := fields[termIndex]
		if len(term) == 0 || len(term) > MaxTermLength {
			d.cfg.Logger.Warnf("symspell: load: line %d: term length out of bounds, skipping", lineNum)
			continue
		}
		freq, err := strconv.ParseUint(fields[countIndex], 10, 64)
		if err != nil {
			d.cfg.Logger.Warnf("symspell: load: line %d: non-numeric count %q, skipping", lineNum, fields[countIndex])
			continue
		}
		if freq == 0 {
			freq = 1
		}
		term = asciiLower(term)

		if err := d.ingest(term, freq); err != nil {
			return err
		}

		if d.cfg.TrackTrueMaxFrequency {
			if freq > d.maxFreqSeen {
				d.maxFreqSeen = freq
			}
		} else if d.maxFreqSeen == 0 {
			// Reproduces the reference implementation's bug: max
			// frequency is seeded from the first record only.
			d.maxFreqSeen = freq
		}
		d.wordCount++

		if lineNum%1000 == 0 {
			loadFactor := float64(d.index.Len()) / float64(d.index.Cap())
			d.cfg.Logger.Infof("symspell: load: %d words, %d delete entries (%.1f%% full)", d.wordCount, d.index.Len(), loadFactor*100)
			if loadFactor > hashTableLoadWarningThreshold {
				d.cfg.Logger.Warnf("symspell: load: delete index %.1f%% full", loadFactor*100)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("symspell: load: %w", err)
	}

	d.exact.Finalize(d.maxFreqSeen)
	d.cfg.Logger.Infof("symspell: load complete: %d words, %d delete entries", d.wordCount, d.index.Len())

	d.loaded.Store(true)
	return nil
}

func (d *Dictionary) ingest(term string, freq uint64) error {
	hash := xhash.Sum64String(term)
	if err := d.exact.Insert(hash, freq); err != nil {
		return wrapBuildError("symspell: load: exact-match table", err)
	}

	variants, truncated := d.gen.Generate(term, d.cfg.MaxEditDistance, d.cfg.PrefixLength, d.variantBuf[:0])
	d.variantBuf = variants
	if truncated {
		d.cfg.Logger.Warnf("symspell: load: delete-variant BFS truncated at %d for term %q", d.cfg.BFSQueueCapacity, term)
	}
	for _, v := range variants {
		if err := d.index.Add(v, term, freq); err != nil {
			return wrapBuildError("symspell: load: delete index", err)
		}
	}
	return nil
}

// wrapBuildError maps an internal table/arena error onto the matching
// root-level sentinel (ErrArenaExhausted, ErrTableSaturated) so callers can
// errors.Is against a stable API regardless of which internal component
// hit the limit, while keeping the underlying error in the chain.
func wrapBuildError(where string, err error) error {
	switch {
	case errors.Is(err, arena.ErrExhausted):
		return fmt.Errorf("%s: %w: %w", where, ErrArenaExhausted, err)
	case errors.Is(err, exacttable.ErrSaturated), errors.Is(err, deleteindex.ErrSaturated):
		return fmt.Errorf("%s: %w: %w", where, ErrTableSaturated, err)
	default:
		return fmt.Errorf("%s: %w", where, err)
	}
}

// Lookup finds spelling suggestions for query. maxEditDistanceLookup
// further bounds the search beyond the dictionary's own MaxEditDistance;
// the effective bound is min(maxEditDistanceLookup, MaxEditDistance), and
// is additionally clamped to 1 for queries no longer than
// Config.ShortWordMaxLen. On an exact match, out[0] is filled with
// distance 0 and count 1 is returned regardless of maxEditDistanceLookup.
// Results are written into out; len(out) bounds how many suggestions are
// returned in RankSortedTopK mode (RankSingleBest always returns at most
// one). Returns (0, nil) for an empty query or no match.
func (d *Dictionary) Lookup(query string, maxEditDistanceLookup int, out []Suggestion) (int, error) {
	if !d.loaded.Load() {
		return 0, ErrNotLoaded
	}
	if len(query) == 0 || len(out) == 0 {
		return 0, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	q := asciiLower(query)
	if len(q) > MaxTermLength {
		return 0, nil
	}

	qHash := xhash.Sum64String(q)
	if slot, ok := d.exact.Lookup(qHash); ok {
		out[0] = Suggestion{Term: q, Distance: 0, Frequency: slot.Freq, Probability: slot.Prob, IWF: slot.IWF}
		return 1, nil
	}

	dEff := min(maxEditDistanceLookup, d.cfg.MaxEditDistance)
	if d.cfg.ShortWordMaxLen > 0 && len(q) <= d.cfg.ShortWordMaxLen {
		dEff = 1
	}

	if d.cache != nil {
		if cached, ok := d.cache.Get(cacheKey{query: q, dist: dEff, k: len(out)}); ok {
			n := copy(out, cached)
			return n, nil
		}
	}

	n := d.lookupSlow(q, dEff, out)

	if d.cache != nil {
		cached := make([]Suggestion, n)
		copy(cached, out[:n])
		d.cache.Add(cacheKey{query: q, dist: dEff, k: len(out)}, cached)
	}

	return n, nil
}

func (d *Dictionary) lookupSlow(q string, dEff int, out []Suggestion) int {
	variants, truncated := d.gen.Generate(q, dEff, d.cfg.PrefixLength, d.variantBuf[:0])
	d.variantBuf = variants
	if truncated {
		d.cfg.Logger.Warnf("symspell: lookup: delete-variant BFS truncated for query %q", q)
	}

	d.candidateBuf = d.candidateBuf[:0]
	for _, v := range variants {
		bucket, ok := d.index.Lookup(v)
		if !ok {
			continue
		}
		var stop bool
		bucket.Each(func(term string, freq uint64) {
			if stop || len(d.candidateBuf) >= maxCandidatesPerLookup {
				stop = true
				return
			}
			dist := editdist.Bounded(q, term, dEff)
			if dist > dEff {
				return
			}
			for i := range d.candidateBuf {
				if d.candidateBuf[i].Term == term {
					return
				}
			}
			d.candidateBuf = append(d.candidateBuf, Suggestion{Term: term, Distance: dist, Frequency: freq})
		})
	}

	if len(d.candidateBuf) == 0 {
		return 0
	}

	switch d.cfg.RankingMode {
	case RankSortedTopK:
		return d.rankSortedTopK(out)
	default:
		return d.rankSingleBest(out)
	}
}

func (d *Dictionary) rankSingleBest(out []Suggestion) int {
	best := d.candidateBuf[0]
	for _, c := range d.candidateBuf[1:] {
		if c.Distance < best.Distance || (c.Distance == best.Distance && c.Frequency > best.Frequency) {
			best = c
		}
	}
	d.fillProbability(&best)
	out[0] = best
	return 1
}

func (d *Dictionary) rankSortedTopK(out []Suggestion) int {
	sortCandidates(d.candidateBuf)
	n := len(d.candidateBuf)
	if n > len(out) {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		s := d.candidateBuf[i]
		d.fillProbability(&s)
		out[i] = s
	}
	return n
}

func (d *Dictionary) fillProbability(s *Suggestion) {
	hash := xhash.Sum64String(s.Term)
	if slot, ok := d.exact.Lookup(hash); ok {
		s.Probability = slot.Prob
		s.IWF = slot.IWF
	}
}

func sortCandidates(s []Suggestion) {
	// Insertion sort: candidate counts here are bounded by
	// maxCandidatesPerLookup but are overwhelmingly small in practice
	// (a handful of bucket hits), so a simple stable sort avoids pulling
	// in sort.Slice's reflection-based comparator for the common case.
	for i := 1; i < len(s); i++ {
		cur := s[i]
		j := i - 1
		for j >= 0 && less(cur, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = cur
	}
}

func less(a, b Suggestion) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	if a.Frequency != b.Frequency {
		return a.Frequency > b.Frequency
	}
	return a.Term < b.Term
}

// GetProbability returns the probability associated with hash, or 0.0 if
// hash is not present in the exact-match table.
func (d *Dictionary) GetProbability(hash uint64) float32 {
	if !d.loaded.Load() {
		return 0
	}
	slot, ok := d.exact.Lookup(hash)
	if !ok {
		return 0
	}
	return slot.Prob
}

// GetIWF returns the inverse word frequency for word, or 0.0 if word is
// not present in the exact-match table.
func (d *Dictionary) GetIWF(word string) float32 {
	if !d.loaded.Load() {
		return 0
	}
	hash := xhash.Sum64String(asciiLower(word))
	slot, ok := d.exact.Lookup(hash)
	if !ok {
		return 0
	}
	return slot.IWF
}

// Stats returns the number of unique exact-match entries and the number
// of occupied delete-index slots.
func (d *Dictionary) Stats() (wordCount, entryCount int, err error) {
	if !d.loaded.Load() {
		return 0, 0, ErrNotLoaded
	}
	return d.exact.Len(), d.index.Len(), nil
}

// Close releases the Dictionary's arenas. Both arenas are append-only and
// own all of their views, so release is O(1): there is nothing to walk
// and free piece by piece.
func (d *Dictionary) Close() error {
	d.entryArena = nil
	d.strArena = nil
	d.exact = nil
	d.index = nil
	d.cache = nil
	return nil
}

func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for ; i < len(b); i++ {
				if b[i] >= 'A' && b[i] <= 'Z' {
					b[i] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
