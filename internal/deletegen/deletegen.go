// Package deletegen implements the delete-variant generator: given a term,
// produces the set of distinct strings reachable by deleting 1..maxDist
// characters from its leading prefixLength-byte window.
//
// The algorithm is a breadth-first enumeration over strings, bounded by a
// fixed-capacity queue (see QueueCapacity) whose overflow truncates
// silently at the algorithm level — callers that care about truncation
// (symspell's Dictionary does, via its Logger) check the truncated result
// Generate returns.
package deletegen

import (
	"github.com/symspell/symspell/internal/strset"
)

// QueueCapacity bounds the BFS queue. For the parameter ranges SymSpell is
// designed for (prefix length <= 7, max distance <= 3) the true number of
// distinct deletes of a word's prefix never approaches this, so truncation
// is a defensive ceiling, not a normal occurrence.
const QueueCapacity = 10000

type queueItem struct {
	s     string
	depth int
}

// Generator holds reusable scratch state so repeated calls on the lookup
// hot path do not allocate. It is not safe for concurrent use; callers
// (symspell's Dictionary) serialize access with their own lock.
type Generator struct {
	seen     *strset.Set
	queue    []queueItem
	queueCap int
}

// New creates a Generator whose BFS queue holds at most queueCap items
// before truncating. Pass QueueCapacity for the reference default.
func New(queueCap int) *Generator {
	if queueCap <= 0 {
		queueCap = QueueCapacity
	}
	return &Generator{
		seen:     strset.New(queueCap),
		queue:    make([]queueItem, 0, queueCap),
		queueCap: queueCap,
	}
}

// Generate appends every distinct delete-variant of term (deleting 1..d
// characters from term's leading prefixLength-byte window, plus the
// prefix itself, plus the empty string when the prefix, i.e. the first
// min(len(term), prefixLength) bytes, is at most d bytes long) to out and
// returns the extended slice.
//
// truncated reports whether the bounded BFS queue filled before every
// reachable variant could be emitted.
func (g *Generator) Generate(term string, d, prefixLength int, out []string) (result []string, truncated bool) {
	if len(term) == 0 {
		return out, false
	}
	prefix := term
	if len(prefix) > prefixLength {
		prefix = prefix[:prefixLength]
	}

	g.seen.Reset()
	g.queue = g.queue[:0]

	emit := func(s string) {
		if g.seen.Add(s) {
			out = append(out, s)
		}
	}

	// The empty-string variant is only emitted when the whole prefix is
	// within d deletes of nothing — i.e. len(prefix) <= d. This conflates
	// many short words under one bucket; retained for parity with the
	// reference algorithm (see symspell's design notes).
	if len(prefix) <= d {
		emit("")
	}
	emit(prefix)

	g.queue = append(g.queue, queueItem{s: prefix, depth: 0})
	qi := 0
	truncatedOut := false

	for qi < len(g.queue) {
		cur := g.queue[qi]
		qi++
		if cur.depth >= d || len(cur.s) <= 1 {
			continue
		}
		for i := 0; i < len(cur.s); i++ {
			variant := cur.s[:i] + cur.s[i+1:]
			emit(variant)
			if len(g.queue) >= g.queueCap {
				truncatedOut = true
				continue
			}
			if !g.queueContains(qi, variant) {
				g.queue = append(g.queue, queueItem{s: variant, depth: cur.depth + 1})
			}
		}
	}

	return out, truncatedOut
}

func (g *Generator) queueContains(from int, s string) bool {
	for i := from; i < len(g.queue); i++ {
		if g.queue[i].s == s {
			return true
		}
	}
	return false
}
