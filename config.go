package symspell

import "fmt"

// RankingMode selects how Lookup resolves multiple surviving candidates on
// the slow path. Both are exposed as runtime options rather than a build
// flag, per the reference implementation's DO_SORT compile define.
type RankingMode int

const (
	// RankSingleBest does a single pass selecting the candidate minimizing
	// (distance, -frequency); it is the default and matches the reference
	// implementation's non-DO_SORT build.
	RankSingleBest RankingMode = iota
	// RankSortedTopK orders surviving candidates by (distance ascending,
	// frequency descending, term ascending) and returns up to k of them;
	// it matches the reference implementation's DO_SORT build.
	RankSortedTopK
)

const (
	defaultPrefixLength   = 7
	defaultShortWordMax   = 4
	defaultArenaSizeBytes = 128 * 1024 * 1024
	defaultExactTableSize = 524287

	// hashTableLoadWarningThreshold mirrors the reference implementation's
	// HASH_TABLE_LOAD_WARNING_THRESHOLD: a load-factor above this on the
	// delete index is logged as a warning during Load, since the table
	// never resizes.
	hashTableLoadWarningThreshold = 0.75
)

// deleteTableSize returns the fixed prime slot count for the delete index
// at the given max edit distance, per the reference implementation's
// precomputed table sizes.
func deleteTableSize(maxEditDistance int) int {
	switch maxEditDistance {
	case 1:
		return 524287
	case 2:
		return 4194301
	default:
		return 33554393
	}
}

// Logger is the structured-logging hook symspell uses for build
// diagnostics and warnings. A caller that does not supply one via
// WithLogger gets a no-op implementation.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}

// Config holds the construction-time parameters for a Dictionary.
type Config struct {
	// MaxEditDistance bounds the delete-variant generation depth used
	// when building the dictionary. Must be 1, 2, or 3.
	MaxEditDistance int
	// PrefixLength is the leading-character window delete-variants are
	// generated within. Must be > 0.
	PrefixLength int
	// RankingMode selects single-best or sorted-top-k candidate
	// resolution on the slow lookup path.
	RankingMode RankingMode
	// ShortWordMaxLen is the query-length threshold at or below which the
	// effective lookup distance is clamped to 1, a correctness-affecting
	// heuristic carried from the reference implementation (see DESIGN.md).
	// Zero disables the clamp. Defaults to 4.
	ShortWordMaxLen int
	// TrackTrueMaxFrequency, when true (the default), computes max
	// frequency as the running maximum across every loaded record before
	// Finalize. The reference C implementation instead seeds max
	// frequency from the first record it sees, which over-scales every
	// other word's probability whenever the first word isn't the most
	// frequent; set this to false only to reproduce that behavior.
	TrackTrueMaxFrequency bool
	// ArenaSizeBytes sizes both the string arena and the delete-bucket
	// struct arena. Defaults to 128 MiB, matching the reference
	// implementation's STRING_ARENA_SIZE/ENTRY_ARENA_SIZE.
	ArenaSizeBytes int
	// ExactTableSize is the fixed slot count of the exact-match table.
	// Defaults to 524287.
	ExactTableSize int
	// BFSQueueCapacity bounds the delete-variant BFS queue. Defaults to
	// deletegen.QueueCapacity (10000).
	BFSQueueCapacity int
	// SuggestionCacheSize bounds an optional LRU cache of recent
	// slow-path lookups (query+distance+len(out) -> resolved suggestions), sitting
	// in front of the bucket-probe/verify work. Zero (the default)
	// disables it. A cache hit always returns exactly what a fresh
	// slow-path lookup would return.
	SuggestionCacheSize int
	// Logger receives build and lookup diagnostics. Defaults to a no-op.
	Logger Logger
}

// Option configures a Dictionary at construction time.
type Option func(*Config)

// WithMaxEditDistance sets the maximum edit distance the dictionary is
// built for.
func WithMaxEditDistance(d int) Option {
	return func(c *Config) { c.MaxEditDistance = d }
}

// WithPrefixLength sets the delete-variant generation prefix window.
func WithPrefixLength(n int) Option {
	return func(c *Config) { c.PrefixLength = n }
}

// WithRankingMode selects single-best or sorted-top-k ranking.
func WithRankingMode(m RankingMode) Option {
	return func(c *Config) { c.RankingMode = m }
}

// WithShortWordMaxLen overrides the short-word distance clamp threshold.
func WithShortWordMaxLen(n int) Option {
	return func(c *Config) { c.ShortWordMaxLen = n }
}

// WithLegacyMaxFrequency reproduces the reference implementation's
// first-record max-frequency bug instead of tracking the true maximum.
func WithLegacyMaxFrequency() Option {
	return func(c *Config) { c.TrackTrueMaxFrequency = false }
}

// WithArenaSize overrides the byte capacity of both backing arenas.
func WithArenaSize(bytes int) Option {
	return func(c *Config) { c.ArenaSizeBytes = bytes }
}

// WithExactTableSize overrides the exact-match table's fixed slot count.
func WithExactTableSize(size int) Option {
	return func(c *Config) { c.ExactTableSize = size }
}

// WithBFSQueueCapacity overrides the delete-variant BFS queue bound.
func WithBFSQueueCapacity(n int) Option {
	return func(c *Config) { c.BFSQueueCapacity = n }
}

// WithSuggestionCache enables a bounded LRU cache of size entries in
// front of the slow lookup path.
func WithSuggestionCache(size int) Option {
	return func(c *Config) { c.SuggestionCacheSize = size }
}

// WithLogger sets the structured logger used for build/lookup
// diagnostics.
func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func defaultConfig() Config {
	return Config{
		MaxEditDistance:       2,
		PrefixLength:          defaultPrefixLength,
		RankingMode:           RankSingleBest,
		ShortWordMaxLen:       defaultShortWordMax,
		TrackTrueMaxFrequency: true,
		ArenaSizeBytes:        defaultArenaSizeBytes,
		ExactTableSize:        defaultExactTableSize,
		Logger:                noopLogger{},
	}
}

func (c Config) validate() error {
	if c.MaxEditDistance < 1 || c.MaxEditDistance > 3 {
		return fmt.Errorf("%w: max edit distance must be 1, 2, or 3, got %d", ErrInvalidEditDistance, c.MaxEditDistance)
	}
	if c.PrefixLength <= 0 {
		return fmt.Errorf("%w: prefix length must be > 0, got %d", ErrInvalidPrefixLength, c.PrefixLength)
	}
	return nil
}
