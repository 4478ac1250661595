// Command symspell-bench loads a dictionary file and either answers a
// batch of lookups passed on the command line or times repeated lookups
// against a word list, reporting latency percentiles.
//
// This is the CLI/benchmark-driver collaborator spec.md places out of
// scope for the core library; it exists only to exercise the library end
// to end from outside package symspell.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/symspell/symspell"
)

func main() {
	var (
		dictPath   = flag.String("dict", "", "path to dictionary file (term freq per line)")
		termIndex  = flag.Int("term-col", 0, "0-based column index of the term")
		countIndex = flag.Int("freq-col", 1, "0-based column index of the frequency")
		maxDist    = flag.Int("max-dist", 2, "maximum edit distance")
		prefixLen  = flag.Int("prefix-len", 7, "delete-variant prefix length")
		sorted     = flag.Bool("sorted", false, "use sorted top-k ranking instead of single-best")
		topK       = flag.Int("k", 5, "suggestions per query in sorted mode")
		bench      = flag.Bool("bench", false, "time repeated lookups of the remaining args instead of printing results")
	)
	flag.Parse()

	if *dictPath == "" {
		fmt.Fprintln(os.Stderr, "usage: symspell-bench -dict PATH [word ...]")
		os.Exit(2)
	}

	opts := []symspell.Option{
		symspell.WithMaxEditDistance(*maxDist),
		symspell.WithPrefixLength(*prefixLen),
		symspell.WithLogger(stderrLogger{}),
	}
	if *sorted {
		opts = append(opts, symspell.WithRankingMode(symspell.RankSortedTopK))
	}

	dict, err := symspell.New(opts...)
	if err != nil {
		log.Fatalf("symspell-bench: create dictionary: %v", err)
	}

	f, err := os.Open(*dictPath)
	if err != nil {
		log.Fatalf("symspell-bench: open %s: %v", *dictPath, err)
	}
	defer f.Close()

	start := time.Now()
	if err := dict.Load(context.Background(), f, *termIndex, *countIndex); err != nil {
		log.Fatalf("symspell-bench: load: %v", err)
	}
	words, entries, _ := dict.Stats()
	fmt.Printf("loaded %d words, %d delete entries in %s\n", words, entries, time.Since(start))

	queries := flag.Args()
	if len(queries) == 0 {
		return
	}

	k := 1
	if *sorted {
		k = *topK
	}
	out := make([]symspell.Suggestion, k)

	if *bench {
		runBench(dict, queries, out, *maxDist)
		return
	}

	for _, q := range queries {
		n, err := dict.Lookup(q, *maxDist, out)
		if err != nil {
			log.Fatalf("symspell-bench: lookup %q: %v", q, err)
		}
		if n == 0 {
			fmt.Printf("%s: no suggestions\n", q)
			continue
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s:", q)
		for _, s := range out[:n] {
			fmt.Fprintf(&sb, " %s(d=%d,freq=%d,p=%.6f,iwf=%.3f)", s.Term, s.Distance, s.Frequency, s.Probability, s.IWF)
		}
		fmt.Println(sb.String())
	}
}

func runBench(dict *symspell.Dictionary, queries []string, out []symspell.Suggestion, maxDist int) {
	durations := make([]time.Duration, 0, len(queries))
	for _, q := range queries {
		start := time.Now()
		if _, err := dict.Lookup(q, maxDist, out); err != nil {
			log.Fatalf("symspell-bench: lookup %q: %v", q, err)
		}
		durations = append(durations, time.Since(start))
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	fmt.Printf("n=%d p50=%s p90=%s p99=%s max=%s\n",
		len(durations),
		percentile(durations, 0.50),
		percentile(durations, 0.90),
		percentile(durations, 0.99),
		durations[len(durations)-1],
	)
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) {}
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any)  { fmt.Fprintf(os.Stderr, "WARN: "+format+"\n", args...) }
func (stderrLogger) Errorf(format string, args ...any) { fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...) }
