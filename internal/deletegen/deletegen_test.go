package deletegen

import (
	"sort"
	"testing"
)

func generateSorted(g *Generator, term string, d, prefixLen int) []string {
	out, _ := g.Generate(term, d, prefixLen, nil)
	sort.Strings(out)
	return out
}

func TestGenerateIncludesPrefixAndSelf(t *testing.T) {
	g := New(QueueCapacity)
	out := generateSorted(g, "hello", 1, 7)
	found := map[string]bool{}
	for _, v := range out {
		found[v] = true
	}
	if !found["hello"] {
		t.Error("expected the full prefix to be included")
	}
}

func TestGenerateDistanceOneDeletes(t *testing.T) {
	g := New(QueueCapacity)
	out, _ := g.Generate("helo", 1, 7, nil)
	want := map[string]bool{"helo": true, "elo": true, "hlo": true, "heo": true, "hel": true}
	got := map[string]bool{}
	for _, v := range out {
		got[v] = true
	}
	for w := range want {
		if !got[w] {
			t.Errorf("missing expected variant %q in %v", w, out)
		}
	}
}

func TestGenerateEmptyTerm(t *testing.T) {
	g := New(QueueCapacity)
	out, truncated := g.Generate("", 2, 7, nil)
	if len(out) != 0 || truncated {
		t.Fatalf("empty term should produce no variants, got %v truncated=%v", out, truncated)
	}
}

func TestGenerateEmptyVariantWhenPrefixWithinDistance(t *testing.T) {
	g := New(QueueCapacity)
	out, _ := g.Generate("ab", 2, 7, nil) // prefix "ab", len 2 <= d=2
	found := false
	for _, v := range out {
		if v == "" {
			found = true
		}
	}
	if !found {
		t.Error("expected empty-string variant when len(prefix) <= maxDist")
	}
}

func TestGenerateNoEmptyVariantWhenPrefixExceedsDistance(t *testing.T) {
	g := New(QueueCapacity)
	out, _ := g.Generate("hello", 1, 7, nil) // prefix "hello", len 5 > d=1
	for _, v := range out {
		if v == "" {
			t.Error("did not expect empty-string variant when prefixLength > maxDist")
		}
	}
}

func TestGenerateRespectsPrefixWindow(t *testing.T) {
	g := New(QueueCapacity)
	out, _ := g.Generate("abcdefghij", 1, 4, nil)
	for _, v := range out {
		if len(v) > 4 {
			t.Errorf("variant %q exceeds prefix window 4", v)
		}
	}
}

func TestGenerateDeduplicates(t *testing.T) {
	g := New(QueueCapacity)
	out, _ := g.Generate("aaaa", 2, 7, nil)
	seen := map[string]int{}
	for _, v := range out {
		seen[v]++
	}
	for v, c := range seen {
		if c > 1 {
			t.Errorf("variant %q emitted %d times, want unique", v, c)
		}
	}
}

func TestGenerateReusableAcrossCalls(t *testing.T) {
	g := New(QueueCapacity)
	buf := make([]string, 0, 64)
	out1, _ := g.Generate("hello", 1, 7, buf[:0])
	out2, _ := g.Generate("world", 1, 7, buf[:0])
	found := false
	for _, v := range out2 {
		if v == "world" {
			found = true
		}
	}
	if !found {
		t.Errorf("second Generate call should reflect its own term, got %v (first call result was %v)", out2, out1)
	}
}

func FuzzGenerateNoDuplicatesWithinPrefixWindow(f *testing.F) {
	f.Add("hello", 2, 7)
	f.Add("", 1, 7)
	f.Add("a", 3, 7)
	f.Add("abcdefghij", 2, 4)
	f.Fuzz(func(t *testing.T, term string, d, prefixLength int) {
		if d < 0 || d > 10 {
			t.Skip()
		}
		if prefixLength <= 0 || prefixLength > 32 {
			t.Skip()
		}
		if len(term) > 64 {
			t.Skip()
		}
		g := New(QueueCapacity)
		out, _ := g.Generate(term, d, prefixLength, nil)
		seen := map[string]bool{}
		for _, v := range out {
			if seen[v] {
				t.Fatalf("Generate(%q, %d, %d) emitted %q more than once", term, d, prefixLength, v)
			}
			seen[v] = true
			if len(v) > prefixLength {
				t.Fatalf("Generate(%q, %d, %d) emitted %q longer than prefix window", term, d, prefixLength, v)
			}
		}
	})
}

func BenchmarkGenerate(b *testing.B) {
	g := New(QueueCapacity)
	buf := make([]string, 0, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Generate("hello", 2, 7, buf[:0])
	}
}
