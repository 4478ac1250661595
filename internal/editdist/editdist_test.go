package editdist

import "testing"

func TestBoundedExact(t *testing.T) {
	cases := []struct {
		a, b string
		max  int
		want int
	}{
		{"hello", "hello", 2, 0},
		{"helo", "hello", 2, 1},
		{"help", "helpp", 2, 1},
		{"receive", "recieve", 2, 1}, // transposition
		{"", "", 2, 0},
		{"", "abc", 2, 3},
		{"abc", "", 2, 3},
		{"kitten", "sitting", 3, 3},
		{"abc", "yabc", 1, 1},
	}
	for _, c := range cases {
		got := Bounded(c.a, c.b, c.max)
		if got != c.want {
			t.Errorf("Bounded(%q, %q, %d) = %d, want %d", c.a, c.b, c.max, got, c.want)
		}
	}
}

func TestBoundedEarlyTermination(t *testing.T) {
	// length difference alone exceeds max
	if got := Bounded("a", "abcdef", 2); got != 3 {
		t.Errorf("got %d, want miss sentinel 3", got)
	}
	// distance genuinely exceeds max
	if got := Bounded("xyzzzz", "hello", 2); got != 3 {
		t.Errorf("got %d, want miss sentinel 3", got)
	}
}

func TestBoundedLongStringsNonMatchable(t *testing.T) {
	long := make([]byte, MaxLen)
	for i := range long {
		long[i] = 'a'
	}
	if got := Bounded(string(long), "a", 2); got != 3 {
		t.Errorf("got %d, want miss sentinel for over-length input", got)
	}
}

func TestBoundedSymmetric(t *testing.T) {
	pairs := [][2]string{{"hello", "helo"}, {"receive", "recieve"}, {"kitten", "sitting"}}
	for _, p := range pairs {
		d1 := Bounded(p[0], p[1], 5)
		d2 := Bounded(p[1], p[0], 5)
		if d1 != d2 {
			t.Errorf("Bounded(%q,%q)=%d != Bounded(%q,%q)=%d", p[0], p[1], d1, p[1], p[0], d2)
		}
	}
}

func FuzzBoundedNeverExceedsMaxPlusOne(f *testing.F) {
	f.Add("hello", "world", 2)
	f.Add("", "", 1)
	f.Add("abc", "abcd", 3)
	f.Fuzz(func(t *testing.T, a, b string, maxDist int) {
		if maxDist < 0 || maxDist > 10 {
			t.Skip()
		}
		if len(a) > 200 || len(b) > 200 {
			t.Skip()
		}
		got := Bounded(a, b, maxDist)
		if got > maxDist+1 {
			t.Fatalf("Bounded(%q, %q, %d) = %d, exceeds maxDist+1", a, b, maxDist, got)
		}
		if got < 0 {
			t.Fatalf("Bounded(%q, %q, %d) = %d, negative", a, b, maxDist, got)
		}
	})
}

func BenchmarkBoundedShortStrings(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Bounded("hello", "helo", 2)
	}
}
