package strset

import "testing"

func TestAddContains(t *testing.T) {
	s := New(4)
	if s.Contains("a") {
		t.Fatal("empty set contains a")
	}
	if !s.Add("a") {
		t.Fatal("Add(a) should report new")
	}
	if s.Add("a") {
		t.Fatal("Add(a) second time should report not new")
	}
	if !s.Contains("a") {
		t.Fatal("set should contain a")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestEmptyStringMember(t *testing.T) {
	s := New(4)
	if s.Contains("") {
		t.Fatal("empty set contains empty string")
	}
	if !s.Add("") {
		t.Fatal("Add(\"\") should report new")
	}
	if !s.Contains("") {
		t.Fatal("set should contain empty string")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestReset(t *testing.T) {
	s := New(4)
	s.Add("a")
	s.Add("")
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", s.Len())
	}
	if s.Contains("a") || s.Contains("") {
		t.Fatal("set should be empty after Reset")
	}
}

func TestGrowBeyondInitialCapacity(t *testing.T) {
	s := New(2)
	words := []string{"a", "ab", "abc", "abcd", "abcde", "abcdef", "abcdefg", "abcdefgh"}
	for _, w := range words {
		if !s.Add(w) {
			t.Fatalf("Add(%q) should report new", w)
		}
	}
	for _, w := range words {
		if !s.Contains(w) {
			t.Fatalf("set should contain %q after growth", w)
		}
	}
	if s.Len() != len(words) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(words))
	}
}
