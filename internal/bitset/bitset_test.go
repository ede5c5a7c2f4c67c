package bitset

import "testing"

func TestSetClearTest(t *testing.T) {
	s := New(70)
	s.Set(0)
	s.Set(63)
	s.Set(64)
	s.Set(69)
	for _, i := range []int{0, 63, 64, 69} {
		if !s.Test(i) {
			t.Fatalf("expected bit %d set", i)
		}
	}
	if s.Test(1) || s.Test(65) {
		t.Fatalf("unexpected bit set")
	}
	s.Clear(64)
	if s.Test(64) {
		t.Fatalf("bit 64 should be cleared")
	}
}

func TestSetAllMasksTail(t *testing.T) {
	s := New(70)
	s.SetAll()
	if s.PopCount() != 70 {
		t.Fatalf("PopCount after SetAll = %d, want 70", s.PopCount())
	}
	for i := 70; i < 128; i++ {
		if s.Test(i) {
			t.Fatalf("pad bit %d should not be set", i)
		}
	}
}

func TestAndOrAndNot(t *testing.T) {
	a := New(8)
	b := New(8)
	a.Set(1)
	a.Set(2)
	a.Set(3)
	b.Set(2)
	b.Set(3)
	b.Set(4)

	and := New(8)
	and.And(a, b)
	if got := and.Slice(); !equalInts(got, []int{2, 3}) {
		t.Fatalf("And = %v, want [2 3]", got)
	}

	or := New(8)
	or.Or(a, b)
	if got := or.Slice(); !equalInts(got, []int{1, 2, 3, 4}) {
		t.Fatalf("Or = %v, want [1 2 3 4]", got)
	}

	andNot := New(8)
	andNot.AndNot(a, b)
	if got := andNot.Slice(); !equalInts(got, []int{1}) {
		t.Fatalf("AndNot = %v, want [1]", got)
	}
}

func TestLowestAndClearLowest(t *testing.T) {
	s := New(130)
	if s.Lowest() != -1 {
		t.Fatalf("Lowest of empty set should be -1")
	}
	s.Set(5)
	s.Set(129)
	if got := s.Lowest(); got != 5 {
		t.Fatalf("Lowest = %d, want 5", got)
	}
	if got := s.ClearLowest(); got != 5 {
		t.Fatalf("ClearLowest = %d, want 5", got)
	}
	if got := s.Lowest(); got != 129 {
		t.Fatalf("Lowest after clear = %d, want 129", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := New(8)
	a.Set(3)
	b := a.Clone()
	b.Set(4)
	if a.Test(4) {
		t.Fatalf("mutating clone should not affect original")
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
