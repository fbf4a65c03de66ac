package common

import "testing"

func TestRand_Deterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 100; i++ {
		if a.Random() != b.Random() {
			t.Fatalf("Expected identical sequences from equal seeds, diverged at sample %d", i)
		}
	}
}

func TestRand_Reset(t *testing.T) {
	r := NewRand(7)
	first := r.Random()
	for i := 0; i < 10; i++ {
		r.Random()
	}

	r.Reset()
	if got := r.Random(); got != first {
		t.Errorf("Expected Reset to replay the sequence, got %f want %f", got, first)
	}
}

func TestRand_RandomRange(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 1000; i++ {
		v := r.Random()
		if v < 0 || v >= 1 {
			t.Fatalf("Expected Random in [0,1), got %f", v)
		}
	}
}

func TestRand_RandomFloatRange(t *testing.T) {
	r := NewRand(9)
	for i := 0; i < 1000; i++ {
		v := r.RandomFloat(-2.5, 4.0)
		if v < -2.5 || v >= 4.0 {
			t.Fatalf("Expected RandomFloat in [-2.5,4), got %f", v)
		}
	}
}

func TestRand_RandomIntRange(t *testing.T) {
	r := NewRand(3)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.RandomInt(5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("Expected RandomInt in [5,10), got %d", v)
		}
		seen[v] = true
	}
	if len(seen) < 5 {
		t.Errorf("Expected all values in [5,10) to appear over 1000 draws, saw %d", len(seen))
	}
}

func TestRand_ChanceExtremes(t *testing.T) {
	r := NewRand(11)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Expected Chance(0) to never fire")
		}
		if !r.Chance(1) {
			t.Fatal("Expected Chance(1) to always fire")
		}
	}
}
