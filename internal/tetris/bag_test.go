package tetris

import "testing"

func TestBagDealsEachKindOncePerCycle(t *testing.T) {
	bag := NewBagRandomizer(42)

	for cycle := 0; cycle < 3; cycle++ {
		counts := make(map[Kind]int)
		for i := 0; i < kindCount; i++ {
			counts[bag.Next()]++
		}
		for _, kind := range AllKinds() {
			if counts[kind] != 1 {
				t.Errorf("cycle %d: %s dealt %d times, want 1", cycle, kind, counts[kind])
			}
		}
	}
}

func TestBagDeterministicPerSeed(t *testing.T) {
	a := NewBagRandomizer(12345)
	b := NewBagRandomizer(12345)

	for i := 0; i < 28; i++ {
		ka, kb := a.Next(), b.Next()
		if ka != kb {
			t.Fatalf("draw %d: sequences diverge (%s vs %s)", i, ka, kb)
		}
	}
}

func TestBagPeekDoesNotConsume(t *testing.T) {
	bag := NewBagRandomizer(7)

	preview := bag.Peek(3)
	if len(preview) != 3 {
		t.Fatalf("Peek(3) returned %d kinds", len(preview))
	}

	for i, want := range preview {
		got := bag.Next()
		if got != want {
			t.Errorf("draw %d = %s, want previewed %s", i, got, want)
		}
	}
}

func TestBagPeekAcrossRefill(t *testing.T) {
	bag := NewBagRandomizer(99)

	// Drain most of the first bag, then peek past its end.
	for i := 0; i < kindCount-1; i++ {
		bag.Next()
	}
	preview := bag.Peek(3)
	if len(preview) != 3 {
		t.Fatalf("Peek(3) across refill returned %d kinds", len(preview))
	}
	for i, want := range preview {
		if got := bag.Next(); got != want {
			t.Errorf("draw %d = %s, want previewed %s", i, got, want)
		}
	}
}
