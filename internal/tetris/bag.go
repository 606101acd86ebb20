package tetris

import "math/rand"

// BagRandomizer deals tetromino kinds using the 7-bag system: each of the
// seven kinds appears exactly once per shuffled cycle. Two randomizers
// created with the same seed produce identical sequences.
type BagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagRandomizer creates a seeded 7-bag randomizer.
func NewBagRandomizer(seed int64) *BagRandomizer {
	return &BagRandomizer{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next kind, refilling and reshuffling the bag when empty.
func (b *BagRandomizer) Next() Kind {
	if len(b.bag) == 0 {
		b.refill()
	}
	k := b.bag[0]
	b.bag = b.bag[1:]
	return k
}

// Peek returns the upcoming n kinds without consuming them.
// Limited to one bag's worth of lookahead beyond the current bag.
func (b *BagRandomizer) Peek(n int) []Kind {
	for len(b.bag) < n && len(b.bag) < 2*kindCount {
		// Top up by appending a freshly shuffled bag.
		next := AllKinds()
		b.shuffle(next)
		b.bag = append(b.bag, next...)
	}
	if n > len(b.bag) {
		n = len(b.bag)
	}
	out := make([]Kind, n)
	copy(out, b.bag[:n])
	return out
}

func (b *BagRandomizer) refill() {
	b.bag = AllKinds()
	b.shuffle(b.bag)
}

// shuffle performs a Fisher-Yates shuffle.
func (b *BagRandomizer) shuffle(kinds []Kind) {
	for i := len(kinds) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		kinds[i], kinds[j] = kinds[j], kinds[i]
	}
}
