package tetris

import "math/rand"

// Randomizer picks upcoming shapes. Consecutive shapes never repeat.
type Randomizer struct {
	rng *rand.Rand
}

// NewRandomizer creates a randomizer seeded for reproducible sequences.
func NewRandomizer(seed int64) *Randomizer {
	return &Randomizer{rng: rand.New(rand.NewSource(seed))}
}

// First returns a uniformly random shape.
func (r *Randomizer) First() Shape {
	return AllShapes[r.rng.Intn(ShapeCount)]
}

// Next returns a random shape different from prev.
func (r *Randomizer) Next(prev Shape) Shape {
	i := r.rng.Intn(ShapeCount - 1)
	if i >= int(prev) {
		i++
	}
	return AllShapes[i]
}
