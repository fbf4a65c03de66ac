package common

// Rand implements a Mulberry32 seeded pseudo-random number generator.
// Produces deterministic sequences so a whole game session can be
// replayed from a single uint32 seed.
type Rand struct {
	state       uint32
	initialSeed uint32
}

// NewRand creates a new seeded random number generator.
func NewRand(seed uint32) *Rand {
	return &Rand{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *Rand) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Reset resets the generator to its initial seed.
func (r *Rand) Reset() {
	r.state = r.initialSeed
}

// Random generates the next random number using the Mulberry32 algorithm.
// Returns a float64 between 0 (inclusive) and 1 (exclusive).
func (r *Rand) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64((t^(t>>14))>>0) / 4294967296.0
}

// RandomInt generates a random integer in the range [min, max).
func (r *Rand) RandomInt(min, max int) int {
	return int(r.Random()*float64(max-min)) + min
}

// RandomFloat generates a random float in the range [min, max).
func (r *Rand) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// Chance returns true with probability p. p <= 0 never fires, p >= 1
// always fires.
func (r *Rand) Chance(p float64) bool {
	return r.Random() < p
}
