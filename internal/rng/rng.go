package rng

// warmup is the number of outputs discarded by New.
// A raw xorshift seeded with few set bits produces visibly patterned
// first values.
const warmup = 32

// Rng is a 64-bit xorshift generator (shifts 13, 17, 43).
//
// A zero seed is a fixed point: every output is 0.
type Rng struct {
	state uint64
}

// New creates a generator from seed and discards the first 32 outputs.
func New(seed uint64) *Rng {
	r := &Rng{state: seed}
	for i := 0; i < warmup; i++ {
		r.Next()
	}
	return r
}

// Next returns the current state and advances the generator.
func (r *Rng) Next() uint64 {
	ret := r.state
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 43
	return ret
}
