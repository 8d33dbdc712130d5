package rng

import "time"

// Seeder supplies the initial generator state.
type Seeder interface {
	Seed() uint64
}

// TimeSeeder seeds from the wall clock's nanosecond reading.
//
// Thread-safety: TimeSeeder is stateless and safe for concurrent use.
type TimeSeeder struct{}

// Seed returns the current Unix time in nanoseconds.
func (TimeSeeder) Seed() uint64 {
	return uint64(time.Now().UnixNano())
}

// FixedSeeder returns the same seed on every call.
//
// Example:
//
//	r := rng.New(rng.FixedSeeder(42).Seed())
type FixedSeeder uint64

// Seed returns s.
func (s FixedSeeder) Seed() uint64 {
	return uint64(s)
}
