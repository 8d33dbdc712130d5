// Package rng provides the pseudo-random generator behind chord selection.
//
// The generator is a 64-bit xorshift. It is not safe for concurrent use and
// is not suitable for anything security related; a single instance is owned
// by one run of the command.
//
// Seeds come from a Seeder. Production code uses TimeSeeder; tests and
// reproducible runs use FixedSeeder.
package rng
