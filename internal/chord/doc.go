// Package chord holds the jazz chord catalog and renders random chord labels.
//
// The catalog is closed and fixed at build time: 12 root names (sharp
// spelling), 8 chord archetypes and 3 upper extensions. Every pick is
// Source.Next() modulo the table size. The small modulo bias is accepted and
// must not be corrected, because it would change which label a given seed
// produces.
//
// A rendered line looks like:
//
//	        Dominant | (4, 3, 3) | F♯7 13 (♭9, ♯11)
//
// The name is right-aligned to 16 columns ("Diminished Major" is the longest).
package chord
