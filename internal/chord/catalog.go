package chord

import (
	"fmt"
	"slices"
)

// Source is the random draw stream used by the pickers and the formatter.
// *rng.Rng satisfies it.
type Source interface {
	Next() uint64
}

// Intervals are the semitone steps stacked on the root to build the chord.
type Intervals [3]uint8

// String renders the intervals as "(4, 3, 4)".
func (iv Intervals) String() string {
	return fmt.Sprintf("(%d, %d, %d)", iv[0], iv[1], iv[2])
}

// Archetype is a chord quality with its notation.
//
// AllowedAlterations is shared with the catalog; callers must not modify it.
type Archetype struct {
	Intervals          Intervals
	Name               string // display label, at most 16 characters
	Suffix             string // appended to the root, e.g. "m7"
	AllowsExtensions   bool
	AllowedAlterations []string
}

var roots = [...]string{"A", "A♯", "B", "C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯"}

var extensions = [...]string{"9", "11", "13"}

// Draw indices depend on this order.
var catalog = [...]Archetype{
	{Intervals: Intervals{4, 3, 4}, Name: "Major", Suffix: "maj7",
		AllowsExtensions: true, AllowedAlterations: []string{"♯11", "♭13"}},
	{Intervals: Intervals{3, 4, 3}, Name: "Minor", Suffix: "m7",
		AllowsExtensions: true, AllowedAlterations: []string{"♭9", "♯11"}},
	{Intervals: Intervals{4, 3, 3}, Name: "Dominant", Suffix: "7",
		AllowsExtensions: true, AllowedAlterations: []string{"♭9", "♯9", "♯11", "♭13"}},
	{Intervals: Intervals{3, 3, 3}, Name: "Diminished", Suffix: "dim7"},
	{Intervals: Intervals{3, 3, 4}, Name: "Half-Diminished", Suffix: "m7♭5",
		AllowsExtensions: true, AllowedAlterations: []string{"♯9", "♯11"}},
	{Intervals: Intervals{3, 4, 4}, Name: "Minor-Major", Suffix: "minmaj7",
		AllowedAlterations: []string{"♯11"}},
	{Intervals: Intervals{4, 4, 3}, Name: "Augmented Major", Suffix: "augmaj7",
		AllowsExtensions: true, AllowedAlterations: []string{"♯11"}},
	{Intervals: Intervals{3, 3, 5}, Name: "Diminished Major", Suffix: "dimmaj7"},
}

// Roots returns the 12 root names in draw order.
func Roots() []string {
	return slices.Clone(roots[:])
}

// Extensions returns the upper extensions in draw order.
func Extensions() []string {
	return slices.Clone(extensions[:])
}

// Catalog returns a copy of the archetypes in draw order.
func Catalog() []Archetype {
	out := make([]Archetype, len(catalog))
	for i, a := range catalog {
		a.AllowedAlterations = slices.Clone(a.AllowedAlterations)
		out[i] = a
	}
	return out
}

// Lookup finds an archetype by display name.
func Lookup(name string) (Archetype, bool) {
	for _, a := range catalog {
		if a.Name == name {
			return a, true
		}
	}
	return Archetype{}, false
}

// RandomRoot draws one root name.
func RandomRoot(src Source) string {
	return roots[pick(src, len(roots))]
}

// RandomArchetype draws one archetype.
func RandomArchetype(src Source) Archetype {
	return catalog[pick(src, len(catalog))]
}

// pick returns Next() mod n. n is always a small table length.
func pick(src Source, n int) int {
	return int(src.Next() % uint64(n))
}
