package chord

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxAlterations bounds the alteration-count draw: 0, 1 or 2.
const maxAlterations = 2

// nameWidth is the column the archetype name is right-aligned to.
const nameWidth = 16

// Chord is one drawn chord: a root, an archetype and optional decorations.
type Chord struct {
	Root        string
	Archetype   Archetype
	Extension   string   // empty when none was drawn
	Alterations []string // in order first accepted, no duplicates
}

// Random draws a chord from src.
//
// Draw order: root, archetype, then in complex mode the extension (only if
// the archetype allows one), the alteration count and each alteration (only
// if the archetype has alterations). A repeated alteration draw is dropped,
// not retried, so fewer than the drawn count may survive.
func Random(src Source, complex bool) Chord {
	c := Chord{
		Root:      RandomRoot(src),
		Archetype: RandomArchetype(src),
	}
	if !complex {
		return c
	}

	if c.Archetype.AllowsExtensions {
		c.Extension = extensions[pick(src, len(extensions))]
	}

	allowed := c.Archetype.AllowedAlterations
	if len(allowed) > 0 {
		n := pick(src, maxAlterations+1)
		for i := 0; i < n; i++ {
			alt := allowed[pick(src, len(allowed))]
			if !slices.Contains(c.Alterations, alt) {
				c.Alterations = append(c.Alterations, alt)
			}
		}
	}
	return c
}

// FormatRandom draws a chord from src and renders its full line.
func FormatRandom(src Source, complex bool) string {
	return Random(src, complex).String()
}

// Symbol renders the chord notation, e.g. "C♯m7 9 (♭9, ♯11)".
func (c Chord) Symbol() string {
	var b strings.Builder
	b.WriteString(c.Root)
	b.WriteString(c.Archetype.Suffix)
	if c.Extension != "" {
		b.WriteString(" ")
		b.WriteString(c.Extension)
	}
	if len(c.Alterations) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(c.Alterations, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// String renders "<name> | (i1, i2, i3) | <symbol>" with the name
// right-aligned to 16 columns. The result is NFC-normalized.
func (c Chord) String() string {
	line := fmt.Sprintf("%*s | %s | %s", nameWidth, c.Archetype.Name, c.Archetype.Intervals, c.Symbol())
	return norm.NFC.String(line)
}
