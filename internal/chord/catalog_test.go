package chord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pchords/internal/rng"
	"github.com/roach88/pchords/internal/testutil"
)

func TestCatalog_Shape(t *testing.T) {
	assert.Len(t, Roots(), 12)
	assert.Len(t, Catalog(), 8)
	assert.Equal(t, []string{"9", "11", "13"}, Extensions())
	assert.Equal(t, "B", Roots()[2])

	for _, a := range Catalog() {
		assert.LessOrEqual(t, len([]rune(a.Name)), nameWidth, "name %q wider than column", a.Name)
		assert.NotEmpty(t, a.Suffix, a.Name)
	}
}

func TestCatalog_StringsAreNFC(t *testing.T) {
	var all []string
	all = append(all, Roots()...)
	for _, a := range Catalog() {
		all = append(all, a.Name, a.Suffix)
		all = append(all, a.AllowedAlterations...)
	}
	for _, s := range all {
		assert.True(t, norm.NFC.IsNormalString(s), "%q is not NFC", s)
	}
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := Catalog()
	c[0].Name = "Changed"
	c[0].AllowedAlterations[0] = "x"
	Roots()[0] = "Z"

	again := Catalog()
	assert.Equal(t, "Major", again[0].Name)
	assert.Equal(t, "♯11", again[0].AllowedAlterations[0])
	assert.Equal(t, "A", Roots()[0])
}

func TestLookup(t *testing.T) {
	a, ok := Lookup("Diminished")
	require.True(t, ok)
	assert.Equal(t, "dim7", a.Suffix)
	assert.False(t, a.AllowsExtensions)
	assert.Empty(t, a.AllowedAlterations)

	_, ok = Lookup("Lydian")
	assert.False(t, ok)
}

func TestIntervals_String(t *testing.T) {
	assert.Equal(t, "(4, 3, 4)", Intervals{4, 3, 4}.String())
	assert.Equal(t, "(3, 3, 5)", Intervals{3, 3, 5}.String())
}

func TestRandomRoot_Scripted(t *testing.T) {
	src := testutil.NewScriptedSource(0, 2, 11, 12, math.MaxUint64)
	assert.Equal(t, "A", RandomRoot(src))
	assert.Equal(t, "B", RandomRoot(src))
	assert.Equal(t, "G♯", RandomRoot(src))
	assert.Equal(t, "A", RandomRoot(src))
	// 2^64-1 mod 12 == 3
	assert.Equal(t, "C", RandomRoot(src))
}

func TestRandomArchetype_Scripted(t *testing.T) {
	src := testutil.NewScriptedSource(0, 3, 15, math.MaxUint64)
	assert.Equal(t, "Major", RandomArchetype(src).Name)
	assert.Equal(t, "Diminished", RandomArchetype(src).Name)
	assert.Equal(t, "Diminished Major", RandomArchetype(src).Name)
	assert.Equal(t, "Diminished Major", RandomArchetype(src).Name)
}

func TestRandomPickers_StayInTables(t *testing.T) {
	roots := Roots()
	names := make([]string, 0, len(catalog))
	for _, a := range Catalog() {
		names = append(names, a.Name)
	}

	for seed := uint64(0); seed < 200; seed++ {
		r := rng.New(seed)
		for i := 0; i < 20; i++ {
			assert.Contains(t, roots, RandomRoot(r))
			assert.Contains(t, names, RandomArchetype(r).Name)
		}
	}
}
