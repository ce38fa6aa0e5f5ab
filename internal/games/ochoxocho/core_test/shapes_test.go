package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draney98/ochoXocho/internal/games/ochoxocho/core"
)

func newCatalog(seed int64) *core.Catalog {
	return core.NewCatalog(rand.New(rand.NewSource(seed)))
}

func TestParseShape(t *testing.T) {
	s, err := core.ParseShape(`
..#
###`)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	w, h := s.Bounds()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.True(t, s.Contains(core.P(2, 0)))
	assert.False(t, s.Contains(core.P(0, 0)))

	_, err = core.ParseShape("#x#")
	assert.Error(t, err)
	_, err = core.ParseShape("...")
	assert.Error(t, err)
}

func TestNewShapeNormalizes(t *testing.T) {
	a := core.NewShape(core.P(5, 5), core.P(6, 5), core.P(5, 5))
	b := core.NewShape(core.P(0, 0), core.P(1, 0))
	assert.True(t, a.Equal(b))
	assert.Equal(t, 2, a.Len())
}

func TestRotate(t *testing.T) {
	l := core.MustParseShape(`
#.
#.
##`)
	testCases := []struct {
		turns int
		want  string
	}{
		{0, "#.\n#.\n##"},
		{1, "###\n#.."},
		{2, "##\n.#\n.#"},
		{3, "..#\n###"},
		{4, "#.\n#.\n##"},
		{-1, "..#\n###"},
		{7, "..#\n###"},
	}
	for _, tc := range testCases {
		got := core.Rotate(l, tc.turns)
		assert.Equal(t, tc.want, got.String(), "turns=%d", tc.turns)
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	cat := newCatalog(1)
	for _, e := range cat.Entries() {
		s := e.Shape
		for range 4 {
			s = core.Rotate(s, 1)
		}
		assert.True(t, s.Equal(e.Shape), "shape %s drifted", e.Name)
	}
}

func TestCanonicalIndexRotationClosure(t *testing.T) {
	cat := newCatalog(1)
	require.Equal(t, 12, cat.Len())
	for _, e := range cat.Entries() {
		for turns := range 4 {
			t.Run(e.Name, func(t *testing.T) {
				got := cat.CanonicalIndex(core.Rotate(e.Shape, turns))
				assert.Equal(t, e.Index, got, "turns=%d", turns)
			})
		}
	}
}

func TestCanonicalIndexTranslated(t *testing.T) {
	cat := newCatalog(1)
	// T shape given at an arbitrary offset.
	shifted := core.NewShape(core.P(3, 4), core.P(4, 4), core.P(5, 4), core.P(4, 5))
	idx := cat.CanonicalIndex(shifted)
	require.NotEqual(t, core.NotFound, idx)
	assert.Equal(t, "T", cat.Entry(idx).Name)
}

func TestCanonicalIndexNotFound(t *testing.T) {
	cat := newCatalog(1)
	plus := core.MustParseShape(`
.#.
###
.#.`)
	assert.Equal(t, core.NotFound, cat.CanonicalIndex(plus))
	assert.Equal(t, core.NotFound, cat.CanonicalIndex(core.Shape{}))
	assert.Equal(t, core.ColorNone, cat.ColorFor(core.NotFound))
	assert.Equal(t, 0, cat.BasePointValue(core.NotFound))
}

func TestBasePointValues(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cat := newCatalog(seed)
		assert.Equal(t, 0, cat.BasePointValue(0))

		seen := make(map[int]bool)
		for i := 1; i < cat.Len(); i++ {
			v := cat.BasePointValue(i)
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, cat.Len()-1)
			assert.False(t, seen[v], "seed %d: value %d assigned twice", seed, v)
			seen[v] = true
		}
	}
}

func TestCatalogColors(t *testing.T) {
	cat := newCatalog(1)
	for _, e := range cat.Entries() {
		assert.NotEqual(t, core.ColorNone, cat.ColorFor(e.Index), e.Name)
	}
}
