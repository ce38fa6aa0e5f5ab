package core

import (
	"math/rand"

	"github.com/kamstrup/intmap"
)

// NotFound is returned by CanonicalIndex when a shape matches no catalog entry.
const NotFound = -1

// Entry is one catalog shape with its identity, color and point value.
type Entry struct {
	Index     int
	Name      string
	Shape     Shape
	Color     Color
	BaseValue int
}

// definition is a catalog shape before point values are assigned.
type definition struct {
	name  string
	color Color
	pic   string
}

// definitions lists the catalog in canonical index order.
// Index 0 must stay the single cell: it is the only shape worth 0 points.
var definitions = []definition{
	{"dot", ColorWhite, "#"},
	{"domino", ColorBrown, "##"},
	{"tri-line", ColorLime, "###"},
	{"tri-corner", ColorPink, `
#.
##`},
	{"I", ColorCyan, "####"},
	{"O", ColorYellow, `
##
##`},
	{"T", ColorPurple, `
###
.#.`},
	{"S", ColorGreen, `
.##
##.`},
	{"Z", ColorRed, `
##.
.##`},
	{"J", ColorBlue, `
#..
###`},
	{"L", ColorOrange, `
..#
###`},
	{"square3", ColorTeal, `
###
###
###`},
}

// Catalog holds the fixed pool of shapes plus a rotation-invariant lookup index.
// Point values are shuffled when the catalog is built and stay fixed for its lifetime.
type Catalog struct {
	entries []Entry
	index   *intmap.Map[uint64, int]
}

// NewCatalog builds the catalog. Base point values are a random permutation of
// 1..n-1 over every shape except the single cell, which is always 0.
func NewCatalog(rng *rand.Rand) *Catalog {
	values := rng.Perm(len(definitions) - 1)

	c := &Catalog{
		entries: make([]Entry, len(definitions)),
		index:   intmap.New[uint64, int](len(definitions) * 4),
	}
	for i, def := range definitions {
		value := 0
		if i > 0 {
			value = values[i-1] + 1
		}
		shape := MustParseShape(def.pic)
		c.entries[i] = Entry{
			Index:     i,
			Name:      def.name,
			Shape:     shape,
			Color:     def.color,
			BaseValue: value,
		}
		for _, rot := range Rotations(shape) {
			if k, ok := rot.key(); ok {
				c.index.Put(k, i)
			}
		}
	}
	return c
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entry returns the entry at index. The index must be valid.
func (c *Catalog) Entry(index int) Entry {
	return c.entries[index]
}

// Entries returns a copy of all entries in index order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Valid returns true if index names a catalog entry.
func (c *Catalog) Valid(index int) bool {
	return index >= 0 && index < len(c.entries)
}

// Shape returns the unrotated shape for index.
func (c *Catalog) Shape(index int) Shape {
	return c.entries[index].Shape
}

// ColorFor returns the color for index, or ColorNone for an invalid index.
func (c *Catalog) ColorFor(index int) Color {
	if !c.Valid(index) {
		return ColorNone
	}
	return c.entries[index].Color
}

// BasePointValue returns the base value for index, or 0 for an invalid index.
func (c *Catalog) BasePointValue(index int) int {
	if !c.Valid(index) {
		return 0
	}
	return c.entries[index].BaseValue
}

// CanonicalIndex matches shape, under any rotation and translation, against every
// catalog entry under any rotation. Returns NotFound if nothing matches.
func (c *Catalog) CanonicalIndex(s Shape) int {
	for _, rot := range Rotations(s) {
		k, ok := rot.key()
		if !ok {
			continue
		}
		if idx, found := c.index.Get(k); found {
			return idx
		}
	}
	return NotFound
}

// Piece returns the catalog shape at index turned by quarterTurns.
func (c *Catalog) Piece(index, quarterTurns int) Piece {
	return Piece{
		Shape: Rotate(c.entries[index].Shape, quarterTurns),
		Index: index,
	}
}
