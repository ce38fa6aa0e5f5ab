package core

// PlacedBlock is a shape that has been committed to the board along with its
// scoring metadata. BaseValue, PlacedAt and HandGeneration are fixed at creation;
// only Bonus and Freshness change afterwards, and only when lines clear.
type PlacedBlock struct {
	// Shape holds the surviving cells as offsets from Origin. After a partial
	// clear it is not re-normalized, so offsets stay relative to Origin.
	Shape  Shape
	Origin Point

	Color     Color
	Index     int // Catalog index
	BaseValue int
	Bonus     int // Accumulated lines cleared while this block survived

	// PlacedAt is the total shapes-placed count including this block.
	PlacedAt int
	// HandGeneration is the number of hands dealt when the block was placed.
	HandGeneration int

	// Freshness decays from 1 toward 0 with every clear survived. Display only.
	Freshness float64
}

// Cells returns the absolute board cells covered by the block.
func (b PlacedBlock) Cells() []Point {
	return b.Shape.At(b.Origin)
}

// Covers returns true if the block covers the absolute cell p.
func (b PlacedBlock) Covers(p Point) bool {
	return b.Shape.Contains(P(p.X-b.Origin.X, p.Y-b.Origin.Y))
}

// Board is the canonical game board: the occupancy grid plus the collection of
// placed blocks. A cell is occupied iff some placed block covers it.
type Board struct {
	grid   Grid
	blocks []PlacedBlock
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Grid returns a scratch copy of the occupancy grid.
// Mutating the copy never affects the board.
func (b *Board) Grid() Grid {
	return b.grid
}

// IsEmpty reports whether the cell is on the board and unoccupied.
func (b *Board) IsEmpty(p Point) bool {
	return b.grid.IsEmpty(p)
}

// Commit places the block's cells and records the block. It does not validate;
// callers run CanPlace against the current board first.
func (b *Board) Commit(block PlacedBlock) {
	b.grid.Place(block.Shape, block.Origin)
	b.blocks = append(b.blocks, block)
}

// Blocks returns a copy of the placed blocks in placement order.
func (b *Board) Blocks() []PlacedBlock {
	out := make([]PlacedBlock, len(b.blocks))
	copy(out, b.blocks)
	return out
}

// BlockAt returns the block covering p, if any.
func (b *Board) BlockAt(p Point) (PlacedBlock, bool) {
	for _, blk := range b.blocks {
		if blk.Covers(p) {
			return blk, true
		}
	}
	return PlacedBlock{}, false
}

// IsClear returns true if nothing is on the board.
func (b *Board) IsClear() bool {
	return b.grid.IsClear()
}

// Reset empties the board.
func (b *Board) Reset() {
	b.grid.Reset()
	b.blocks = nil
}
