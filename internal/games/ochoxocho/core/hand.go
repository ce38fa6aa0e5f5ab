package core

// Piece is a catalog shape in a particular rotation.
type Piece struct {
	Shape Shape
	Index int // Catalog index; NotFound for shapes from outside the catalog
}

// Slot is one position in a hand. An empty slot has Filled == false.
type Slot struct {
	Piece  Piece
	Filled bool
}

// Hand is the fixed-length set of pieces offered to the player.
// A slot empties when its piece is placed; the hand is refilled only as a whole.
type Hand [HandSize]Slot

// NewHand fills a hand from the given pieces; extra pieces are ignored.
func NewHand(pieces ...Piece) Hand {
	var h Hand
	for i, p := range pieces {
		if i >= HandSize {
			break
		}
		h[i] = Slot{Piece: p, Filled: true}
	}
	return h
}

// IsEmpty returns true if every slot has been used.
func (h Hand) IsEmpty() bool {
	for _, s := range h {
		if s.Filled {
			return false
		}
	}
	return true
}

// Count returns the number of filled slots.
func (h Hand) Count() int {
	n := 0
	for _, s := range h {
		if s.Filled {
			n++
		}
	}
	return n
}

// Get returns the piece in slot i and whether the slot is filled.
func (h Hand) Get(i int) (Piece, bool) {
	if i < 0 || i >= HandSize || !h[i].Filled {
		return Piece{}, false
	}
	return h[i].Piece, true
}

// Take empties slot i and returns its piece.
func (h *Hand) Take(i int) (Piece, bool) {
	p, ok := h.Get(i)
	if ok {
		h[i] = Slot{}
	}
	return p, ok
}

// FilledSlots returns the indices of filled slots in order.
func (h Hand) FilledSlots() []int {
	var out []int
	for i, s := range h {
		if s.Filled {
			out = append(out, i)
		}
	}
	return out
}
