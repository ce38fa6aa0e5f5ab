package core

import "math/rand"

// DefaultSolveAttempts is the number of shuffled orders Solve tries.
const DefaultSolveAttempts = 10

// Move places the piece from a hand slot at a position.
type Move struct {
	Slot  int
	Piece Piece
	Pos   Point
}

// Plan is an ordered list of moves. Complete is true when every filled slot of
// the hand is placed. An empty plan means no piece can be placed.
type Plan struct {
	Moves    []Move
	Complete bool
}

// Empty returns true if the plan places nothing.
func (p Plan) Empty() bool {
	return len(p.Moves) == 0
}

// Solve searches for an order that places every filled slot of hand on g.
//
// Each attempt shuffles the slot order and greedily places each piece at the
// position completing the most lines, breaking ties at random and clearing full
// lines on a scratch grid after each placement. The first attempt that places
// everything wins. Otherwise the original order is played until the first piece
// with no legal position, yielding a partial plan.
func Solve(g Grid, hand Hand, rng *rand.Rand, attempts int) Plan {
	slots := hand.FilledSlots()
	if len(slots) == 0 {
		return Plan{Complete: true}
	}
	if attempts <= 0 {
		attempts = DefaultSolveAttempts
	}

	order := make([]int, len(slots))
	for range attempts {
		copy(order, slots)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		if moves, ok := playOrder(g, hand, order, rng); ok {
			return Plan{Moves: moves, Complete: true}
		}
	}

	moves, ok := playOrder(g, hand, slots, rng)
	return Plan{Moves: moves, Complete: ok}
}

// playOrder places slots in order on a copy of g, stopping at the first piece
// with no legal position. It reports whether every piece was placed.
func playOrder(g Grid, hand Hand, order []int, rng *rand.Rand) ([]Move, bool) {
	scratch := g
	moves := make([]Move, 0, len(order))
	for _, slot := range order {
		piece := hand[slot].Piece
		pos, ok := bestPosition(&scratch, piece.Shape, rng)
		if !ok {
			return moves, false
		}
		scratch.Place(piece.Shape, pos)
		ClearFull(&scratch)
		moves = append(moves, Move{Slot: slot, Piece: piece, Pos: pos})
	}
	return moves, true
}

// bestPosition returns the legal position completing the most lines.
func bestPosition(g *Grid, s Shape, rng *rand.Rand) (Point, bool) {
	var (
		best      []Point
		bestLines = -1
	)
	for _, pos := range AllValidPositions(g, s) {
		lines, _ := LinesCompletedBy(g, s, pos)
		n := lines.Count()
		switch {
		case n > bestLines:
			bestLines = n
			best = append(best[:0], pos)
		case n == bestLines:
			best = append(best, pos)
		}
	}
	if len(best) == 0 {
		return Point{}, false
	}
	return best[rng.Intn(len(best))], true
}
