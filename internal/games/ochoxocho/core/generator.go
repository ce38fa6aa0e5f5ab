package core

import "math/rand"

// DefaultFitAttempts is the per-slot attempt budget for guaranteed-fit generation.
const DefaultFitAttempts = 20

// GenReport describes how a hand was generated.
type GenReport struct {
	Mode     Mode
	FitSlots int  // Slots filled by a shape that fit the scratch board
	FellBack bool // A slot ran out of attempts and the rest were drawn unconstrained
}

// Generator deals hands from a catalog.
type Generator struct {
	catalog     *Catalog
	rng         *rand.Rand
	fitAttempts int
	weights     []float64
	totalWeight float64
}

// NewGenerator creates a generator. fitAttempts <= 0 uses DefaultFitAttempts.
func NewGenerator(catalog *Catalog, rng *rand.Rand, fitAttempts int) *Generator {
	if fitAttempts <= 0 {
		fitAttempts = DefaultFitAttempts
	}
	g := &Generator{
		catalog:     catalog,
		rng:         rng,
		fitAttempts: fitAttempts,
		weights:     make([]float64, catalog.Len()),
	}
	for i, e := range catalog.entries {
		w := 1 / float64(e.Shape.Len())
		g.weights[i] = w
		g.totalWeight += w
	}
	return g
}

// FitAttempts returns the per-slot attempt budget.
func (g *Generator) FitAttempts() int {
	return g.fitAttempts
}

// Deal generates a hand in the given mode against the board occupancy g.
func (g *Generator) Deal(mode Mode, grid Grid) (Hand, GenReport) {
	if mode == ModeGuaranteedFit {
		return g.GuaranteedFit(grid)
	}
	return g.Unconstrained(), GenReport{Mode: ModeUnconstrained}
}

// Unconstrained draws every slot uniformly from the catalog, excluding the single
// cell, with a uniformly random rotation.
func (g *Generator) Unconstrained() Hand {
	var h Hand
	for i := range h {
		h[i] = Slot{Piece: g.uniformPiece(), Filled: true}
	}
	return h
}

// GuaranteedFit builds the hand against a scratch copy of grid. Each slot draws
// shapes weighted by inverse size until one fits; the fitting shape is placed at
// a random valid position and full lines are cleared before the next slot. If a
// slot runs out of attempts, it and every later slot are drawn unconstrained.
func (g *Generator) GuaranteedFit(grid Grid) (Hand, GenReport) {
	var (
		h       Hand
		report  = GenReport{Mode: ModeGuaranteedFit}
		scratch = grid
	)
	for slot := range h {
		piece, ok := g.fit(&scratch)
		if !ok {
			report.FellBack = true
			for i := slot; i < HandSize; i++ {
				h[i] = Slot{Piece: g.uniformPiece(), Filled: true}
			}
			break
		}
		h[slot] = Slot{Piece: piece, Filled: true}
		report.FitSlots++
	}
	return h, report
}

// fit tries up to fitAttempts weighted candidates against scratch. On success the
// piece has been placed on scratch and full lines cleared.
func (g *Generator) fit(scratch *Grid) (Piece, bool) {
	for range g.fitAttempts {
		piece := g.catalog.Piece(g.weightedIndex(), g.rng.Intn(4))
		positions := AllValidPositions(scratch, piece.Shape)
		if len(positions) == 0 {
			continue
		}
		pos := positions[g.rng.Intn(len(positions))]
		scratch.Place(piece.Shape, pos)
		ClearFull(scratch)
		return piece, true
	}
	return Piece{}, false
}

func (g *Generator) uniformPiece() Piece {
	index := 1 + g.rng.Intn(g.catalog.Len()-1)
	return g.catalog.Piece(index, g.rng.Intn(4))
}

// weightedIndex draws a catalog index with probability proportional to 1/size.
func (g *Generator) weightedIndex() int {
	r := g.rng.Float64() * g.totalWeight
	for i, w := range g.weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(g.weights) - 1
}
