package ochoxocho

import "github.com/draney98/ochoXocho/internal/games/ochoxocho/core"

// Snapshot is the observable game state, flattened to primitive types for
// determinism checks.
type Snapshot struct {
	Tick       uint64
	CursorX    int
	CursorY    int
	Slot       int
	Score      int
	Level      int
	Lines      int
	Shapes     int
	Mode       string
	State      string
	HandsDealt int
	Paused     bool

	// Catalog index + 1 per board cell, row-major; 0 is empty.
	BoardData []int

	// Catalog index per hand slot; -1 is empty.
	HandData []int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	score := g.session.Score()
	snap := Snapshot{
		Tick:       g.tick,
		CursorX:    g.cursor.X,
		CursorY:    g.cursor.Y,
		Slot:       g.slot,
		Score:      score.Score,
		Level:      score.Level,
		Lines:      score.Lines,
		Shapes:     score.Placed,
		Mode:       string(g.session.Mode()),
		State:      g.session.State().String(),
		HandsDealt: g.session.HandsDealt(),
		Paused:     g.paused,
		BoardData:  make([]int, 0, core.Size*core.Size),
		HandData:   make([]int, 0, core.HandSize),
	}

	board := g.session.BoardSnapshot()
	for y := range core.Size {
		for x := range core.Size {
			c := board.Cells[y][x]
			if c.Occupied {
				snap.BoardData = append(snap.BoardData, c.Index+1)
			} else {
				snap.BoardData = append(snap.BoardData, 0)
			}
		}
	}

	for _, slot := range g.session.HandSnapshot().Slots {
		if slot.Filled {
			snap.HandData = append(snap.HandData, slot.Index)
		} else {
			snap.HandData = append(snap.HandData, -1)
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.CursorX, snap.CursorY, snap.Slot, snap.Score,
		snap.Level, snap.Lines, snap.Shapes, snap.HandsDealt,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, s := range []string{snap.Mode, snap.State} {
		for _, b := range []byte(s) {
			h = h*31 + uint64(b)
		}
	}
	for _, v := range snap.BoardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.HandData {
		h = h*31 + uint64(v+1) //#nosec G115 -- hash computation
	}
	return h
}
