package tetris

// Snapshot captures the game state for determinism testing and replay.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	Lines       int
	Level       int
	Runs        int
	Kind        string
	Orientation string
	DX          int
	DY          int
	GhostDY     int
	Paused      bool
	Halted      bool

	// Settled blocks, 3 ints each: Row, Col, Color
	BlockData []int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	blocks := g.engine.Blocks()
	data := make([]int, 0, len(blocks)*3)
	for _, b := range blocks {
		data = append(data, b.Row, b.Col, int(b.Color.Hex()))
	}

	p := g.engine.Piece()
	return Snapshot{
		Tick:        g.tick,
		Lines:       g.engine.LinesCleared(),
		Level:       g.engine.Level(),
		Runs:        g.runs,
		Kind:        p.Kind().String(),
		Orientation: p.Orientation().String(),
		DX:          g.engine.DX(),
		DY:          g.engine.DY(),
		GhostDY:     g.engine.GhostDY(),
		Paused:      g.paused,
		Halted:      g.halted,
		BlockData:   data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{snap.Lines, snap.Level, snap.Runs, snap.DX, snap.DY, snap.GhostDY, len(snap.BlockData)} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, s := range []string{snap.Kind, snap.Orientation} {
		for _, r := range s {
			h = h*31 + uint64(r) //#nosec G115 -- hash computation
		}
	}
	if snap.Paused {
		h = h*31 + 1
	}
	if snap.Halted {
		h = h*31 + 2
	}
	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
