package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/mocks"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/random"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestGame(kinds ...Kind) (*Game, *mocks.MockClock) {
	clk := mocks.NewMockClock(epoch)
	g := New(WithSource(NewSequenceSource(kinds...)), WithClock(clk))
	return g, clk
}

func TestNewGameSpawn(t *testing.T) {
	g, _ := newTestGame(KindT)

	assert.Equal(t, SpawnColumn, g.DX())
	assert.Equal(t, 4, g.DX())
	assert.Equal(t, 0, g.DY())
	assert.Equal(t, KindT, g.Piece().Kind())
	assert.Equal(t, Up, g.Piece().Orientation())
	assert.Equal(t, 0, g.LinesCleared())
	assert.Equal(t, 0, g.Board().Len())
	assert.False(t, g.IsHorizontalCollision())
	assert.False(t, g.IsVerticalCollision())
}

func TestEverySpawnIsCollisionFree(t *testing.T) {
	for _, k := range Kinds {
		g, _ := newTestGame(k)
		assert.False(t, g.IsHorizontalCollision(), k.String())
		assert.False(t, g.IsVerticalCollision(), k.String())
	}
}

func TestMoveLeftStopsAtWall(t *testing.T) {
	g, _ := newTestGame(KindI)

	for i := 0; i < 4; i++ {
		g.HandleInput(InputLeft)
	}
	require.Equal(t, 0, g.DX())

	g.HandleInput(InputLeft)
	assert.Equal(t, 0, g.DX())
	assert.False(t, g.IsHorizontalCollision())
}

func TestMoveRightStopsAtWall(t *testing.T) {
	g, _ := newTestGame(KindI)

	for i := 0; i < 5; i++ {
		g.HandleInput(InputRight)
	}
	assert.Equal(t, 6, g.DX())
	active := g.Active()
	for _, c := range active.Cells {
		assert.Less(t, c.Col, Width)
	}
}

func TestMoveBlockedBySettledBlock(t *testing.T) {
	g, _ := newTestGame(KindO)
	// O occupies columns 4-5 at spawn.
	g.Board().Place([]Cell{{1, 3}}, core.ColorWhite)

	g.HandleInput(InputLeft)
	assert.Equal(t, 4, g.DX())
}

func TestOSpawnsAtCenterColumns(t *testing.T) {
	g, _ := newTestGame(KindO)
	active := g.Active()
	assert.ElementsMatch(t, []Cell{{0, 4}, {0, 5}, {1, 4}, {1, 5}}, active.Cells[:])
}

func TestHardDropOnEmptyBoard(t *testing.T) {
	g, _ := newTestGame(KindI, KindO)

	assert.Equal(t, 18, g.GhostDY())
	out := g.HandleInput(InputHardDrop)

	assert.True(t, out.Locked)
	assert.Empty(t, out.Cleared)
	assert.False(t, out.Reset)
	assert.Equal(t, []Block{
		{Cell: Cell{19, 4}, Color: KindI.Color()},
		{Cell: Cell{19, 5}, Color: KindI.Color()},
		{Cell: Cell{19, 6}, Color: KindI.Color()},
		{Cell: Cell{19, 7}, Color: KindI.Color()},
	}, g.Blocks())

	assert.Equal(t, KindO, g.Piece().Kind())
	assert.Equal(t, 0, g.DY())
	assert.Equal(t, SpawnColumn, g.DX())
	assert.Equal(t, 17, g.GhostDY())
}

func TestSingleLineClear(t *testing.T) {
	g, _ := newTestGame(KindI, KindT)
	fillRow(g.Board(), 19, core.ColorGray, 4, 5, 6, 7)
	g.Board().Place([]Cell{{18, 0}}, core.ColorRed)
	g.UpdateProjection()

	out := g.HardDrop()

	assert.True(t, out.Locked)
	assert.Equal(t, []int{19}, out.Cleared)
	assert.Equal(t, 1, g.LinesCleared())
	assert.Equal(t, []Block{{Cell: Cell{19, 0}, Color: core.ColorRed}}, g.Blocks())
}

func TestTetrisClearsFourRows(t *testing.T) {
	g, _ := newTestGame(KindI)
	g.HandleInput(InputRotateCW)
	// Vertical I sits in column 6.
	for row := 16; row < Height; row++ {
		fillRow(g.Board(), row, core.ColorGray, 6)
	}
	g.UpdateProjection()

	out := g.HardDrop()
	assert.Equal(t, []int{16, 17, 18, 19}, out.Cleared)
	assert.Equal(t, 4, g.LinesCleared())
	assert.Equal(t, 0, g.Board().Len())
}

func TestUpdateFallsThenLocks(t *testing.T) {
	g, clk := newTestGame(KindO, KindT)

	for dy := 1; dy <= 18; dy++ {
		clk.Advance(time.Second)
		out := g.Update()
		require.False(t, out.Locked)
		require.Equal(t, dy, g.DY())
		assert.Equal(t, clk.Now(), g.LastUpdate())
	}

	clk.Advance(time.Second)
	out := g.Update()
	assert.True(t, out.Locked)
	assert.Equal(t, KindT, g.Piece().Kind())
	assert.Equal(t, 0, g.DY())
	assert.True(t, g.Board().Contains(Cell{19, 4}))
	assert.True(t, g.Board().Contains(Cell{18, 5}))
}

func TestFallDueFollowsClock(t *testing.T) {
	g, clk := newTestGame(KindT)

	assert.False(t, g.FallDue())
	clk.Advance(999 * time.Millisecond)
	assert.False(t, g.FallDue())
	clk.Advance(time.Millisecond)
	assert.True(t, g.FallDue())
	assert.Equal(t, time.Second, g.SinceLastUpdate())

	g.Update()
	assert.False(t, g.FallDue())
	assert.Equal(t, time.Duration(0), g.SinceLastUpdate())

	clk.Advance(5 * time.Second)
	g.RestartFallTimer()
	assert.False(t, g.FallDue())
	assert.Equal(t, clk.Now(), g.LastUpdate())

	// a clock stepping backwards never makes a fall due
	clk.Set(g.LastUpdate().Add(-time.Minute))
	assert.False(t, g.FallDue())
}

func TestRotationRevertsAtWall(t *testing.T) {
	g, _ := newTestGame(KindI)

	g.HandleInput(InputRotateCW)
	require.Equal(t, Right, g.Piece().Orientation())
	for i := 0; i < 5; i++ {
		g.HandleInput(InputRight)
	}
	require.Equal(t, 7, g.DX())

	// Back to horizontal would need columns 7-10.
	g.HandleInput(InputRotateCCW)
	assert.Equal(t, Right, g.Piece().Orientation())
	assert.Equal(t, Right, g.Ghost().Orientation)
}

func TestRotationRevertsOnSettledBlock(t *testing.T) {
	g, _ := newTestGame(KindT)
	// T Right adds (2,5).
	g.Board().Place([]Cell{{2, 5}}, core.ColorWhite)
	g.UpdateProjection()

	g.HandleInput(InputRotateCW)
	assert.Equal(t, Up, g.Piece().Orientation())
}

func TestGhostRotatesWithPiece(t *testing.T) {
	g, _ := newTestGame(KindL)
	for _, in := range []Input{InputRotateCW, InputRotateCW, InputRotateCCW} {
		g.HandleInput(in)
		assert.Equal(t, g.Piece().Orientation(), g.Ghost().Orientation)
		assert.Equal(t, g.Active().Color, g.Ghost().Color)
	}
}

func TestGhostMatchesHardDropLanding(t *testing.T) {
	rng := random.NewSeeded(7)
	for trial := 0; trial < 200; trial++ {
		kind := Kinds[rng.Intn(len(Kinds))]
		g, _ := newTestGame(kind)
		for row := 6; row < Height; row++ {
			for col := 0; col < Width; col++ {
				if rng.Intn(3) == 0 {
					g.Board().Place([]Cell{{row, col}}, core.ColorGray)
				}
			}
		}
		for i := rng.Intn(4); i > 0; i-- {
			g.HandleInput(InputRotateCW)
		}
		for i := rng.Intn(9) - 4; i != 0; {
			if i < 0 {
				g.HandleInput(InputLeft)
				i++
			} else {
				g.HandleInput(InputRight)
				i--
			}
		}
		g.UpdateProjection()

		ghost := g.Ghost()
		require.GreaterOrEqual(t, ghost.DY, g.DY())
		for _, c := range ghost.Cells {
			require.Less(t, c.Row, Height)
			require.False(t, g.Board().Contains(c), "trial %d ghost overlaps %v", trial, c)
		}
		below := g.Piece().Cells(ghost.DY+1, g.DX())
		blocked := false
		for _, c := range below {
			if c.Row >= Height || g.Board().Contains(c) {
				blocked = true
			}
		}
		require.True(t, blocked, "trial %d ghost could fall further", trial)

		before := g.Board().Len()
		out := g.HardDrop()
		require.True(t, out.Locked)
		if len(out.Cleared) == 0 && !out.Reset {
			assert.Equal(t, before+4, g.Board().Len())
			for _, c := range ghost.Cells {
				assert.True(t, g.Board().Contains(c), "trial %d missing %v", trial, c)
			}
		}
	}
}

func TestLevelProgression(t *testing.T) {
	g, _ := newTestGame(KindT)

	g.lines = 9
	assert.Equal(t, 0, g.Level())
	assert.Equal(t, time.Second, g.FallInterval())

	g.lines = 10
	assert.Equal(t, 1, g.Level())
	assert.Less(t, g.FallInterval(), time.Second)
}

func TestStartLevelAndFixedProgression(t *testing.T) {
	clk := mocks.NewMockClock(epoch)
	g := New(WithSource(NewSequenceSource(KindT)), WithClock(clk),
		WithStartLevel(3), WithProgression(false))

	g.lines = 40
	assert.Equal(t, 3, g.Level())
	assert.Equal(t, DefaultSpeedCurve.Interval(3), g.FallInterval())

	g = New(WithSource(NewSequenceSource(KindT)), WithClock(clk), WithStartLevel(3))
	g.lines = 25
	assert.Equal(t, 5, g.Level())
}

func TestSpawnCollisionResets(t *testing.T) {
	g, _ := newTestGame(KindO)

	var last Outcome
	for i := 0; i < 10; i++ {
		last = g.HardDrop()
		require.True(t, last.Locked)
		if i < 9 {
			require.False(t, last.Reset, "drop %d", i)
		}
	}

	assert.True(t, last.Reset)
	assert.Equal(t, 0, last.FinalLines)
	assert.Equal(t, 0, g.Board().Len())
	assert.Equal(t, 0, g.LinesCleared())
	assert.Equal(t, 0, g.DY())
	assert.False(t, g.IsVerticalCollision())
}

func TestResetReportsLinesBeforeReset(t *testing.T) {
	g, _ := newTestGame(KindO)
	g.lines = 12
	for row := 2; row < Height; row++ {
		fillRow(g.Board(), row, core.ColorGray, 0)
	}
	g.UpdateProjection()

	out := g.HardDrop()
	assert.True(t, out.Reset)
	assert.Equal(t, 12, out.FinalLines)
	assert.Equal(t, 1, out.FinalLevel)
	assert.Equal(t, 0, g.LinesCleared())
	assert.Equal(t, 0, g.Level())
}

func TestPaletteOverride(t *testing.T) {
	p := DefaultPalette()
	p[KindT] = core.RGB(0x123456)
	clk := mocks.NewMockClock(epoch)
	g := New(WithSource(NewSequenceSource(KindT)), WithClock(clk), WithPalette(p))

	assert.Equal(t, "#123456", g.Active().Color.String())
	g.HardDrop()
	assert.Equal(t, core.RGB(0x123456), g.Blocks()[0].Color)
}

func TestInputString(t *testing.T) {
	assert.Equal(t, "hard_drop", InputHardDrop.String())
	assert.Equal(t, "unknown", Input(99).String())
}
