// Package engine is the falling-block simulation: shape table, active piece,
// settled board, collision, line clears and the level speed curve.
//
// A Game is owned by a single frame loop. Each frame the loop calls Update
// when FallDue reports true, then UpdateProjection, then HandleInput for the
// frame's inputs, and finally reads state for rendering.
package engine

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/clock"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/random"
)

// SpawnColumn is the horizontal offset of a freshly spawned piece.
const SpawnColumn = Width/2 - 1

// Input is a discrete player command.
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputRotateCW
	InputRotateCCW
	InputHardDrop
)

func (in Input) String() string {
	switch in {
	case InputNone:
		return "none"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputRotateCW:
		return "rotate_cw"
	case InputRotateCCW:
		return "rotate_ccw"
	case InputHardDrop:
		return "hard_drop"
	default:
		return "unknown"
	}
}

// Outcome reports what a call to Update, HardDrop or HandleInput did.
type Outcome struct {
	// Locked is set when the active piece was settled onto the board.
	Locked bool
	// Cleared lists the rows removed by the lock, ascending.
	Cleared []int
	// Reset is set when the next piece could not spawn and the game was
	// reinitialized. FinalLines and FinalLevel describe the run that ended.
	Reset      bool
	FinalLines int
	FinalLevel int
}

// PieceView is a read-only rendering of a piece on the board.
type PieceView struct {
	Kind        Kind
	Orientation Orientation
	Color       core.Color
	Cells       [4]Cell
	DY          int
}

// Game is the simulation state: board, active piece, ghost projection and
// progress counters.
type Game struct {
	board   *Board
	piece   Piece
	ghost   Piece
	dx      int
	dy      int
	ghostDY int

	lines      int
	lastUpdate time.Time

	source      PieceSource
	clock       clock.Clock
	curve       SpeedCurve
	palette     Palette
	startLevel  int
	progression bool
}

// Option configures a Game.
type Option func(*Game)

// WithSource sets where piece kinds come from.
func WithSource(s PieceSource) Option {
	return func(g *Game) { g.source = s }
}

// WithClock sets the clock used for the fall timer.
func WithClock(c clock.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithSpeedCurve replaces the fall interval curve.
func WithSpeedCurve(c SpeedCurve) Option {
	return func(g *Game) { g.curve = c }
}

// WithPalette replaces the piece colors.
func WithPalette(p Palette) Option {
	return func(g *Game) { g.palette = p }
}

// WithStartLevel offsets the level used for the speed curve.
func WithStartLevel(level int) Option {
	return func(g *Game) { g.startLevel = max(0, level) }
}

// WithProgression toggles levelling up from cleared lines.
func WithProgression(enabled bool) Option {
	return func(g *Game) { g.progression = enabled }
}

// New creates a game with an empty board and a fresh piece.
func New(opts ...Option) *Game {
	g := &Game{
		curve:       DefaultSpeedCurve,
		palette:     DefaultPalette(),
		progression: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		g.source = NewUniformSource(random.New())
	}
	if g.clock == nil {
		g.clock = clock.New()
	}
	g.Reset()
	return g
}

// Reset returns the game to its starting state: empty board, zero lines and
// a new piece at the spawn position.
func (g *Game) Reset() {
	g.board = NewBoard()
	g.lines = 0
	g.lastUpdate = g.clock.Now()
	g.placeNewPiece()
	g.UpdateProjection()
}

func (g *Game) placeNewPiece() {
	kind := g.source.Next()
	g.piece = NewColoredPiece(kind, g.palette[kind])
	g.ghost = g.piece
	g.dx = SpawnColumn
	g.dy = 0
}

// spawn brings in the next piece. If it overlaps the board at its spawn
// position the whole game resets and out records the run that ended.
func (g *Game) spawn(out *Outcome) {
	g.placeNewPiece()
	if g.IsVerticalCollision() {
		out.Reset = true
		out.FinalLines = g.lines
		out.FinalLevel = g.Level()
		g.Reset()
		return
	}
	g.UpdateProjection()
}

// Update is the gravity tick. A piece resting on its ghost row locks and the
// next piece spawns; otherwise the piece falls one row.
func (g *Game) Update() Outcome {
	var out Outcome
	if g.dy >= g.ghostDY {
		out = g.lock()
	} else {
		g.dy++
	}
	g.lastUpdate = g.clock.Now()
	return out
}

// HardDrop moves the piece to its ghost row and locks it immediately.
func (g *Game) HardDrop() Outcome {
	g.dy = g.ghostDY
	return g.Update()
}

func (g *Game) lock() Outcome {
	cells := g.piece.Cells(g.dy, g.dx)
	g.board.Place(cells[:], g.piece.Color())

	touched := make(map[int]bool, len(cells))
	for _, c := range cells {
		touched[c.Row] = true
	}
	var full []int
	for row := range touched {
		if g.board.IsRowFull(row) {
			full = append(full, row)
		}
	}
	sort.Ints(full)

	g.lines += len(full)
	g.board.ClearRows(full)

	out := Outcome{Locked: true, Cleared: full}
	g.spawn(&out)
	return out
}

// UpdateProjection recomputes the ghost row: the last offset before the
// piece would collide falling straight down from where it is now.
func (g *Game) UpdateProjection() {
	origin := g.dy
	for !g.IsVerticalCollision() {
		g.dy++
	}
	g.ghostDY = max(g.dy-1, origin)
	g.dy = origin
}

// HandleInput applies one player command. Moves and rotations that would
// collide are reverted.
func (g *Game) HandleInput(in Input) Outcome {
	switch in {
	case InputLeft:
		g.shift(-1)
	case InputRight:
		g.shift(1)
	case InputRotateCW:
		g.rotate(true)
	case InputRotateCCW:
		g.rotate(false)
	case InputHardDrop:
		return g.HardDrop()
	}
	return Outcome{}
}

func (g *Game) shift(delta int) {
	g.dx += delta
	if g.IsHorizontalCollision() {
		g.dx -= delta
		return
	}
	g.UpdateProjection()
}

func (g *Game) rotate(clockwise bool) {
	turn := func(p *Piece, cw bool) {
		if cw {
			p.RotateClockwise()
		} else {
			p.RotateCounterclockwise()
		}
	}

	turn(&g.piece, clockwise)
	if g.IsHorizontalCollision() || g.IsVerticalCollision() {
		turn(&g.piece, !clockwise)
		return
	}
	turn(&g.ghost, clockwise)
	g.UpdateProjection()
}

// IsHorizontalCollision reports whether the piece at the current offset
// sticks out of either side wall or overlaps a settled block. Columns are
// tested before clamping so the left wall is detected.
func (g *Game) IsHorizontalCollision() bool {
	for _, c := range Shape(g.piece.Kind(), g.piece.Orientation()) {
		col := c.Col + g.dx
		if col < 0 || col >= Width {
			return true
		}
		if g.board.Contains(Cell{Row: c.Row + g.dy, Col: col}) {
			return true
		}
	}
	return false
}

// IsVerticalCollision reports whether the piece at the current offset
// overlaps a settled block or reaches past the floor.
func (g *Game) IsVerticalCollision() bool {
	for _, c := range g.piece.Cells(g.dy, g.dx) {
		if c.Row >= Height || g.board.Contains(c) {
			return true
		}
	}
	return false
}

// Blocks returns the settled blocks.
func (g *Game) Blocks() []Block {
	return g.board.Blocks()
}

// Board returns the settled board. Callers must treat it as read-only.
func (g *Game) Board() *Board {
	return g.board
}

// Piece returns a copy of the active piece.
func (g *Game) Piece() Piece {
	return g.piece
}

// Active returns the active piece as drawn on the board.
func (g *Game) Active() PieceView {
	return PieceView{
		Kind:        g.piece.Kind(),
		Orientation: g.piece.Orientation(),
		Color:       g.piece.Color(),
		Cells:       g.piece.Cells(g.dy, g.dx),
		DY:          g.dy,
	}
}

// Ghost returns the landing preview of the active piece.
func (g *Game) Ghost() PieceView {
	return PieceView{
		Kind:        g.ghost.Kind(),
		Orientation: g.ghost.Orientation(),
		Color:       g.ghost.Color(),
		Cells:       g.ghost.Cells(g.ghostDY, g.dx),
		DY:          g.ghostDY,
	}
}

// DX returns the horizontal offset of the active piece.
func (g *Game) DX() int { return g.dx }

// DY returns the vertical offset of the active piece.
func (g *Game) DY() int { return g.dy }

// GhostDY returns the resting vertical offset of the active piece.
func (g *Game) GhostDY() int { return g.ghostDY }

// LinesCleared returns the lines cleared since the last reset.
func (g *Game) LinesCleared() int { return g.lines }

// Level returns the speed level.
func (g *Game) Level() int {
	if !g.progression {
		return g.startLevel
	}
	return g.startLevel + LevelForLines(g.lines)
}

// FallInterval returns the time between automatic falls at the current level.
func (g *Game) FallInterval() time.Duration {
	return g.curve.Interval(g.Level())
}

// LastUpdate returns when the last gravity tick ran.
func (g *Game) LastUpdate() time.Time { return g.lastUpdate }

// SinceLastUpdate returns the time elapsed since the last gravity tick.
func (g *Game) SinceLastUpdate() time.Duration {
	return g.clock.Now().Sub(g.lastUpdate)
}

// RestartFallTimer counts the next fall interval from now. Callers that
// stop stepping the game, such as while paused, use it when they resume.
func (g *Game) RestartFallTimer() {
	g.lastUpdate = g.clock.Now()
}

// FallDue reports whether the next gravity tick should run.
func (g *Game) FallDue() bool {
	return g.SinceLastUpdate() >= g.FallInterval()
}
