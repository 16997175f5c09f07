package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a tetromino with an orientation and an assigned color.
// It carries no position; the game supplies the offset when asking for cells.
type Piece struct {
	kind        Kind
	orientation Orientation
	color       core.Color
}

// NewPiece creates a piece of the given kind in the Up orientation with the
// kind's canonical color.
func NewPiece(kind Kind) Piece {
	return NewColoredPiece(kind, kind.Color())
}

// NewColoredPiece creates a piece in the Up orientation with an explicit color.
func NewColoredPiece(kind Kind, color core.Color) Piece {
	return Piece{kind: kind, orientation: Up, color: color}
}

// Kind returns the piece kind.
func (p Piece) Kind() Kind { return p.kind }

// Orientation returns the current rotation state.
func (p Piece) Orientation() Orientation { return p.orientation }

// Color returns the color assigned to the piece.
func (p Piece) Color() core.Color { return p.color }

// RotateClockwise advances the orientation. It never fails; collision testing
// and reverting is up to the caller.
func (p *Piece) RotateClockwise() {
	p.orientation = p.orientation.Clockwise()
}

// RotateCounterclockwise retreats the orientation.
func (p *Piece) RotateCounterclockwise() {
	p.orientation = p.orientation.Counterclockwise()
}

// Cells returns the world cells of the piece translated by (dy, dx).
// Columns saturate at zero: a piece nudged past the left wall clamps
// instead of wrapping.
func (p Piece) Cells(dy, dx int) [4]Cell {
	cells := Shape(p.kind, p.orientation)
	for i, c := range cells {
		cells[i] = Cell{
			Row: c.Row + dy,
			Col: core.SaturatingAdd(c.Col, dx),
		}
	}
	return cells
}
