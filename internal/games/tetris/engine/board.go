package engine

import (
	"fmt"
	"sort"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Board dimensions and the number of cleared lines per level.
const (
	Width        = 10
	Height       = 20
	LinesToLevel = 10
)

// Block is a settled cell and its color. Identity is positional; two blocks
// at the same cell are the same block whatever their colors.
type Block struct {
	Cell
	Color core.Color
}

// Board is the set of settled blocks, keyed by position.
type Board struct {
	blocks *intmap.Map[uint32, core.Color]
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{blocks: intmap.New[uint32, core.Color](Width * Height)}
}

// cellKey packs a cell into a map key. Probes may ask about rows below the
// floor, so the key space is wider than the board.
func cellKey(c Cell) uint32 {
	return uint32(c.Row)<<16 | uint32(c.Col)
}

func keyCell(k uint32) Cell {
	return Cell{Row: int(k >> 16), Col: int(k & 0xFFFF)}
}

// Len returns the number of settled blocks.
func (b *Board) Len() int {
	return b.blocks.Len()
}

// Contains reports whether a settled block occupies c.
func (b *Board) Contains(c Cell) bool {
	if c.Row < 0 || c.Col < 0 {
		return false
	}
	return b.blocks.Has(cellKey(c))
}

// ColorAt returns the color of the block at c.
func (b *Board) ColorAt(c Cell) (core.Color, bool) {
	if c.Row < 0 || c.Col < 0 {
		return core.ColorDefault, false
	}
	return b.blocks.Get(cellKey(c))
}

// IsRowFull reports whether all Width cells of row are settled.
func (b *Board) IsRowFull(row int) bool {
	for col := 0; col < Width; col++ {
		if !b.Contains(Cell{Row: row, Col: col}) {
			return false
		}
	}
	return true
}

// Place settles each cell with color. Placing outside the board or onto an
// occupied cell is a caller bug and panics.
func (b *Board) Place(cells []Cell, color core.Color) {
	for _, c := range cells {
		if c.Row < 0 || c.Row >= Height || c.Col < 0 || c.Col >= Width {
			panic(fmt.Sprintf("engine: place %v outside %dx%d board", c, Width, Height))
		}
		if b.blocks.Has(cellKey(c)) {
			panic(fmt.Sprintf("engine: place %v onto settled block", c))
		}
		b.blocks.Put(cellKey(c), color)
	}
}

// ClearRows removes every block in rows and drops each remaining block by
// the number of removed rows below it. It returns the number of distinct
// rows removed.
func (b *Board) ClearRows(rows []int) int {
	removed := make(map[int]bool, len(rows))
	for _, r := range rows {
		removed[r] = true
	}
	if len(removed) == 0 {
		return 0
	}

	next := intmap.New[uint32, core.Color](b.blocks.Len())
	b.blocks.ForEach(func(k uint32, color core.Color) bool {
		c := keyCell(k)
		if removed[c.Row] {
			return true
		}
		shift := 0
		for r := range removed {
			if r > c.Row {
				shift++
			}
		}
		c.Row += shift
		next.Put(cellKey(c), color)
		return true
	})
	b.blocks = next

	return len(removed)
}

// Blocks returns the settled blocks ordered by row, then column.
func (b *Board) Blocks() []Block {
	blocks := make([]Block, 0, b.blocks.Len())
	b.blocks.ForEach(func(k uint32, color core.Color) bool {
		blocks = append(blocks, Block{Cell: keyCell(k), Color: color})
		return true
	})
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].Row != blocks[j].Row {
			return blocks[i].Row < blocks[j].Row
		}
		return blocks[i].Col < blocks[j].Col
	})
	return blocks
}
