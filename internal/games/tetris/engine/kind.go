package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindO Kind = iota
	KindI
	KindL
	KindJ
	KindT
	KindZ
	KindS

	kindCount
)

// Kinds lists every piece kind in source order.
var Kinds = [kindCount]Kind{KindO, KindI, KindL, KindJ, KindT, KindZ, KindS}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindO:
		return "O"
	case KindI:
		return "I"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps a letter back to its Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// Color returns the canonical color for the kind.
func (k Kind) Color() core.Color {
	return DefaultPalette()[k]
}

// Palette assigns a color to every kind.
type Palette [kindCount]core.Color

// DefaultPalette returns the canonical piece colors.
func DefaultPalette() Palette {
	return Palette{
		KindL: core.RGB(0xC16815),
		KindJ: core.RGB(0x141BCB),
		KindO: core.RGB(0xCBCC24),
		KindI: core.RGB(0x58CCCD),
		KindT: core.RGB(0x9122CB),
		KindZ: core.RGB(0xBE190F),
		KindS: core.RGB(0x53CA1F),
	}
}

// Orientation is one of the four rotation states.
type Orientation uint8

const (
	Up Orientation = iota
	Right
	Down
	Left

	orientationCount
)

// Orientations lists the rotation states in clockwise order.
var Orientations = [orientationCount]Orientation{Up, Right, Down, Left}

// Clockwise returns the next orientation in the Up, Right, Down, Left cycle.
func (o Orientation) Clockwise() Orientation {
	return (o + 1) % orientationCount
}

// Counterclockwise returns the previous orientation in the cycle.
func (o Orientation) Counterclockwise() Orientation {
	return (o + orientationCount - 1) % orientationCount
}

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
