package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB foreground color for a screen cell.
// The zero value is the terminal's default color; RGB values carry a
// presence bit above the 24 color bits so that pure black stays distinct
// from the default.
type Color uint32

const colorSet Color = 1 << 24

// ColorDefault leaves the cell in the terminal's default foreground.
const ColorDefault Color = 0

// Colors for platform chrome (borders, HUD text).
var (
	ColorWhite = RGB(0xFFFFFF)
	ColorGray  = RGB(0x8A8A8A)
	ColorRed   = RGB(0xE0443A)
)

// RGB packs a 0xRRGGBB value into a Color.
func RGB(hex uint32) Color {
	return Color(hex&0xFFFFFF) | colorSet
}

// ParseHex parses "#RRGGBB", "RRGGBB" or "0xRRGGBB" into a Color.
func ParseHex(s string) (Color, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "#")
	v = strings.TrimPrefix(strings.TrimPrefix(v, "0x"), "0X")
	if len(v) != 6 {
		return ColorDefault, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return ColorDefault, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(uint32(n)), nil
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Hex returns the 0xRRGGBB value, or 0 for the default color.
func (c Color) Hex() uint32 {
	return uint32(c) & 0xFFFFFF
}

// String returns "#RRGGBB", or an empty string for the default color.
func (c Color) String() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%06X", c.Hex())
}
