package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// styleCache maps core.Color to lipgloss styles. Piece palettes are
// configurable, so styles are built on first use rather than listed up front.
type styleCache struct {
	mu       sync.RWMutex
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
}

func newStyleCache(r *lipgloss.Renderer) *styleCache {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &styleCache{renderer: r, styles: make(map[core.Color]lipgloss.Style)}
}

func (c *styleCache) style(color core.Color) lipgloss.Style {
	c.mu.RLock()
	s, ok := c.styles[color]
	c.mu.RUnlock()
	if ok {
		return s
	}

	s = c.renderer.NewStyle()
	if !color.IsDefault() {
		s = s.Foreground(lipgloss.Color(color.String()))
	}

	c.mu.Lock()
	c.styles[color] = s
	c.mu.Unlock()
	return s
}

var defaultStyles = newStyleCache(nil)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return defaultStyles.render(s)
}

func (c *styleCache) render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if color.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(c.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
