package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreenPlainProfile(t *testing.T) {
	cache := newStyleCache(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '█', core.RGB(0x0341AE))
	s.SetColored(3, 0, '█', core.RGB(0x0341AE))
	s.DrawTextColored(0, 1, "gray", core.ColorGray)

	got := cache.render(s)
	want := "ab██  \ngray  "
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestStyleCacheReusesStyles(t *testing.T) {
	cache := newStyleCache(lipgloss.NewRenderer(io.Discard))
	c := core.RGB(0xFF32FF)

	cache.style(c)
	cache.style(c)
	cache.style(core.ColorDefault)

	if len(cache.styles) != 2 {
		t.Errorf("cached styles = %d, want 2", len(cache.styles))
	}
}

func TestRenderScreenLineCount(t *testing.T) {
	s := core.NewScreen(10, 4)
	out := RenderScreen(s)
	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("newlines = %d, want 3", n)
	}
}
