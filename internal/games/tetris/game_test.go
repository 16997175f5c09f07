package tetris

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/mocks"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

func newTestGame(t *testing.T, cfg config.TetrisConfig) (*Game, *mocks.MockClock) {
	t.Helper()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	g := New(WithClock(clk), WithConfig(cfg))
	g.Reset(testRuntime)
	if err := g.ConfigError(); err != nil {
		t.Fatalf("ConfigError() = %v", err)
	}
	return g, clk
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%45 == 44:
			inputs[i] = frame(core.ActionHardDrop)
		case i%7 == 0:
			inputs[i] = frame(core.ActionLeft)
		case i%11 == 0:
			inputs[i] = frame(core.ActionRotateCW, core.ActionRight)
		default:
			inputs[i] = frame()
		}
	}

	run := func() Snapshot {
		g, clk := newTestGame(t, config.DefaultTetrisConfig())
		for _, in := range inputs {
			clk.Advance(time.Second / 60)
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if len(snap1.BlockData) == 0 {
		t.Error("Expected settled blocks after hard drops")
	}
}

func TestGameGravityFollowsClock(t *testing.T) {
	g, clk := newTestGame(t, config.DefaultTetrisConfig())

	g.Step(frame())
	if got := g.Engine().DY(); got != 0 {
		t.Fatalf("DY before interval = %d, want 0", got)
	}

	clk.Advance(time.Second)
	g.Step(frame())
	if got := g.Engine().DY(); got != 1 {
		t.Errorf("DY after one interval = %d, want 1", got)
	}
}

func TestGameInputOrder(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultTetrisConfig())
	spawn := g.Engine().Active().Cells
	spawnMin := minCol(spawn[:])

	// Left is applied before the drop, so the piece lands one column over.
	res := g.Step(frame(core.ActionHardDrop, core.ActionLeft))
	if res.Ended {
		t.Fatal("Unexpected end of run")
	}

	var settled []engine.Cell
	for _, b := range g.Engine().Blocks() {
		settled = append(settled, b.Cell)
	}
	if len(settled) != 4 {
		t.Fatalf("Expected 4 settled blocks, got %d", len(settled))
	}
	if got := minCol(settled); got != spawnMin-1 {
		t.Errorf("Leftmost settled column = %d, want %d", got, spawnMin-1)
	}
}

func minCol(cells []engine.Cell) int {
	m := engine.Width
	for _, c := range cells {
		m = min(m, c.Col)
	}
	return m
}

func TestGamePause(t *testing.T) {
	g, clk := newTestGame(t, config.DefaultTetrisConfig())

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("Expected paused state")
	}

	clk.Advance(5 * time.Second)
	g.Step(frame(core.ActionHardDrop))
	if g.Engine().Board().Len() != 0 || g.Engine().DY() != 0 {
		t.Error("Game advanced while paused")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("Expected unpaused state")
	}
	if got := g.Engine().DY(); got != 0 {
		t.Errorf("DY right after resume = %d, want 0", got)
	}

	// The full interval restarts at resume.
	clk.Advance(999 * time.Millisecond)
	g.Step(frame())
	if got := g.Engine().DY(); got != 0 {
		t.Errorf("DY before the interval = %d, want 0", got)
	}
	clk.Advance(time.Millisecond)
	g.Step(frame())
	if got := g.Engine().DY(); got != 1 {
		t.Errorf("DY after the interval = %d, want 1", got)
	}
}

func TestGameResizeBackDoesNotDropImmediately(t *testing.T) {
	g, clk := newTestGame(t, config.DefaultTetrisConfig())

	g.Resize(20, 10)
	clk.Advance(5 * time.Second)
	g.Step(frame())
	g.Resize(80, 24)
	g.Step(frame())

	if got := g.Engine().DY(); got != 0 {
		t.Errorf("DY after growing the window = %d, want 0", got)
	}
}

func dropUntilEnd(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	for i := 0; i < 500; i++ {
		res := g.Step(frame(core.ActionHardDrop))
		if res.Ended {
			return res
		}
	}
	t.Fatal("Board never topped out")
	return core.StepResult{}
}

func TestGameTopOutReset(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultTetrisConfig())

	res := dropUntilEnd(t, g)
	if res.State.GameOver {
		t.Error("Reset mode should not report game over")
	}
	if res.FinalScore != 0 {
		t.Errorf("FinalScore = %d, want 0", res.FinalScore)
	}
	if g.Engine().Board().Len() != 0 {
		t.Error("Board should be empty after reset")
	}
	if g.Snapshot().Runs != 1 {
		t.Errorf("Runs = %d, want 1", g.Snapshot().Runs)
	}
}

func TestGameTopOutHalt(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.TopOut = config.TopOutHalt
	g, _ := newTestGame(t, cfg)

	res := dropUntilEnd(t, g)
	if !res.State.GameOver {
		t.Fatal("Halt mode should report game over")
	}

	g.Step(frame(core.ActionHardDrop))
	if g.Engine().Board().Len() != 0 {
		t.Error("Input applied while halted")
	}

	res = g.Step(frame(core.ActionRestart))
	if res.State.GameOver {
		t.Error("Restart should clear game over")
	}
}

func TestGameStartLevelFromConfig(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	config.ApplyTetrisPreset(&cfg, config.DifficultyHard)
	g, _ := newTestGame(t, cfg)

	if got := g.State().Level; got != 6 {
		t.Errorf("Level = %d, want 6", got)
	}
	if got, want := g.Engine().FallInterval(), engine.DefaultSpeedCurve.Interval(6); got != want {
		t.Errorf("FallInterval = %v, want %v", got, want)
	}
}

func TestGameBadPaletteFallsBack(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Palette = config.PaletteConfig{"Q": "#FFFFFF"}
	clk := mocks.NewMockClock(time.Now())
	g := New(WithClock(clk), WithConfig(cfg))
	g.Reset(testRuntime)

	if g.ConfigError() == nil {
		t.Error("Expected palette error")
	}
	if g.Engine() == nil {
		t.Fatal("Engine should still be created")
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultTetrisConfig())
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Error("Well border not drawn")
	}
	if !strings.Contains(out, "T E T R I S") {
		t.Error("HUD title not drawn")
	}
	if !strings.Contains(out, "░") {
		t.Error("Ghost not drawn")
	}

	active := g.Engine().Active()
	ox := (screen.Width() - minW) / 2
	oy := (screen.Height() - minH) / 2
	c := active.Cells[0]
	cell := screen.GetCell(ox+1+c.Col*cellW, oy+1+c.Row)
	if cell.Rune != blockCh || cell.Color != active.Color {
		t.Errorf("Active cell = %q %s, want %q %s", cell.Rune, cell.Color, blockCh, active.Color)
	}
}

func TestGameRenderWithoutGhost(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Ghost.Enabled = false
	g, _ := newTestGame(t, cfg)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if strings.Contains(screen.String(), "░") {
		t.Error("Ghost drawn while disabled")
	}
}

func TestGameRenderPausedOverlay(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultTetrisConfig())
	g.Step(frame(core.ActionPause))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Pause overlay not drawn")
	}
}

func TestGameTooSmall(t *testing.T) {
	g, clk := newTestGame(t, config.DefaultTetrisConfig())
	g.Resize(30, 10)

	clk.Advance(10 * time.Second)
	g.Step(frame(core.ActionHardDrop))
	if g.Engine().Board().Len() != 0 {
		t.Error("Game advanced while window too small")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Expected too-small message")
	}

	g.Resize(80, 24)
	g.Step(frame(core.ActionHardDrop))
	if g.Engine().Board().Len() != 4 {
		t.Error("Game did not resume after resize")
	}
}

func TestGhostColorDims(t *testing.T) {
	got := ghostColor(core.RGB(0xFF8000))
	if got.Hex() != 0x994C00 {
		t.Errorf("ghostColor = %06X, want 994C00", got.Hex())
	}
}

func TestGamePresetOption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("top_out: reset\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	if err := SetDifficultyPreset("easy"); err != nil {
		t.Fatalf("SetDifficultyPreset() = %v", err)
	}
	t.Cleanup(func() { _ = SetDifficultyPreset("") })

	shared := New(WithClock(mocks.NewMockClock(time.Unix(0, 0))))
	shared.Reset(testRuntime)
	own := New(WithClock(mocks.NewMockClock(time.Unix(0, 0))), WithPreset(config.DifficultyHard))
	own.Reset(testRuntime)

	if err := own.ConfigError(); err != nil {
		t.Fatalf("ConfigError() = %v", err)
	}
	if got := shared.State().Level; got != 0 {
		t.Errorf("package preset level = %d, want 0", got)
	}
	if got := own.State().Level; got != 6 {
		t.Errorf("own preset level = %d, want 6", got)
	}
	if DifficultyPreset() != config.DifficultyEasy {
		t.Errorf("DifficultyPreset() = %q, want easy", DifficultyPreset())
	}
}

func TestSetDifficultyPresetRejectsUnknown(t *testing.T) {
	if err := SetDifficultyPreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
