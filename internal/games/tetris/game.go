// Package tetris adapts the falling-block engine to the platform: it maps
// input frames to engine commands, drives gravity from the frame loop and
// draws the well into a core.Screen.
package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/clock"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "tetris"

// Layout of the well on screen. Each board cell is two columns wide so
// blocks look square in a terminal.
const (
	cellW   = 2
	wellW   = engine.Width*cellW + 2
	wellH   = engine.Height + 2
	hudW    = 18
	minW    = wellW + hudW
	minH    = wellH
	blockCh = '█'
)

// inputOrder fixes how simultaneous actions in one frame are applied.
var inputOrder = []struct {
	action core.Action
	input  engine.Input
}{
	{core.ActionLeft, engine.InputLeft},
	{core.ActionRight, engine.InputRight},
	{core.ActionRotateCW, engine.InputRotateCW},
	{core.ActionRotateCCW, engine.InputRotateCCW},
	{core.ActionHardDrop, engine.InputHardDrop},
}

// Game implements registry.Game on top of engine.Game.
type Game struct {
	engine  *engine.Game
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	clock   clock.Clock

	// fixed is set when the config was injected and must not be reloaded.
	fixed bool
	// preset overrides the package-wide preset when ownPreset is set.
	preset    config.DifficultyPreset
	ownPreset bool
	// configErr holds the last load problem; the run falls back to defaults.
	configErr error

	ghost    rune
	tick     uint64
	idle     bool // the last frame skipped the simulation
	runs     int
	paused   bool
	halted   bool
	tooSmall bool

	// Result of the run that topped out, shown while halted.
	lastLines int
	lastLevel int
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the clock driving gravity.
func WithClock(c clock.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithConfig uses cfg instead of loading configuration files on Reset.
func WithConfig(cfg config.TetrisConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.fixed = true
	}
}

// WithPreset applies preset on every Reset instead of the one set with
// SetDifficultyPreset. Sessions sharing a process use it to stay independent.
func WithPreset(preset config.DifficultyPreset) Option {
	return func(g *Game) {
		g.preset = preset
		g.ownPreset = true
	}
}

// New creates a game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{clock: clock.New()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register(GameID, "Tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset starts a new run with a fresh board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.configErr = nil

	if !g.fixed {
		cfg, err := loadConfig(g.activePreset())
		g.cfg = cfg
		g.configErr = err
	}

	opts, err := engineOptions(g.cfg, runtime.Seed, g.clock)
	if err != nil {
		g.configErr = err
		g.cfg = config.DefaultTetrisConfig()
		opts, _ = engineOptions(g.cfg, runtime.Seed, g.clock)
	}

	g.engine = engine.New(opts...)
	g.ghost = g.cfg.Ghost.GhostRune()
	g.tick = 0
	g.runs = 0
	g.paused = false
	g.halted = false
	g.idle = false
	g.lastLines = 0
	g.lastLevel = 0
	g.tooSmall = runtime.ScreenW < minW || runtime.ScreenH < minH
}

func (g *Game) activePreset() config.DifficultyPreset {
	if g.ownPreset {
		return g.preset
	}
	return difficultyPreset
}

// ConfigError returns the problem found while loading configuration for the
// current run, if any.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Step advances one frame: gravity if due, then the frame's inputs.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.halted {
		if in.Has(core.ActionRestart) {
			g.halted = false
		}
		g.idle = true
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		g.idle = true
		return core.StepResult{State: g.State()}
	}

	// Time spent paused, halted or too small does not count toward gravity.
	if g.idle {
		g.idle = false
		g.engine.RestartFallTimer()
	}

	var res core.StepResult
	if g.engine.FallDue() {
		g.record(g.engine.Update(), &res)
	}
	if !g.halted {
		g.engine.UpdateProjection()
		for _, m := range inputOrder {
			if !in.Has(m.action) {
				continue
			}
			g.record(g.engine.HandleInput(m.input), &res)
			if g.halted {
				break
			}
		}
	}

	res.State = g.State()
	return res
}

// record folds an engine outcome into the frame result.
func (g *Game) record(out engine.Outcome, res *core.StepResult) {
	if !out.Reset {
		return
	}
	g.runs++
	res.Ended = true
	res.FinalScore = out.FinalLines
	res.FinalLevel = out.FinalLevel
	if g.cfg.TopOut == config.TopOutHalt {
		g.halted = true
		g.lastLines = out.FinalLines
		g.lastLevel = out.FinalLevel
	}
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < minW || h < minH
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.halted {
		return core.GameState{
			Score:    g.lastLines,
			Level:    g.lastLevel,
			GameOver: true,
		}
	}
	return core.GameState{
		Score:  g.engine.LinesCleared(),
		Level:  g.engine.Level(),
		Paused: g.paused,
	}
}

// Engine exposes the simulation for tests and debugging.
func (g *Game) Engine() *engine.Game {
	return g.engine
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	ox := (dst.Width() - minW) / 2
	oy := (dst.Height() - minH) / 2
	well := core.NewRect(ox, oy, wellW, wellH)

	dst.DrawBox(well, core.ColorGray)
	g.renderBlocks(dst, well)
	g.renderHUD(dst, ox+wellW+2, oy+1)

	switch {
	case g.halted:
		g.renderOverlay(dst, well, "GAME OVER", fmt.Sprintf("Lines %d", g.lastLines), "R to restart")
	case g.paused:
		g.renderOverlay(dst, well, "PAUSED", "", "P to resume")
	}
}

func (g *Game) renderBlocks(dst *core.Screen, well core.Rect) {
	put := func(c engine.Cell, ch rune, color core.Color) {
		x := well.X + 1 + c.Col*cellW
		y := well.Y + 1 + c.Row
		for i := 0; i < cellW; i++ {
			dst.SetColored(x+i, y, ch, color)
		}
	}

	for _, b := range g.engine.Blocks() {
		put(b.Cell, blockCh, b.Color)
	}
	if g.halted {
		return
	}

	active := g.engine.Active()
	if g.ghost != 0 {
		ghost := g.engine.Ghost()
		for _, c := range ghost.Cells {
			put(c, g.ghost, ghostColor(ghost.Color))
		}
	}
	for _, c := range active.Cells {
		put(c, blockCh, active.Color)
	}
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	state := g.State()
	interval := g.engine.FallInterval()

	dst.DrawTextColored(x, y, "T E T R I S", core.ColorWhite)
	dst.DrawText(x, y+2, fmt.Sprintf("Lines  %d", state.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Level  %d", state.Level))
	dst.DrawText(x, y+4, fmt.Sprintf("Speed  %s", interval.Round(time.Millisecond)))
	if preset := g.activePreset(); preset != "" {
		dst.DrawText(x, y+5, fmt.Sprintf("Mode   %s", preset))
	}

	dst.DrawHLine(x, y+7, hudW-2, '─')
	help := []string{
		"←/→   move",
		"↑ x   rotate",
		"↓ z   rotate back",
		"space drop",
		"p     pause",
		"q     quit",
	}
	for i, line := range help {
		dst.DrawTextColored(x, y+8+i, line, core.ColorGray)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, well core.Rect, title, detail, hint string) {
	box := core.NewRect(well.X+2, well.Y+well.H/2-3, well.W-4, 7)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	center := func(y int, text string, c core.Color) {
		x := box.X + (box.W-len([]rune(text)))/2
		dst.DrawTextColored(x, y, text, c)
	}
	center(box.Y+1, title, core.ColorRed)
	center(box.Y+3, detail, core.ColorDefault)
	center(box.Y+5, hint, core.ColorGray)
}

// ghostColor dims a piece color for the landing preview.
func ghostColor(c core.Color) core.Color {
	hex := c.Hex()
	r, g, b := hex>>16&0xFF, hex>>8&0xFF, hex&0xFF
	return core.RGB((r*3/5)<<16 | (g*3/5)<<8 | b*3/5)
}
