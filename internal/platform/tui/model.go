package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	player     string
	difficulty string
	runStart   time.Time
	best       int
	notice     string

	allowBack  bool
	backToMenu bool
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithStore records finished runs in store.
func WithStore(store *storage.Store) ModelOption {
	return func(m *Model) { m.store = store }
}

// WithLogger sets the logger for run events.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) { m.logger = logger }
}

// WithPlayer tags saved runs with a player name.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithDifficulty tags saved runs with the difficulty preset.
func WithDifficulty(preset string) ModelOption {
	return func(m *Model) { m.difficulty = preset }
}

// WithMenuReturn lets B leave a paused or finished game for the menu.
func WithMenuReturn() ModelOption {
	return func(m *Model) { m.allowBack = true }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if ce, ok := m.game.(interface{ ConfigError() error }); ok && ce.ConfigError() != nil {
		m.logger.Warn("config problem, using defaults", "game", m.game.ID(), "error", ce.ConfigError())
	}
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tea.Batch(tickCmd(m.config.TickRate), m.loadBest())
}

type bestMsg int

func (m Model) loadBest() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, id := m.store, m.game.ID()
	return func() tea.Msg {
		best, err := store.HighScore(id)
		if err != nil {
			return nil
		}
		return bestMsg(best)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case bestMsg:
		m.best = max(m.best, int(msg))
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.allowBack && (m.gameState.Paused || m.gameState.GameOver) {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	if m.runStart.IsZero() {
		m.runStart = time.Now()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Ended {
		m.recordRun(result)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun logs a finished run and stores it when it cleared any lines.
func (m *Model) recordRun(result core.StepResult) {
	elapsed := time.Since(m.runStart)
	m.runStart = time.Now()

	m.logger.Info("run ended",
		"game", m.game.ID(),
		"lines", result.FinalScore,
		"level", result.FinalLevel,
		"player", m.player,
		"duration", elapsed.Round(time.Second),
	)

	if result.FinalScore > m.best {
		m.best = result.FinalScore
		m.notice = fmt.Sprintf("New best: %d lines", result.FinalScore)
	}

	if m.store == nil || result.FinalScore <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID:     m.game.ID(),
		Player:     m.player,
		Lines:      result.FinalScore,
		Level:      result.FinalLevel,
		Difficulty: m.difficulty,
		Duration:   elapsed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := config.UserPath("screenshots")
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.notice = "Screenshot saved"
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	m.renderStatus()
	return RenderScreen(m.screen)
}

// renderStatus writes the best score and the latest notice on the bottom row.
func (m Model) renderStatus() {
	y := m.screen.Height() - 1
	if y < 1 {
		return
	}
	status := ""
	if m.store != nil {
		status = fmt.Sprintf(" Best %d", m.best)
	}
	if m.notice != "" {
		status += "  " + m.notice
	}
	if m.allowBack && (m.gameState.Paused || m.gameState.GameOver) {
		status += "  B: menu"
	}
	m.screen.DrawTextColored(0, y, status, core.ColorGray)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// It reports whether the player left for the menu rather than quitting.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
