package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemScores
	itemQuit
)

var menuItems = []menuItem{itemPlay, itemDifficulty, itemScores, itemQuit}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor     int
	difficulty int // index into config.Presets
	width      int
	height     int
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	best       int

	quitting       bool
	start          bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model with preset preselected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range config.Presets {
		if p == preset {
			m.difficulty = i
		}
	}
	if preset == "" {
		m.difficulty = 1 // normal
	}
	if store != nil {
		if best, err := store.HighScore(tetris.GameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuItems[m.cursor] == itemDifficulty {
			m.cycleDifficulty(-1)
		}

	case MenuActionRight:
		if menuItems[m.cursor] == itemDifficulty {
			m.cycleDifficulty(1)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch menuItems[m.cursor] {
		case itemPlay:
			m.start = true
			return m, tea.Quit
		case itemDifficulty:
			m.cycleDifficulty(1)
		case itemScores:
			m.openScoreboard = true
			return m, tea.Quit
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *MenuModel) cycleDifficulty(delta int) {
	n := len(config.Presets)
	m.difficulty = (m.difficulty + delta + n) % n
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true)
	menuItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// titleKinds colors the title letters with piece colors.
var titleKinds = []engine.Kind{engine.KindZ, engine.KindL, engine.KindO, engine.KindS, engine.KindI, engine.KindT}

func renderTitle() string {
	var parts []string
	for i, r := range "TETRIS" {
		color := titleKinds[i%len(titleKinds)].Color()
		parts = append(parts, menuTitleStyle.Foreground(lipgloss.Color(color.String())).Render(string(r)))
	}
	return strings.Join(parts, " ")
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		renderTitle(),
		"",
		menuDimStyle.Render(fmt.Sprintf("Best: %d lines", m.best)),
		"",
	}

	for i, item := range menuItems {
		var label string
		switch item {
		case itemPlay:
			label = "Play"
		case itemDifficulty:
			label = fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
		case itemScores:
			label = "High scores"
		case itemQuit:
			label = "Quit"
		}

		if i == m.cursor {
			lines = append(lines, menuCursor.Render("> "+label))
		} else {
			lines = append(lines, menuItemStyle.Render("  "+label))
		}
	}

	lines = append(lines,
		"",
		menuDimStyle.Render(m.Difficulty().Description()),
		"",
		menuDimStyle.Render("Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"),
	)

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return block
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

// Starting returns true if the user chose to play.
func (m MenuModel) Starting() bool {
	return m.start
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Start           bool
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Starting():
		result.Start = true
	default:
		result.Quit = true
	}
	return result, nil
}
