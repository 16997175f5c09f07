package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func menuPress(t *testing.T, m MenuModel, keys ...string) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		model, ok := next.(MenuModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = model
	}
	return m
}

func TestMenuDefaultsToNormal(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), "")
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("Difficulty() = %q, want normal", m.Difficulty())
	}

	m = NewMenuModel(nil, testRuntime(), config.DifficultyFixed)
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("Difficulty() = %q, want fixed", m.Difficulty())
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyEasy)

	// Left/right only act on the difficulty row
	m = menuPress(t, m, "right")
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("right on Play changed difficulty to %q", m.Difficulty())
	}

	m = menuPress(t, m, "down", "right", "right")
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty() = %q, want hard", m.Difficulty())
	}

	m = menuPress(t, m, "left", "left", "left")
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("Difficulty() = %q, want fixed after wrapping", m.Difficulty())
	}

	m = menuPress(t, m, "enter")
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("enter on difficulty = %q, want easy", m.Difficulty())
	}
	if m.Starting() {
		t.Error("enter on the difficulty row started a game")
	}
}

func TestMenuSelections(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		check  func(MenuModel) bool
		result string
	}{
		{"play", []string{"enter"}, MenuModel.Starting, "Starting"},
		{"scores row", []string{"down", "down", "enter"}, MenuModel.WantsScoreboard, "WantsScoreboard"},
		{"scores shortcut", []string{"tab"}, MenuModel.WantsScoreboard, "WantsScoreboard"},
		{"quit row", []string{"down", "down", "down", "enter"}, MenuModel.IsQuitting, "IsQuitting"},
		{"quit key", []string{"q"}, MenuModel.IsQuitting, "IsQuitting"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := menuPress(t, NewMenuModel(nil, testRuntime(), ""), tc.keys...)
			if !tc.check(m) {
				t.Errorf("%s() = false", tc.result)
			}
		})
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := menuPress(t, NewMenuModel(nil, testRuntime(), ""), "up", "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	m = menuPress(t, m, "down", "down", "down", "down", "down")
	if m.cursor != len(menuItems)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(menuItems)-1)
	}
}

func TestMenuViewShowsBestAndDifficulty(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: tetris.GameID, Lines: 37, Duration: time.Minute}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, testRuntime(), config.DifficultyHard)
	view := m.View()

	for _, want := range []string{"Best: 37 lines", "Difficulty: < hard >", "Play", "High scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() = %q, want unchanged", got)
	}
}
