package config

import (
	"fmt"
	"strings"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficultyPreset maps a CLI or menu value to a preset. The empty
// string yields the empty preset, which leaves the loaded config untouched.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	v := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return "", nil
	}
	for _, p := range Presets {
		if v == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// StartLevelForPreset returns the start level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Start at level 0, speed up every 10 lines"
	case DifficultyNormal:
		return "Start at level 3, speed up every 10 lines"
	case DifficultyHard:
		return "Start at level 6, speed up every 10 lines"
	case DifficultyFixed:
		return "Level 0 forever"
	default:
		return ""
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.StartLevel = StartLevelForPreset(preset)
	cfg.Difficulty.Progression = !IsFixedPreset(preset)
}
