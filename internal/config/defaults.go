package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Speed: SpeedConfig{
			Base:  0.8,
			Decay: 0.007,
		},
		Difficulty: DifficultyConfig{
			StartLevel:  0,
			Progression: true,
		},
		Palette: PaletteConfig{
			"L": "#C16815",
			"J": "#141BCB",
			"O": "#CBCC24",
			"I": "#58CCCD",
			"T": "#9122CB",
			"Z": "#BE190F",
			"S": "#53CA1F",
		},
		Ghost: GhostConfig{
			Enabled: true,
			Glyph:   "░",
		},
		TopOut: TopOutReset,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
