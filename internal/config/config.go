// Package config provides YAML-based configuration loading and difficulty
// presets for the falling-block game.
package config

// TetrisConfig contains all tunable settings for the game.
type TetrisConfig struct {
	Speed      SpeedConfig      `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Palette    PaletteConfig    `yaml:"palette"`
	Ghost      GhostConfig      `yaml:"ghost"`
	TopOut     TopOutMode       `yaml:"top_out"`
}

// SpeedConfig defines the fall interval curve: (base - level*decay)^level seconds.
type SpeedConfig struct {
	Base          float64 `yaml:"base"`
	Decay         float64 `yaml:"decay"`
	MinIntervalMS int     `yaml:"min_interval_ms"` // 0 disables the floor
}

// DifficultyConfig defines where the level starts and whether it climbs.
type DifficultyConfig struct {
	StartLevel  int  `yaml:"start_level"`
	Progression bool `yaml:"progression"` // false pins the level at start_level
}

// PaletteConfig maps a piece letter (I, J, L, O, S, T, Z) to a hex color.
// Missing letters keep their default color.
type PaletteConfig map[string]string

// GhostConfig controls the landing preview.
type GhostConfig struct {
	Enabled bool   `yaml:"enabled"`
	Glyph   string `yaml:"glyph"`
}

// TopOutMode selects what the player sees when a new piece cannot spawn.
type TopOutMode string

const (
	// TopOutReset starts a fresh board immediately.
	TopOutReset TopOutMode = "reset"
	// TopOutHalt shows a game over overlay until the player restarts.
	TopOutHalt TopOutMode = "halt"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
