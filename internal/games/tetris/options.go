package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/clock"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/random"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI or menu
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// DifficultyPreset returns the preset applied on Reset.
func DifficultyPreset() config.DifficultyPreset {
	return difficultyPreset
}

// loadConfig resolves the configuration for a new run.
func loadConfig(preset config.DifficultyPreset) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(configPath)
	config.ApplyTetrisPreset(&cfg, preset)
	return cfg, err
}

// engineOptions converts a config into engine options for one run.
func engineOptions(cfg config.TetrisConfig, seed int64, clk clock.Clock) ([]engine.Option, error) {
	palette, err := paletteFrom(cfg.Palette)
	if err != nil {
		return nil, err
	}

	return []engine.Option{
		engine.WithSource(engine.NewUniformSource(random.NewSeeded(seed))),
		engine.WithClock(clk),
		engine.WithSpeedCurve(engine.SpeedCurve{
			Base:        cfg.Speed.Base,
			Decay:       cfg.Speed.Decay,
			MinInterval: cfg.Speed.MinInterval(),
		}),
		engine.WithPalette(palette),
		engine.WithStartLevel(cfg.Difficulty.StartLevel),
		engine.WithProgression(cfg.Difficulty.Progression),
	}, nil
}

func paletteFrom(pc config.PaletteConfig) (engine.Palette, error) {
	palette := engine.DefaultPalette()
	colors, err := pc.Colors()
	if err != nil {
		return palette, err
	}
	for letter, c := range colors {
		kind, ok := engine.ParseKind(letter)
		if !ok {
			return palette, fmt.Errorf("tetris: palette names unknown piece %q", letter)
		}
		palette[kind] = c
	}
	return palette, nil
}
