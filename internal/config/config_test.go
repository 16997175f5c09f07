package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultTetrisConfig().Validate())
}

func TestLoadTetrisCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("difficulty:\n  start_level: 4\npalette:\n  T: \"#123456\"\ntop_out: halt\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Difficulty.StartLevel)
	assert.True(t, cfg.Difficulty.Progression)
	assert.Equal(t, 0.8, cfg.Speed.Base)
	assert.Equal(t, TopOutHalt, cfg.TopOut)
	assert.Equal(t, "#123456", cfg.Palette["T"])
	assert.Equal(t, "#58CCCD", cfg.Palette["I"])
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	cfg, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: failed to read")
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "speed: [",
		"zero base":      "speed:\n  base: 0\n",
		"negative level": "difficulty:\n  start_level: -1\n",
		"bad color":      "palette:\n  S: \"#12\"\n",
		"long glyph":     "ghost:\n  glyph: \"ab\"\n",
		"unknown topout": "top_out: explode\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tetris.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			_, err := LoadTetris(path)
			assert.Error(t, err)
		})
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		startLevel  int
		progression bool
	}{
		{DifficultyEasy, 0, true},
		{DifficultyNormal, 3, true},
		{DifficultyHard, 6, true},
		{DifficultyFixed, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tt.preset)
			assert.Equal(t, tt.startLevel, cfg.Difficulty.StartLevel)
			assert.Equal(t, tt.progression, cfg.Difficulty.Progression)
		})
	}

	cfg := DefaultTetrisConfig()
	cfg.Difficulty.StartLevel = 9
	ApplyTetrisPreset(&cfg, "")
	assert.Equal(t, 9, cfg.Difficulty.StartLevel)
}

func TestParseDifficultyPreset(t *testing.T) {
	p, err := ParseDifficultyPreset(" Hard ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	p, err = ParseDifficultyPreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPreset(""), p)

	_, err = ParseDifficultyPreset("nightmare")
	assert.Error(t, err)
}

func TestPaletteColors(t *testing.T) {
	colors, err := PaletteConfig{"T": "#9122CB", "t": "#000001", "i": "58CCCD"}.Colors()
	require.NoError(t, err)

	assert.Equal(t, core.RGB(0x000001), colors["T"])
	assert.Equal(t, core.RGB(0x58CCCD), colors["I"])
	assert.Len(t, colors, 2)
}

func TestGhostRune(t *testing.T) {
	assert.Equal(t, '░', GhostConfig{Enabled: true, Glyph: "░"}.GhostRune())
	assert.Equal(t, rune(0), GhostConfig{Enabled: false, Glyph: "░"}.GhostRune())
}

func TestSpeedMinInterval(t *testing.T) {
	assert.Equal(t, 16*time.Millisecond, SpeedConfig{MinIntervalMS: 16}.MinInterval())
	assert.Equal(t, time.Duration(0), DefaultTetrisConfig().Speed.MinInterval())
}

func TestUserPathUnderTetrisDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := UserPath("configs", "tetris.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tetris", "configs", "tetris.yaml"), path)
	assert.Equal(t, "~/.tetris/scores.db", DefaultDBPath)
}

func TestLoadTetrisReadsUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".tetris", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tetris.yaml"), []byte("difficulty:\n  start_level: 4\n"), 0o600))

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Difficulty.StartLevel)
}
