package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const configFile = "tetris.yaml"

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// An explicit customPath that cannot be read or parsed is an error; the other
// locations are skipped when missing or broken.
func LoadTetris(customPath string) (TetrisConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decode(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	path, err := UserPath("configs", filename)
	if err != nil {
		return ""
	}
	return path
}

// Validate checks ranges and formats.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Speed.Base <= 0 {
		errs = append(errs, fmt.Errorf("speed.base must be positive, got %v", c.Speed.Base))
	}
	if c.Speed.Decay < 0 {
		errs = append(errs, fmt.Errorf("speed.decay must not be negative, got %v", c.Speed.Decay))
	}
	if c.Speed.MinIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("speed.min_interval_ms must not be negative, got %d", c.Speed.MinIntervalMS))
	}
	if c.Difficulty.StartLevel < 0 {
		errs = append(errs, fmt.Errorf("difficulty.start_level must not be negative, got %d", c.Difficulty.StartLevel))
	}
	for letter, hex := range c.Palette {
		if _, err := core.ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("palette.%s: %w", letter, err))
		}
	}
	if c.Ghost.Enabled && utf8.RuneCountInString(c.Ghost.Glyph) != 1 {
		errs = append(errs, fmt.Errorf("ghost.glyph must be a single character, got %q", c.Ghost.Glyph))
	}
	switch c.TopOut {
	case TopOutReset, TopOutHalt:
	default:
		errs = append(errs, fmt.Errorf("top_out must be %q or %q, got %q", TopOutReset, TopOutHalt, c.TopOut))
	}
	return errors.Join(errs...)
}

// MinInterval returns the speed floor as a duration.
func (s SpeedConfig) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMS) * time.Millisecond
}

// Colors parses the palette into letter -> color. Letters are upper-cased;
// a lower-case key overrides its upper-case twin.
func (p PaletteConfig) Colors() (map[string]core.Color, error) {
	letters := make([]string, 0, len(p))
	for letter := range p {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	out := make(map[string]core.Color, len(p))
	for _, letter := range letters {
		hex := p[letter]
		c, err := core.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("config: palette.%s: %w", letter, err)
		}
		out[strings.ToUpper(letter)] = c
	}
	return out, nil
}

// GhostRune returns the ghost glyph, or 0 when the ghost is disabled.
func (g GhostConfig) GhostRune() rune {
	if !g.Enabled {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(g.Glyph)
	if r == utf8.RuneError {
		return 0
	}
	return r
}
