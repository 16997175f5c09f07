package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDir is the per-user directory, under the home directory, holding
// configs, scores, screenshots and the SSH host key.
const AppDir = ".tetris"

// DefaultDBPath is the scores database used when no path is given.
const DefaultDBPath = "~/" + AppDir + "/scores.db"

// UserPath joins elem under ~/.tetris.
func UserPath(elem ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot get home directory: %w", err)
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...), nil
}
