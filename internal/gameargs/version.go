package gameargs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Skpow1234/oxilauncher/internal/util"
)

// BaseVersionFile is the base repository's version file, relative to the game directory.
var BaseVersionFile = filepath.Join("game", "ffxivgame.ver")

// ReadRepositoryVersion returns the base game repository version under gameDir.
func ReadRepositoryVersion(gameDir string) (string, error) {
	path := filepath.Join(gameDir, BaseVersionFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", util.ErrRepositoryRead, err)
	}
	v := strings.TrimSpace(string(raw))
	if v == "" {
		return "", fmt.Errorf("%w: %s is empty", util.ErrRepositoryRead, path)
	}
	return v, nil
}
