// Package thememode reads and writes the persisted system theme mode.
package thememode

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/bgtint/internal/config"
)

// Mode is the persisted dark/light preference published by the desktop
// theming system.
type Mode struct {
	IsDark bool `toml:"is_dark"`
}

// Path returns the location of the theme mode file.
func Path() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.ThemeModeFile), nil
}

// Load reads the theme mode, defaulting to light when no file exists.
func Load() (Mode, error) {
	var m Mode
	path, err := Path()
	if err != nil {
		return m, err
	}
	data, err := os.ReadFile(path) // #nosec G304 - path is under the XDG config dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return m, fmt.Errorf("failed to read theme mode: %w", err)
	}
	if err := toml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse theme mode: %w", err)
	}
	return m, nil
}

// Save writes the theme mode.
func (m Mode) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode theme mode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write theme mode: %w", err)
	}
	return nil
}
