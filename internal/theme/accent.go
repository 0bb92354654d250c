// Package theme forwards accent-colour selections to the desktop theming
// system.
package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/bgtint/internal/colour"
	"github.com/jmylchreest/bgtint/internal/config"
)

// AccentSetter applies an accent colour system-wide.
type AccentSetter interface {
	SetAccent(c colour.RGB) error
}

// FileSetter writes the accent colour into a theme override file read by
// the shell's theming daemon.
type FileSetter struct {
	path string
}

// NewFileSetter creates a FileSetter targeting the default override file.
func NewFileSetter() (*FileSetter, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return &FileSetter{path: filepath.Join(dir, config.AccentFile)}, nil
}

// SetAccent persists the accent colour.
func (s *FileSetter) SetAccent(c colour.RGB) error {
	data, err := toml.Marshal(struct {
		Accent colour.RGB `toml:"accent"`
	}{Accent: c})
	if err != nil {
		return fmt.Errorf("failed to encode accent colour: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write accent colour: %w", err)
	}
	return nil
}
