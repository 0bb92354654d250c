// Package config persists the applet configuration and mirrors the
// background daemon state it reacts to.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/bgtint/internal/wallpaper"
)

// File names under the configuration directory.
const (
	ConfigFile    = "config.toml"
	StateFile     = "state.toml"
	ThemeModeFile = "thememode.toml"
	AccentFile    = "accent.toml"
)

// Config is the persisted applet configuration: whether per-mode wallpaper
// switching is enabled, and the wallpaper set stored for each theme mode.
type Config struct {
	Enabled bool    `toml:"enabled"`
	Dark    ModeSet `toml:"dark"`
	Light   ModeSet `toml:"light"`
}

// ModeSet is the wallpaper set applied when its theme mode becomes active:
// a default source plus per-output overrides.
type ModeSet struct {
	Default wallpaper.Source            `toml:"default"`
	Outputs map[string]wallpaper.Source `toml:"outputs,omitempty"`
}

// Sources returns the set's sources in a deterministic order: the default
// first, then the per-output overrides sorted by output name.
func (m ModeSet) Sources() []wallpaper.Source {
	sources := make([]wallpaper.Source, 0, len(m.Outputs)+1)
	if !m.Default.IsZero() {
		sources = append(sources, m.Default)
	}
	outputs := make([]string, 0, len(m.Outputs))
	for name := range m.Outputs {
		outputs = append(outputs, name)
	}
	sort.Strings(outputs)
	for _, name := range outputs {
		sources = append(sources, m.Outputs[name])
	}
	return sources
}

// Set returns the wallpaper set stored for the given theme mode.
func (c Config) Set(dark bool) ModeSet {
	if dark {
		return c.Dark
	}
	return c.Light
}

// Default returns the configuration used when none has been saved yet.
func Default() Config {
	return Config{Enabled: false}
}

// Dir returns the configuration directory, creating nothing.
// Honours XDG_CONFIG_HOME and falls back to ~/.config.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "bgtint"), nil
}

// Path returns the location of the applet configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// Load reads the configuration, returning defaults when no file exists.
func Load() (Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	return cfg, loadTOML(path, &cfg)
}

// Save writes the configuration atomically.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return saveTOML(path, c)
}

// loadTOML decodes a TOML file into v. A missing file leaves v untouched.
func loadTOML(path string, v any) error {
	data, err := os.ReadFile(path) // #nosec G304 - paths come from the XDG config dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// saveTOML encodes v and writes it atomically via a temp file rename.
func saveTOML(path string, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
