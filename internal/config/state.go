package config

import (
	"path/filepath"

	"github.com/jmylchreest/bgtint/internal/wallpaper"
)

// State mirrors what the background daemon currently displays: the default
// source and the per-output wallpapers. The daemon owns this file; we read
// it on change and write it back when switching modes.
type State struct {
	Default    wallpaper.Source            `toml:"default"`
	Wallpapers map[string]wallpaper.Source `toml:"wallpapers,omitempty"`
}

// StatePath returns the location of the background state file.
func StatePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StateFile), nil
}

// LoadState reads the background state, returning the zero state when no
// file exists.
func LoadState() (State, error) {
	var st State
	path, err := StatePath()
	if err != nil {
		return st, err
	}
	return st, loadTOML(path, &st)
}

// Save writes the background state atomically.
func (s State) Save() error {
	path, err := StatePath()
	if err != nil {
		return err
	}
	return saveTOML(path, s)
}

// ModeSet converts the state snapshot into a wallpaper set that can be
// stored for a theme mode.
func (s State) ModeSet() ModeSet {
	return ModeSet{Default: s.Default, Outputs: s.Wallpapers}
}

// ApplySet converts a stored wallpaper set into a state ready to be
// written out for the background daemon.
func ApplySet(set ModeSet) State {
	return State{Default: set.Default, Wallpapers: set.Outputs}
}
