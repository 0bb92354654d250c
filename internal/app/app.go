// Package app holds the applet state and the message dispatch that drives
// it. All mutable state lives on the Model; handlers never touch globals.
package app

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/bgtint/internal/colour"
	"github.com/jmylchreest/bgtint/internal/config"
	"github.com/jmylchreest/bgtint/internal/palette"
	"github.com/jmylchreest/bgtint/internal/theme"
	"github.com/jmylchreest/bgtint/internal/thememode"
)

// Message is an event dispatched into the model by the surrounding loop.
type Message interface {
	isMessage()
}

// ThemeModeChanged reports a new system theme mode.
type ThemeModeChanged struct {
	Mode thememode.Mode
}

// ConfigChanged reports a reloaded applet configuration.
type ConfigChanged struct {
	Config config.Config
}

// StateChanged reports the background daemon's current wallpapers.
type StateChanged struct {
	State config.State
}

// Toggled flips per-mode wallpaper switching on or off.
type Toggled struct {
	Enabled bool
}

// SwatchActivated requests the palette entry at Index become the system
// accent colour.
type SwatchActivated struct {
	Index int
}

func (ThemeModeChanged) isMessage() {}
func (ConfigChanged) isMessage()    {}
func (StateChanged) isMessage()     {}
func (Toggled) isMessage()          {}
func (SwatchActivated) isMessage()  {}

// Model owns the applet state: configuration, active theme mode and the
// palette currently on screen.
type Model struct {
	cfg       config.Config
	mode      thememode.Mode
	swatches  []colour.RGB
	extractor *palette.Extractor
	accents   theme.AccentSetter
	logger    hclog.Logger
}

// New creates a Model and computes the initial palette.
func New(cfg config.Config, mode thememode.Mode, extractor *palette.Extractor, accents theme.AccentSetter, logger hclog.Logger) *Model {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	m := &Model{
		cfg:       cfg,
		mode:      mode,
		extractor: extractor,
		accents:   accents,
		logger:    logger,
	}
	m.recompute()
	return m
}

// Config returns the current configuration.
func (m *Model) Config() config.Config {
	return m.cfg
}

// Mode returns the current theme mode.
func (m *Model) Mode() thememode.Mode {
	return m.mode
}

// Palette returns the swatches for the active wallpaper set. The slice is
// replaced wholesale on every recomputation; callers must not mutate it.
func (m *Model) Palette() []colour.RGB {
	return m.swatches
}

// Update dispatches one message into the model.
func (m *Model) Update(msg Message) error {
	switch msg := msg.(type) {
	case ThemeModeChanged:
		return m.themeModeChanged(msg.Mode)
	case ConfigChanged:
		m.cfg = msg.Config
		m.recompute()
		return nil
	case StateChanged:
		return m.stateChanged(msg.State)
	case Toggled:
		m.cfg.Enabled = msg.Enabled
		if err := m.cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		return nil
	case SwatchActivated:
		return m.swatchActivated(msg.Index)
	}
	return fmt.Errorf("unhandled message %T", msg)
}

// themeModeChanged applies the stored wallpaper set for the new mode (when
// switching is enabled) and recomputes the palette.
func (m *Model) themeModeChanged(mode thememode.Mode) error {
	m.mode = mode
	if m.cfg.Enabled {
		set := m.cfg.Set(mode.IsDark)
		if err := config.ApplySet(set).Save(); err != nil {
			return fmt.Errorf("failed to apply wallpaper set: %w", err)
		}
		m.logger.Info("applied wallpaper set", "dark", mode.IsDark)
	}
	m.recompute()
	return nil
}

// stateChanged snapshots the daemon's current wallpapers into the set for
// the active mode and persists the configuration.
func (m *Model) stateChanged(st config.State) error {
	set := st.ModeSet()
	if m.mode.IsDark {
		m.cfg.Dark = set
	} else {
		m.cfg.Light = set
	}
	if err := m.cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	m.recompute()
	return nil
}

// swatchActivated forwards a "set accent colour" request for the activated
// palette entry.
func (m *Model) swatchActivated(index int) error {
	if index < 0 || index >= len(m.swatches) {
		return fmt.Errorf("swatch index out of range: %d (palette has %d colours)", index, len(m.swatches))
	}
	c := m.swatches[index]
	if err := m.accents.SetAccent(c); err != nil {
		return fmt.Errorf("failed to set accent colour: %w", err)
	}
	m.logger.Info("accent colour set", "colour", c.Hex())
	return nil
}

// recompute rebuilds the palette from the active mode's wallpaper set.
// The palette is always replaced as a whole, never patched.
func (m *Model) recompute() {
	sources := m.cfg.Set(m.mode.IsDark).Sources()
	m.swatches = m.extractor.Palette(sources)
	m.logger.Debug("palette recomputed", "dark", m.mode.IsDark, "sources", len(sources), "colours", len(m.swatches))
}
