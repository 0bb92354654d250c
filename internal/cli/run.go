package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/bgtint/internal/app"
	"github.com/jmylchreest/bgtint/internal/config"
	"github.com/jmylchreest/bgtint/internal/palette"
	"github.com/jmylchreest/bgtint/internal/theme"
	"github.com/jmylchreest/bgtint/internal/thememode"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch theme mode and wallpaper changes and keep the palette current",
	Long: `Run the background loop.

The loop watches the applet configuration, the background daemon state and
the system theme mode. On a theme-mode flip it applies the wallpaper set
stored for the new mode (when switching is enabled); on any change it
recomputes the swatch palette from the active wallpapers.`,
	RunE: runRun,
}

// runRun executes the run command.
func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using default config", "error", err)
	}
	mode, err := thememode.Load()
	if err != nil {
		logger.Warn("using default theme mode", "error", err)
	}

	accents, err := theme.NewFileSetter()
	if err != nil {
		return fmt.Errorf("failed to set up accent setter: %w", err)
	}

	model := app.New(cfg, mode, palette.NewExtractor(logger), accents, logger)
	logPalette(logger, model)

	watcher, err := config.Watch(logger)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for changes", "enabled", cfg.Enabled, "dark", mode.IsDark)

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if err := dispatch(model, event, logger); err != nil {
				logger.Error("failed to handle change", "event", event.String(), "error", err)
				continue
			}
			logPalette(logger, model)
		}
	}
}

// dispatch reloads the changed file and feeds the matching message into
// the model.
func dispatch(model *app.Model, event config.Event, logger hclog.Logger) error {
	switch event {
	case config.EventConfig:
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return model.Update(app.ConfigChanged{Config: cfg})
	case config.EventState:
		st, err := config.LoadState()
		if err != nil {
			return err
		}
		return model.Update(app.StateChanged{State: st})
	case config.EventThemeMode:
		mode, err := thememode.Load()
		if err != nil {
			return err
		}
		return model.Update(app.ThemeModeChanged{Mode: mode})
	}
	logger.Debug("ignoring event", "event", event.String())
	return nil
}

// logPalette reports the current swatches at debug level.
func logPalette(logger hclog.Logger, model *app.Model) {
	swatches := model.Palette()
	hexes := make([]string, len(swatches))
	for i, c := range swatches {
		hexes[i] = c.Hex()
	}
	logger.Debug("current palette", "colours", hexes)
}
