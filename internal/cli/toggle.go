package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/bgtint/internal/config"
)

// toggleCmd represents the toggle command.
var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle per-mode wallpaper switching on or off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Enabled = !cfg.Enabled
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		if cfg.Enabled {
			fmt.Println("wallpaper switching enabled")
		} else {
			fmt.Println("wallpaper switching disabled")
		}
		return nil
	},
}
