package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/bgtint/internal/app"
	"github.com/jmylchreest/bgtint/internal/colour"
	"github.com/jmylchreest/bgtint/internal/config"
	"github.com/jmylchreest/bgtint/internal/palette"
	"github.com/jmylchreest/bgtint/internal/theme"
	"github.com/jmylchreest/bgtint/internal/thememode"
)

// accentCmd represents the accent command.
var accentCmd = &cobra.Command{
	Use:   "accent <index|hex>",
	Short: "Set the system accent colour from the current palette",
	Long: `Set the system accent colour.

Pass a palette index to activate one of the swatches derived from the
current wallpaper set, or a hex colour to set the accent directly.

Examples:
  # Promote the second swatch of the current palette
  bgtint accent 1

  # Set the accent directly
  bgtint accent "#aa3355"`,
	Args: cobra.ExactArgs(1),
	RunE: runAccent,
}

// runAccent executes the accent command.
func runAccent(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	accents, err := theme.NewFileSetter()
	if err != nil {
		return fmt.Errorf("failed to set up accent setter: %w", err)
	}

	// A plain integer selects a swatch from the current palette.
	if index, err := strconv.Atoi(args[0]); err == nil {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		mode, err := thememode.Load()
		if err != nil {
			return fmt.Errorf("failed to load theme mode: %w", err)
		}
		model := app.New(cfg, mode, palette.NewExtractor(logger), accents, logger)
		if err := model.Update(app.SwatchActivated{Index: index}); err != nil {
			return err
		}
		fmt.Printf("accent set to %s\n", model.Palette()[index].Hex())
		return nil
	}

	c, err := colour.FromHex(args[0])
	if err != nil {
		return err
	}
	if err := accents.SetAccent(c); err != nil {
		return err
	}
	fmt.Printf("accent set to %s\n", c.Hex())
	return nil
}
