package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/bgtint/internal/colour"
	"github.com/jmylchreest/bgtint/internal/image"
	"github.com/jmylchreest/bgtint/internal/palette"
	"github.com/jmylchreest/bgtint/internal/wallpaper"
)

var (
	// Extract command flags
	extractColour   string
	extractGradient string
	extractFormat   string
	extractPreview  bool
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract [image]",
	Short: "Extract a swatch palette from a wallpaper source",
	Long: `Extract a swatch palette from a wallpaper source.

The source is an image file, a single colour, or a gradient. Images are
thumbnailed and clustered for their dominant colours. A single colour fans
out into four tints and shades. A gradient passes its stops through and
appends their blended average.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract dominant colours from a wallpaper
  bgtint extract wallpaper.jpg

  # Tints and shades of a flat colour
  bgtint extract --colour "#aa0000"

  # Gradient stops plus their blend
  bgtint extract --gradient "#aa0000,#0000aa"

  # JSON output
  bgtint extract --format json wallpaper.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractColour, "colour", "", "extract from a single hex colour instead of an image")
	extractCmd.Flags().StringVar(&extractGradient, "gradient", "", "extract from comma-separated gradient stops instead of an image")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "show colour previews (default: when stdout is a terminal)")

	// Accept the US spelling too.
	extractCmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "color" {
			name = "colour"
		}
		return pflag.NormalizedName(name)
	})
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	src, err := sourceFromArgs(cmd, args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	extractor := palette.NewExtractor(logger)
	swatches := extractor.Palette([]wallpaper.Source{src})

	return printSwatches(cmd, swatches)
}

// sourceFromArgs builds the wallpaper source from the positional argument
// and the --colour/--gradient flags.
func sourceFromArgs(cmd *cobra.Command, args []string) (wallpaper.Source, error) {
	set := 0
	if len(args) > 0 {
		set++
	}
	if extractColour != "" {
		set++
	}
	if extractGradient != "" {
		set++
	}
	if set == 0 {
		return wallpaper.Source{}, fmt.Errorf("no source given: pass an image path, --colour or --gradient")
	}
	if set > 1 {
		return wallpaper.Source{}, fmt.Errorf("pass exactly one of an image path, --colour or --gradient")
	}

	switch {
	case extractColour != "":
		c, err := colour.FromHex(extractColour)
		if err != nil {
			return wallpaper.Source{}, err
		}
		return wallpaper.SingleColour(c), nil
	case extractGradient != "":
		parts := strings.Split(extractGradient, ",")
		stops := make([]colour.RGB, 0, len(parts))
		for _, part := range parts {
			c, err := colour.FromHex(strings.TrimSpace(part))
			if err != nil {
				return wallpaper.Source{}, err
			}
			stops = append(stops, c)
		}
		return wallpaper.GradientColour(stops...), nil
	default:
		if err := image.ValidateImagePath(args[0]); err != nil {
			return wallpaper.Source{}, fmt.Errorf("invalid image path: %w", err)
		}
		return wallpaper.ImagePath(args[0]), nil
	}
}

// printSwatches renders the palette in the requested format.
func printSwatches(cmd *cobra.Command, swatches []colour.RGB) error {
	preview := extractPreview
	if !cmd.Flags().Changed("preview") {
		preview = term.IsTerminal(int(os.Stdout.Fd()))
	}

	switch extractFormat {
	case "hex":
		for _, c := range swatches {
			if preview {
				fmt.Printf("%s %s\n", colour.Preview(c, 8), c.Hex())
			} else {
				fmt.Println(c.Hex())
			}
		}
	case "rgb":
		for _, c := range swatches {
			if preview {
				fmt.Printf("%s %s\n", colour.Preview(c, 8), c.String())
			} else {
				fmt.Println(c.String())
			}
		}
	case "json":
		type swatchJSON struct {
			Hex string     `json:"hex"`
			RGB colour.RGB `json:"rgb"`
		}
		out := struct {
			Count   int          `json:"count"`
			Colours []swatchJSON `json:"colours"`
		}{Count: len(swatches), Colours: make([]swatchJSON, len(swatches))}
		for i, c := range swatches {
			out.Colours[i] = swatchJSON{Hex: c.Hex(), RGB: c}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("invalid format: %s (valid: hex, rgb, json)", extractFormat)
	}
	return nil
}
