package palette

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jmylchreest/bgtint/internal/colour"
	"github.com/jmylchreest/bgtint/internal/wallpaper"
)

var (
	red  = colour.RGB{R: 170, G: 0, B: 0}
	blue = colour.RGB{R: 0, G: 0, B: 170}
)

// writeTestImage writes a uniformly filled PNG and returns its path.
func writeTestImage(t *testing.T, c color.RGBA) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "wallpaper.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestTintsFanOut(t *testing.T) {
	bases := []colour.RGB{
		red,
		blue,
		{R: 0, G: 128, B: 0},
		{R: 200, G: 180, B: 20},
	}

	for _, base := range bases {
		t.Run(base.Hex(), func(t *testing.T) {
			got := Tints(base)

			if len(got) != 4 {
				t.Fatalf("Tints(%v) returned %d colours, want 4", base, len(got))
			}
			for i := 1; i < len(got); i++ {
				if colour.Luminance(got[i]) >= colour.Luminance(got[i-1]) {
					t.Errorf("Tints(%v) not ordered light to dark at %d: %v", base, i, got)
				}
			}

			want := []colour.RGB{
				colour.Lighten(base, 0.66),
				colour.Lighten(base, 0.33),
				colour.Darken(base, 0.33),
				colour.Darken(base, 0.66),
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Tints(%v) = %v, want %v", base, got, want)
			}
		})
	}
}

func TestGradientColours(t *testing.T) {
	tests := []struct {
		name  string
		stops []colour.RGB
		want  []colour.RGB
	}{
		{
			name:  "empty",
			stops: nil,
			want:  nil,
		},
		{
			name:  "single stop duplicates itself",
			stops: []colour.RGB{red},
			want:  []colour.RGB{red, red},
		},
		{
			name:  "two stops append midpoint",
			stops: []colour.RGB{red, blue},
			want:  []colour.RGB{red, blue, colour.Mix(red, blue, 0.5)},
		},
		{
			name:  "three stops reduce left to right",
			stops: []colour.RGB{red, blue, {R: 0, G: 170, B: 0}},
			want: []colour.RGB{
				red, blue, {R: 0, G: 170, B: 0},
				colour.Mix(colour.Mix(red, blue, 0.5), colour.RGB{R: 0, G: 170, B: 0}, 0.5),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GradientColours(tt.stops)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GradientColours(%v) = %v, want %v", tt.stops, got, tt.want)
			}
		})
	}
}

func TestExtractImageSource(t *testing.T) {
	path := writeTestImage(t, color.RGBA{R: 170, G: 0, B: 0, A: 255})

	e := NewExtractor(nil)
	got := e.Extract(wallpaper.ImagePath(path))

	want := []colour.RGB{red}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract(image) = %v, want %v", got, want)
	}
}

func TestExtractMissingImageYieldsNothing(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract(wallpaper.ImagePath(filepath.Join(t.TempDir(), "missing.png")))
	if len(got) != 0 {
		t.Errorf("Extract(missing image) = %v, want empty", got)
	}
}

func TestExtractCorruptImageYieldsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	e := NewExtractor(nil)
	if got := e.Extract(wallpaper.ImagePath(path)); len(got) != 0 {
		t.Errorf("Extract(corrupt image) = %v, want empty", got)
	}
}

// failingLoader always errors, standing in for any decode failure.
type failingLoader struct{}

func (failingLoader) Load(path string) (image.Image, error) {
	return nil, os.ErrPermission
}

func TestExtractLoaderFailureYieldsNothing(t *testing.T) {
	e := NewExtractor(nil).WithLoader(failingLoader{})

	got := e.Palette([]wallpaper.Source{
		wallpaper.ImagePath("/bg/unreadable.png"),
		wallpaper.SingleColour(red),
	})

	// The failing image contributes nothing; the solid still fans out.
	if !reflect.DeepEqual(got, Tints(red)) {
		t.Errorf("Palette(unreadable, red) = %v, want %v", got, Tints(red))
	}
}

func TestExtractZeroSource(t *testing.T) {
	e := NewExtractor(nil)
	if got := e.Extract(wallpaper.Source{}); got != nil {
		t.Errorf("Extract(zero source) = %v, want nil", got)
	}
}

func TestExtractDeterminism(t *testing.T) {
	e := NewExtractor(nil)
	srcs := []wallpaper.Source{
		wallpaper.SingleColour(red),
		wallpaper.GradientColour(red, blue),
	}

	first := e.Palette(srcs)
	for i := 0; i < 5; i++ {
		if got := e.Palette(srcs); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestPaletteSingleColourWallpaper(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Palette([]wallpaper.Source{wallpaper.SingleColour(red)})

	want := []colour.RGB{
		colour.Lighten(red, 0.66),
		colour.Lighten(red, 0.33),
		colour.Darken(red, 0.33),
		colour.Darken(red, 0.66),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Palette(single red) = %v, want %v", got, want)
	}
}

func TestPaletteDeduplicatesAcrossWallpapers(t *testing.T) {
	e := NewExtractor(nil)

	// Two identical wallpapers contribute identical tints; the palette
	// keeps each colour once.
	got := e.Palette([]wallpaper.Source{
		wallpaper.SingleColour(red),
		wallpaper.SingleColour(red),
	})

	if len(got) != 4 {
		t.Fatalf("Palette(red, red) has %d colours, want 4: %v", len(got), got)
	}
	if !reflect.DeepEqual(got, Tints(red)) {
		t.Errorf("Palette(red, red) = %v, want %v", got, Tints(red))
	}
}

func TestPaletteCollapsesDegenerateGradient(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Palette([]wallpaper.Source{wallpaper.GradientColour(blue, blue)})

	want := []colour.RGB{blue}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Palette(gradient blue,blue) = %v, want %v", got, want)
	}
}

func TestPaletteMixedSources(t *testing.T) {
	path := writeTestImage(t, color.RGBA{R: 0, G: 0, B: 170, A: 255})

	e := NewExtractor(nil)
	got := e.Palette([]wallpaper.Source{
		wallpaper.ImagePath(path),
		wallpaper.SingleColour(red),
		wallpaper.ImagePath("/does/not/exist.png"),
	})

	// Image contributes blue, the missing one nothing, the solid its four
	// tints.
	want := append([]colour.RGB{blue}, Tints(red)...)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Palette(mixed) = %v, want %v", got, want)
	}
}
