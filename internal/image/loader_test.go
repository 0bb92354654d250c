package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create image file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writePNG(t, 10, 20)

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 20 {
		t.Errorf("Load() bounds = %v, want 10x20", img.Bounds())
	}
}

func TestFileLoaderErrors(t *testing.T) {
	loader := NewFileLoader()

	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: filepath.Join(t.TempDir(), "missing.png")},
		{name: "directory", path: t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loader.Load(tt.path); err == nil {
				t.Errorf("Load(%q) expected error", tt.path)
			}
		})
	}
}

func TestFileLoaderCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := NewFileLoader().Load(path); err == nil {
		t.Error("Load(corrupt) expected error")
	}
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name          string
		w, h, maxEdge int
		wantW, wantH  int
	}{
		{name: "within bounds untouched", w: 100, h: 50, maxEdge: 128, wantW: 100, wantH: 50},
		{name: "landscape downscaled", w: 1920, h: 1080, maxEdge: 128, wantW: 128, wantH: 72},
		{name: "portrait downscaled", w: 1080, h: 1920, maxEdge: 128, wantW: 72, wantH: 128},
		{name: "zero edge uses default", w: 512, h: 512, maxEdge: 0, wantW: 128, wantH: 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := Thumbnail(img, tt.maxEdge)
			if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
				t.Errorf("Thumbnail(%dx%d, %d) = %v, want %dx%d",
					tt.w, tt.h, tt.maxEdge, got.Bounds(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestThumbnailNil(t *testing.T) {
	if got := Thumbnail(nil, 128); got != nil {
		t.Errorf("Thumbnail(nil) = %v, want nil", got)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "wall.jpg", want: true},
		{path: "wall.JPEG", want: true},
		{path: "wall.png", want: true},
		{path: "wall.webp", want: true},
		{path: "wall.gif", want: true},
		{path: "wall.txt", want: false},
		{path: "wall", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsImageFile(tt.path); got != tt.want {
				t.Errorf("IsImageFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestValidateImagePath(t *testing.T) {
	good := writePNG(t, 4, 4)
	if err := ValidateImagePath(good); err != nil {
		t.Errorf("ValidateImagePath(%q) unexpected error: %v", good, err)
	}

	if err := ValidateImagePath(""); err == nil {
		t.Error("ValidateImagePath(\"\") expected error")
	}
	if err := ValidateImagePath(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("ValidateImagePath(missing) expected error")
	}
}
