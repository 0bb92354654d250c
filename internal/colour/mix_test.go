package colour

import (
	"testing"
)

func TestLightenDarkenOrdering(t *testing.T) {
	tests := []struct {
		name string
		base RGB
	}{
		{name: "red", base: RGB{R: 170, G: 0, B: 0}},
		{name: "blue", base: RGB{R: 0, G: 0, B: 170}},
		{name: "green", base: RGB{R: 0, G: 128, B: 0}},
		{name: "grey", base: RGB{R: 100, G: 100, B: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ladder := []RGB{
				Lighten(tt.base, 0.66),
				Lighten(tt.base, 0.33),
				tt.base,
				Darken(tt.base, 0.33),
				Darken(tt.base, 0.66),
			}
			for i := 1; i < len(ladder); i++ {
				if Luminance(ladder[i]) >= Luminance(ladder[i-1]) {
					t.Errorf("step %d: %v (lum %f) not darker than %v (lum %f)",
						i, ladder[i], Luminance(ladder[i]), ladder[i-1], Luminance(ladder[i-1]))
				}
			}
		})
	}
}

func TestLightenDarkenBounds(t *testing.T) {
	c := RGB{R: 170, G: 51, B: 85}

	if got := Lighten(c, 1.0); got != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("Lighten(c, 1.0) = %v, want white", got)
	}
	if got := Darken(c, 1.0); got != (RGB{}) {
		t.Errorf("Darken(c, 1.0) = %v, want black", got)
	}
	if got := Lighten(c, 0); got != c {
		t.Errorf("Lighten(c, 0) = %v, want %v", got, c)
	}
	if got := Darken(c, 0); got != c {
		t.Errorf("Darken(c, 0) = %v, want %v", got, c)
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		name string
		a, b RGB
		t    float64
		want RGB
	}{
		{
			name: "midpoint of black and white",
			a:    RGB{},
			b:    RGB{R: 255, G: 255, B: 255},
			t:    0.5,
			want: RGB{R: 128, G: 128, B: 128},
		},
		{
			name: "t=0 returns first",
			a:    RGB{R: 170, G: 51, B: 85},
			b:    RGB{R: 0, G: 255, B: 0},
			t:    0,
			want: RGB{R: 170, G: 51, B: 85},
		},
		{
			name: "t=1 returns second",
			a:    RGB{R: 170, G: 51, B: 85},
			b:    RGB{R: 0, G: 255, B: 0},
			t:    1,
			want: RGB{R: 0, G: 255, B: 0},
		},
		{
			name: "identical colours",
			a:    RGB{R: 12, G: 34, B: 56},
			b:    RGB{R: 12, G: 34, B: 56},
			t:    0.5,
			want: RGB{R: 12, G: 34, B: 56},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mix(tt.a, tt.b, tt.t); got != tt.want {
				t.Errorf("Mix(%v, %v, %f) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestMixDeterminism(t *testing.T) {
	a := RGB{R: 170, G: 51, B: 85}
	b := RGB{R: 3, G: 200, B: 99}
	first := Mix(a, b, 0.5)
	for i := 0; i < 10; i++ {
		if got := Mix(a, b, 0.5); got != first {
			t.Fatalf("Mix not deterministic: %v vs %v", got, first)
		}
	}
}
