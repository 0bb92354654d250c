package colour

import "github.com/lucasb-eyer/go-colorful"

// Lighten mixes the colour toward white by moving its HSL lightness a
// proportional amount toward 1.0. amount is clamped to [0, 1].
func Lighten(c RGB, amount float64) RGB {
	h, s, l := c.colorful().Hsl()
	l += (1.0 - l) * clamp01(amount)
	return fromColorful(colorful.Hsl(h, s, l))
}

// Darken mixes the colour toward black by scaling its HSL lightness down.
// amount is clamped to [0, 1].
func Darken(c RGB, amount float64) RGB {
	h, s, l := c.colorful().Hsl()
	l *= 1.0 - clamp01(amount)
	return fromColorful(colorful.Hsl(h, s, l))
}

// Mix linearly interpolates between a and b in RGB space. t=0 returns a,
// t=1 returns b, t=0.5 the midpoint.
func Mix(a, b RGB, t float64) RGB {
	return fromColorful(a.colorful().BlendRgb(b.colorful(), clamp01(t)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
