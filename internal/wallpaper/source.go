// Package wallpaper defines the configuration values describing how a
// desktop background is rendered.
package wallpaper

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/bgtint/internal/colour"
)

// Source describes how a background is rendered: an image file on disk or
// a procedural colour. Exactly one of Path or Colour is set; the zero value
// renders nothing.
type Source struct {
	Path   string  `toml:"path,omitempty" json:"path,omitempty"`
	Colour *Colour `toml:"colour,omitempty" json:"colour,omitempty"`
}

// Colour is a procedural background: a single flat colour or a gradient
// with one or more stops.
type Colour struct {
	Single   *colour.RGB  `toml:"single,omitempty" json:"single,omitempty"`
	Gradient []colour.RGB `toml:"gradient,omitempty" json:"gradient,omitempty"`
}

// ImagePath returns a Source rendering the image at path.
func ImagePath(path string) Source {
	return Source{Path: path}
}

// SingleColour returns a Source rendering one flat colour.
func SingleColour(c colour.RGB) Source {
	return Source{Colour: &Colour{Single: &c}}
}

// GradientColour returns a Source rendering a gradient through the given
// stops.
func GradientColour(stops ...colour.RGB) Source {
	return Source{Colour: &Colour{Gradient: stops}}
}

// IsZero reports whether the source renders nothing.
func (s Source) IsZero() bool {
	return s.Path == "" && s.Colour == nil
}

// String describes the source for logging.
func (s Source) String() string {
	switch {
	case s.Path != "":
		return "image:" + s.Path
	case s.Colour != nil && s.Colour.Single != nil:
		return "colour:" + s.Colour.Single.Hex()
	case s.Colour != nil && len(s.Colour.Gradient) > 0:
		stops := make([]string, len(s.Colour.Gradient))
		for i, stop := range s.Colour.Gradient {
			stops[i] = stop.Hex()
		}
		return "gradient:" + strings.Join(stops, ",")
	}
	return "none"
}

// Validate checks that the source is well-formed: at most one variant set,
// and colour sources carry at least one colour.
func (s Source) Validate() error {
	if s.Path != "" && s.Colour != nil {
		return fmt.Errorf("source cannot be both an image path and a colour")
	}
	if s.Colour != nil {
		if s.Colour.Single != nil && len(s.Colour.Gradient) > 0 {
			return fmt.Errorf("colour source cannot be both single and gradient")
		}
		if s.Colour.Single == nil && len(s.Colour.Gradient) == 0 {
			return fmt.Errorf("colour source must carry a single colour or gradient stops")
		}
	}
	return nil
}
