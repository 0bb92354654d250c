// Package palette derives accent-colour palettes from wallpaper sources.
package palette

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/bgtint/internal/colour"
	"github.com/jmylchreest/bgtint/internal/image"
	"github.com/jmylchreest/bgtint/internal/util"
	"github.com/jmylchreest/bgtint/internal/wallpaper"
)

// Tint and shade proportions applied to single-colour sources, ordered
// lightest to darkest.
const (
	lightenStrong = 0.66
	lightenSoft   = 0.33
	darkenSoft    = 0.33
	darkenStrong  = 0.66
)

// Extractor maps wallpaper sources to representative colours. A failing
// source contributes nothing; extraction never fails as a whole.
type Extractor struct {
	loader    image.Loader
	thumbEdge int
	dominant  colour.DominantOptions
	logger    hclog.Logger
}

// NewExtractor creates an Extractor with default thumbnailing and
// dominant-colour parameters. A nil logger disables logging.
func NewExtractor(logger hclog.Logger) *Extractor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Extractor{
		loader:    image.NewFileLoader(),
		thumbEdge: image.DefaultThumbnailEdge,
		dominant:  colour.DefaultDominantOptions(),
		logger:    logger,
	}
}

// WithLoader replaces the image loader. Used by tests.
func (e *Extractor) WithLoader(loader image.Loader) *Extractor {
	e.loader = loader
	return e
}

// Extract maps one wallpaper source to zero or more colours.
//
// Image sources are thumbnailed and clustered for their dominant colours,
// most dominant first. Single-colour sources fan out into four tints and
// shades, lightest to darkest. Gradient sources pass their stops through in
// order and append the left-to-right pairwise blend of all stops.
func (e *Extractor) Extract(src wallpaper.Source) []colour.RGB {
	switch {
	case src.Path != "":
		return e.fromImage(src.Path)
	case src.Colour != nil && src.Colour.Single != nil:
		return Tints(*src.Colour.Single)
	case src.Colour != nil:
		return GradientColours(src.Colour.Gradient)
	}
	return nil
}

// Palette extracts every source in order, concatenates the contributions
// and collapses exact duplicates, keeping first occurrences.
func (e *Extractor) Palette(sources []wallpaper.Source) []colour.RGB {
	var all []colour.RGB
	for _, src := range sources {
		all = append(all, e.Extract(src)...)
	}
	return util.Unique(all)
}

func (e *Extractor) fromImage(path string) []colour.RGB {
	img, err := e.loader.Load(path)
	if err != nil {
		// Missing or undecodable wallpapers simply contribute nothing.
		e.logger.Debug("skipping wallpaper image", "path", path, "error", err)
		return nil
	}
	thumb := image.Thumbnail(img, e.thumbEdge)
	return colour.Dominant(thumb, e.dominant)
}

// Tints derives four colours from a base colour by mixing toward white and
// black at fixed proportions, ordered lightest to darkest.
func Tints(c colour.RGB) []colour.RGB {
	return []colour.RGB{
		colour.Lighten(c, lightenStrong),
		colour.Lighten(c, lightenSoft),
		colour.Darken(c, darkenSoft),
		colour.Darken(c, darkenStrong),
	}
}

// GradientColours passes every stop through in stored order, then appends
// the reduction of all stops by pairwise 50/50 mixing, left to right. The
// reduction is intentionally order-dependent: earlier stops weigh more in
// the final blend, and existing consumers depend on those exact values.
// Returns nil when stops is empty.
func GradientColours(stops []colour.RGB) []colour.RGB {
	if len(stops) == 0 {
		return nil
	}
	out := make([]colour.RGB, 0, len(stops)+1)
	out = append(out, stops...)

	blend := stops[0]
	for _, stop := range stops[1:] {
		blend = colour.Mix(blend, stop, 0.5)
	}
	return append(out, blend)
}
