// Package worldfile generates world files: the six-line sidecar text
// that georeferences a rendered raster by an affine transform from pixel
// coordinates to geographic degrees.
package worldfile

import (
	"fmt"

	"github.com/eak1mov/go-slippymap/tile"
)

// DefaultTileSize is the standard web-map tile dimension in pixels.
const DefaultTileSize = 256

// For returns the world file for t rendered at pixels×pixels. The lines
// are, in order: x pixel width, the two rotation terms (both zero), the
// y pixel height (negative, north-up), then the longitude and latitude
// of the center of the top-left pixel.
func For(t tile.ID, pixels uint32) string {
	return FromBounds(t.Bounds(), pixels, pixels)
}

// ForMetatile returns the world file for a metatile rendered at
// pixels×pixels per contained tile.
func ForMetatile(m tile.Metatile, pixels uint32) string {
	s := m.Size()
	return FromBounds(m.Bounds(), s*pixels, s*pixels)
}

// FromBounds returns the world file for any geographic box rendered onto
// a width×height pixel raster.
func FromBounds(b tile.BBox, width, height uint32) string {
	px := b.Width() / float64(width)
	py := b.Height() / float64(height)
	return fmt.Sprintf("%.12f\n%.12f\n%.12f\n%.12f\n%.12f\n%.12f\n",
		px, 0.0, 0.0, -py,
		b.TopLeft.Lon+px/2, b.TopLeft.Lat-py/2)
}
