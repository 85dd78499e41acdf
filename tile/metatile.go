package tile

import (
	"fmt"
	"iter"
	"strings"
)

// Metatile is an aligned Scale×Scale block of tiles at a single zoom
// level. Scale is a positive power of two and (X, Y) is the block's
// north-west tile, a multiple of Scale on each axis, so every tile of a
// zoom level belongs to exactly one metatile of a given scale.
type Metatile struct {
	Scale uint32
	X     uint32
	Y     uint32
	Z     uint32
}

func (m Metatile) Valid() bool {
	return m.Origin().Valid() && validScale(m.Scale) &&
		m.X%m.Scale == 0 && m.Y%m.Scale == 0
}

func validScale(scale uint32) bool {
	return scale > 0 && scale&(scale-1) == 0
}

// NewMetatile returns the metatile at (zoom, x, y) with the given scale.
// It fails with ErrInvalidCoordinate when scale is not a positive power
// of two, (x, y) is not aligned to it, or the origin is off the grid.
func NewMetatile(scale, zoom, x, y uint32) (Metatile, error) {
	m := Metatile{Scale: scale, X: x, Y: y, Z: zoom}
	if !m.Valid() {
		return Metatile{}, fmt.Errorf("%w: metatile %d %d/%d/%d", ErrInvalidCoordinate, scale, zoom, x, y)
	}
	return m, nil
}

// MetatileAt returns the metatile of the given scale containing t,
// snapping t's coordinates down to the block origin.
func MetatileAt(t ID, scale uint32) (Metatile, error) {
	if !t.Valid() || !validScale(scale) {
		return Metatile{}, fmt.Errorf("%w: metatile %d for %v", ErrInvalidCoordinate, scale, t)
	}
	return Metatile{Scale: scale, X: t.X - t.X%scale, Y: t.Y - t.Y%scale, Z: t.Z}, nil
}

// Origin returns the base tile at the metatile's north-west corner.
func (m Metatile) Origin() ID {
	return ID{X: m.X, Y: m.Y, Z: m.Z}
}

// Size returns the number of tiles the metatile spans per axis: Scale,
// capped by the grid width at low zooms (a scale-8 metatile at zoom 1
// spans only the 2×2 grid).
func (m Metatile) Size() uint32 {
	if n := uint64(1) << m.Z; uint64(m.Scale) > n {
		return uint32(n)
	}
	return m.Scale
}

// Tiles iterates the base tiles of m, row by row from the origin.
func (m Metatile) Tiles() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		if !m.Valid() {
			return
		}
		s := m.Size()
		for y := m.Y; y < m.Y+s; y++ {
			for x := m.X; x < m.X+s; x++ {
				if !yield(ID{X: x, Y: y, Z: m.Z}) {
					return
				}
			}
		}
	}
}

// Bounds returns the geographic box spanned by m's tiles.
func (m Metatile) Bounds() BBox {
	s := float64(m.Size())
	return BBox{
		TopLeft:     gridLatLon(m.Z, float64(m.X), float64(m.Y)),
		BottomRight: gridLatLon(m.Z, float64(m.X)+s, float64(m.Y)+s),
	}
}

// String formats m as "scale z/x/y".
func (m Metatile) String() string {
	return fmt.Sprintf("%d %d/%d/%d", m.Scale, m.Z, m.X, m.Y)
}

// ParseMetatile reads the "scale z/x/y" form produced by Metatile.String.
// The triple may name any tile inside the block: misaligned coordinates
// snap down to the block origin, so String canonicalizes and parse of a
// canonical form round-trips. A missing scale or malformed path fails
// with ErrParse, an off-grid triple or invalid scale with
// ErrInvalidCoordinate.
func ParseMetatile(s string) (Metatile, error) {
	scalePart, path, found := strings.Cut(s, " ")
	if !found {
		return Metatile{}, fmt.Errorf("%w: %q: missing scale", ErrParse, s)
	}
	scale, err := parseUint32(scalePart)
	if err != nil {
		return Metatile{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	t, err := Parse(path)
	if err != nil {
		return Metatile{}, err
	}
	return MetatileAt(t, scale)
}
