// Package tile implements coordinate algebra for slippy-map tiles:
// XYZ tile addressing, conversion to and from geographic coordinates via
// the spherical Web-Mercator projection, metatile grouping, and lazy
// coverage iterators over bounding boxes and zoom ranges.
package tile

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// MaxZoom bounds the supported zoom levels: a tile's Z is always below it.
const MaxZoom = 32

var (
	ErrInvalidCoordinate = errors.New("slippymap: invalid tile coordinate")
	ErrParse             = errors.New("slippymap: malformed tile path")
)

// ID represents tile coordinates in the XYZ scheme (Tiled web map).
// The zero value is the single zoom-0 tile. IDs are comparable and can be
// used directly as map keys or set members.
type ID struct {
	X uint32
	Y uint32
	Z uint32
}

func (t ID) Valid() bool {
	return t.Z < MaxZoom && t.X < (1<<t.Z) && t.Y < (1<<t.Z)
}

// New returns the tile at (zoom, x, y), or ErrInvalidCoordinate when x or
// y falls outside the 2^zoom grid or zoom is not below MaxZoom.
func New(zoom, x, y uint32) (ID, error) {
	t := ID{X: x, Y: y, Z: zoom}
	if !t.Valid() {
		return ID{}, fmt.Errorf("%w: %d/%d/%d", ErrInvalidCoordinate, zoom, x, y)
	}
	return t, nil
}

// FromLatLon returns the tile containing p at the given zoom. Points on
// the eastern or southern edge of the grid land in the last tile.
func FromLatLon(p LatLon, zoom uint32) (ID, error) {
	if zoom >= MaxZoom {
		return ID{}, fmt.Errorf("%w: zoom %d", ErrInvalidCoordinate, zoom)
	}
	if !p.Valid() {
		return ID{}, fmt.Errorf("%w: (%v, %v)", ErrInvalidLatLon, p.Lat, p.Lon)
	}
	fx, fy := p.GridXY(zoom)
	n := uint64(1) << zoom
	return ID{X: gridIndex(fx, n), Y: gridIndex(fy, n), Z: zoom}, nil
}

// gridIndex floors a fractional grid coordinate to a tile index, clamped
// to the n-wide grid.
func gridIndex(f float64, n uint64) uint32 {
	if f <= 0 {
		return 0
	}
	i := uint64(f)
	if i >= n {
		i = n - 1
	}
	return uint32(i)
}

// Parent returns the tile one zoom level up that contains t.
// The second return is false at zoom 0.
func (t ID) Parent() (ID, bool) {
	if t.Z == 0 {
		return ID{}, false
	}
	return ID{X: t.X / 2, Y: t.Y / 2, Z: t.Z - 1}, true
}

// Children returns the four tiles one zoom level down, ordered NW, NE,
// SW, SE. The second return is false when the child zoom would reach
// MaxZoom.
func (t ID) Children() ([4]ID, bool) {
	if t.Z+1 >= MaxZoom {
		return [4]ID{}, false
	}
	x, y, z := 2*t.X, 2*t.Y, t.Z+1
	return [4]ID{
		{X: x, Y: y, Z: z},
		{X: x + 1, Y: y, Z: z},
		{X: x, Y: y + 1, Z: z},
		{X: x + 1, Y: y + 1, Z: z},
	}, true
}

// Bounds returns the geographic box spanned by t, its north-west corner
// as TopLeft.
func (t ID) Bounds() BBox {
	return BBox{
		TopLeft:     gridLatLon(t.Z, float64(t.X), float64(t.Y)),
		BottomRight: gridLatLon(t.Z, float64(t.X)+1, float64(t.Y)+1),
	}
}

// Center returns the geographic center point of t.
func (t ID) Center() LatLon {
	return gridLatLon(t.Z, float64(t.X)+0.5, float64(t.Y)+0.5)
}

// String formats t as the canonical "z/x/y" path.
func (t ID) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y)
}

// The trailing "z/x/y" triple of a path or URL, with an optional file
// extension.
var pathRegexp = regexp.MustCompile(`(\d+)/(\d+)/(\d+)(?:\.[A-Za-z0-9]+)?$`)

// Parse reads a "z/x/y" tile path. The triple may trail a longer file
// path or URL and may carry an extension, so "3/2/5",
// "https://host/tiles/3/2/5.png" and "cache/3/2/5" all name the same
// tile. Malformed input fails with ErrParse, an out-of-range triple with
// ErrInvalidCoordinate.
func Parse(s string) (ID, error) {
	m := pathRegexp.FindStringSubmatch(s)
	if m == nil {
		return ID{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	z, err := parseUint32(m[1])
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	x, err := parseUint32(m[2])
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	y, err := parseUint32(m[3])
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	return New(z, x, y)
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}
