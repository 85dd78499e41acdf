package tile

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidBBox = errors.New("slippymap: invalid bounding box")

// BBox is a geographic rectangle in TLBR corner order: TopLeft is the
// north-west corner (larger latitude, smaller longitude) and BottomRight
// the south-east corner.
type BBox struct {
	TopLeft     LatLon
	BottomRight LatLon
}

// NewBBox builds the box spanned by two corner points, normalizing them
// into TLBR order; passing the south-east and north-west corners yields
// the same box as the reverse. Corners with out-of-range coordinates are
// rejected. Coincident corners produce a degenerate zero-area box.
func NewBBox(a, b LatLon) (BBox, error) {
	if !a.Valid() || !b.Valid() {
		return BBox{}, fmt.Errorf("%w: corner out of range", ErrInvalidBBox)
	}
	return BBox{
		TopLeft:     LatLon{Lat: math.Max(a.Lat, b.Lat), Lon: math.Min(a.Lon, b.Lon)},
		BottomRight: LatLon{Lat: math.Min(a.Lat, b.Lat), Lon: math.Max(a.Lon, b.Lon)},
	}, nil
}

// ParseBBox reads the "top_lat,left_lon,bottom_lat,right_lon" form
// produced by BBox.String. The corner order is strict TLBR: an input
// listing the bottom-right corner first is rejected with ErrInvalidBBox
// rather than reinterpreted.
func ParseBBox(s string) (BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, fmt.Errorf("%w: %q: want 4 comma-separated values", ErrParse, s)
	}
	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BBox{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
		}
		vals[i] = v
	}
	top, left, bottom, right := vals[0], vals[1], vals[2], vals[3]
	tl, err := NewLatLon(top, left)
	if err != nil {
		return BBox{}, fmt.Errorf("%w: %q", ErrInvalidBBox, s)
	}
	br, err := NewLatLon(bottom, right)
	if err != nil {
		return BBox{}, fmt.Errorf("%w: %q", ErrInvalidBBox, s)
	}
	if top < bottom || right < left {
		return BBox{}, fmt.Errorf("%w: %q: corners not in TLBR order", ErrInvalidBBox, s)
	}
	return BBox{TopLeft: tl, BottomRight: br}, nil
}

// String formats b in the TLBR form accepted by ParseBBox.
func (b BBox) String() string {
	return fmt.Sprintf("%v,%v,%v,%v",
		b.TopLeft.Lat, b.TopLeft.Lon, b.BottomRight.Lat, b.BottomRight.Lon)
}

func (b BBox) Valid() bool {
	return b.TopLeft.Valid() && b.BottomRight.Valid() &&
		b.TopLeft.Lat >= b.BottomRight.Lat && b.TopLeft.Lon <= b.BottomRight.Lon
}

// Degenerate reports whether b has zero area.
func (b BBox) Degenerate() bool {
	return b.TopLeft.Lat == b.BottomRight.Lat || b.TopLeft.Lon == b.BottomRight.Lon
}

// Width returns the longitude span of b in degrees.
func (b BBox) Width() float64 {
	return b.BottomRight.Lon - b.TopLeft.Lon
}

// Height returns the latitude span of b in degrees.
func (b BBox) Height() float64 {
	return b.TopLeft.Lat - b.BottomRight.Lat
}

// Center returns the center point of b.
func (b BBox) Center() LatLon {
	return LatLon{
		Lat: (b.TopLeft.Lat + b.BottomRight.Lat) / 2,
		Lon: (b.TopLeft.Lon + b.BottomRight.Lon) / 2,
	}
}

// Contains reports whether p lies within b, edges inclusive.
func (b BBox) Contains(p LatLon) bool {
	return p.Lat <= b.TopLeft.Lat && p.Lat >= b.BottomRight.Lat &&
		p.Lon >= b.TopLeft.Lon && p.Lon <= b.BottomRight.Lon
}

// Intersects reports whether b and o share any area or edge.
func (b BBox) Intersects(o BBox) bool {
	return b.TopLeft.Lon <= o.BottomRight.Lon && o.TopLeft.Lon <= b.BottomRight.Lon &&
		b.BottomRight.Lat <= o.TopLeft.Lat && o.BottomRight.Lat <= b.TopLeft.Lat
}

// Covers reports whether t is among the tiles b covers at t's zoom, i.e.
// whether Cover(b, t.Z) would yield it.
func (b BBox) Covers(t ID) bool {
	x0, y0, x1, y1, ok := b.tileRange(t.Z)
	return ok && t.X >= x0 && t.X < x1 && t.Y >= y0 && t.Y < y1
}

// NumTilesAtZoom returns the number of tiles b covers at the given zoom.
// The second return is false, and the count absent, for a degenerate box
// or an out-of-range zoom.
func (b BBox) NumTilesAtZoom(zoom uint32) (uint64, bool) {
	x0, y0, x1, y1, ok := b.tileRange(zoom)
	if !ok {
		return 0, false
	}
	return uint64(x1-x0) * uint64(y1-y0), true
}

// tileRange projects b onto the tile grid of the given zoom and returns
// the half-open index interval [x0,x1)×[y0,y1) of covered tiles. Tiles
// touching the box only along an edge count as covered. ok is false for a
// degenerate box or an out-of-range zoom; an ok range is never empty.
func (b BBox) tileRange(zoom uint32) (x0, y0, x1, y1 uint32, ok bool) {
	if zoom >= MaxZoom || !b.Valid() || b.Degenerate() {
		return 0, 0, 0, 0, false
	}
	n := uint64(1) << zoom
	fx0, fy0 := b.TopLeft.GridXY(zoom)
	fx1, fy1 := b.BottomRight.GridXY(zoom)
	return gridIndex(fx0, n), gridIndex(fy0, n), gridIndex(fx1, n) + 1, gridIndex(fy1, n) + 1, true
}
