package tile

import (
	"iter"
	"math"
)

// Cover iterates the tiles at the given zoom whose grid cells the box
// covers, row by row from the north-west corner. The traversal is bounded
// by the box's projected tile-index range, never the whole grid. An
// out-of-range zoom or a degenerate box yields an empty sequence.
func Cover(box BBox, zoom uint32) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		x0, y0, x1, y1, ok := box.tileRange(zoom)
		if !ok {
			return
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if !yield(ID{X: x, Y: y, Z: zoom}) {
					return
				}
			}
		}
	}
}

// CoverZooms iterates Cover(box, z) for every zoom in [minZoom, maxZoom]
// in ascending zoom order. An empty or unreachable zoom range yields an
// empty sequence.
func CoverZooms(box BBox, minZoom, maxZoom uint32) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for z := minZoom; z <= maxZoom && z < MaxZoom; z++ {
			for t := range Cover(box, z) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// CoverMetatiles iterates the metatiles of the given scale covering box
// at the given zoom, row by row. The box's half-open tile-index range is
// snapped outward to scale-aligned origins, so every yielded metatile
// contains at least one covered base tile and every covered base tile
// belongs to exactly one yielded metatile. An invalid scale, an
// out-of-range zoom or a degenerate box yields an empty sequence.
func CoverMetatiles(box BBox, zoom, scale uint32) iter.Seq[Metatile] {
	return func(yield func(Metatile) bool) {
		if !validScale(scale) {
			return
		}
		x0, y0, x1, y1, ok := box.tileRange(zoom)
		if !ok {
			return
		}
		x0 -= x0 % scale
		y0 -= y0 % scale
		for y := y0; y < y1; y += scale {
			for x := x0; x < x1; x += scale {
				if !yield(Metatile{Scale: scale, X: x, Y: y, Z: zoom}) {
					return
				}
			}
		}
	}
}

// Descendants iterates t and every tile beneath it down to maxZoom in
// breadth-first Z-order: all tiles of a zoom level appear before any of
// the next, each group of four siblings is contiguous in NW, NE, SW, SE
// order, and sibling groups follow the order of their parents. Every
// ancestor of a yielded tile is yielded before it. An invalid t or
// maxZoom below t.Z yields an empty sequence.
func Descendants(t ID, maxZoom uint32) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		if !t.Valid() || maxZoom < t.Z || maxZoom >= MaxZoom {
			return
		}
		for z := t.Z; z <= maxZoom; z++ {
			d := z - t.Z
			for i := uint64(0); i < 1<<(2*d); i++ {
				dx, dy := mortonXY(i)
				if !yield(ID{X: t.X<<d + dx, Y: t.Y<<d + dy, Z: z}) {
					return
				}
			}
		}
	}
}

// DescendantCount returns the number of tiles Descendants(t, maxZoom)
// yields, in closed form: a full quadtree pyramid of maxZoom-t.Z+1
// levels. It saturates at math.MaxUint64 instead of wrapping, and returns
// 0 whenever Descendants would be empty.
func DescendantCount(t ID, maxZoom uint32) uint64 {
	if !t.Valid() || maxZoom < t.Z || maxZoom >= MaxZoom {
		return 0
	}
	levels := uint64(maxZoom-t.Z) + 1
	if levels >= 32 {
		// sum of 4^d for d < 32 is (2^64-1)/3; anything deeper saturates.
		return math.MaxUint64 / 3
	}
	return (1<<(2*levels) - 1) / 3
}

// mortonXY decodes the i-th position of the Z-order curve into grid
// offsets: x takes the even bits of i, y the odd bits.
func mortonXY(i uint64) (x, y uint32) {
	for b := uint32(0); b < 32; b++ {
		x |= uint32(i>>(2*b)&1) << b
		y |= uint32(i>>(2*b+1)&1) << b
	}
	return x, y
}
