package tilekey

import (
	"math/bits"

	"github.com/eak1mov/go-slippymap/tile"
	"github.com/google/hilbert"
)

// Hilbert returns t's position in the Hilbert-curve tile ordering used
// by PMTiles-style archives: all tiles of shallower zooms come first,
// tiles within a zoom follow the curve.
func Hilbert(t tile.ID) uint64 {
	h, _ := hilbert.NewHilbert(1 << t.Z)
	tileCode, _ := h.MapInverse(int(t.X), int(t.Y))
	return uint64(tileCode) + pyramidSize(t.Z)
}

// FromHilbert decodes a Hilbert tile code back into tile coordinates.
func FromHilbert(code uint64) tile.ID {
	z := uint32(bits.Len64(3*code+1)-1) / 2
	h, _ := hilbert.NewHilbert(1 << z)
	x, y, _ := h.Map(int(code - pyramidSize(z)))
	return tile.ID{X: uint32(x), Y: uint32(y), Z: z}
}

// pyramidSize is the tile count of a full quadtree pyramid above zoom z,
// i.e. the code of the first zoom-z tile.
func pyramidSize(z uint32) uint64 {
	return (1<<(2*z) - 1) / 3
}
