// Package tilekey provides compact uint64 encodings of tile coordinates
// for use as sorted or persisted map keys. Both encodings are pure
// functions of (zoom, x, y): equal tiles always produce equal codes, so
// either works for deduplication regardless of how a tile was built.
package tilekey

import (
	"github.com/eak1mov/go-slippymap/tile"
)

// Key encodes a tile with its coordinate bits interleaved from the top
// of the word (y over x, deepest bits last) and the zoom in the low five
// bits. Sorting keys gives a depth-first pre-order quadtree traversal:
// a containing tile sorts before every tile beneath it.
type Key uint64

// MaxZoom bounds the zoom levels a Key can hold: two coordinate bits per
// level plus the five-bit zoom field exhaust the word at zoom 30.
const MaxZoom = 30

// Make returns the key for t. The second return is false for an invalid
// tile or one too deep to encode without the coordinate bits reaching
// into the zoom field.
func Make(t tile.ID) (Key, bool) {
	if !t.Valid() || t.Z >= MaxZoom {
		return 0, false
	}
	val := uint64(t.Z)
	shift := 64 - 2*t.Z
	for bit := uint32(0); bit < t.Z; bit++ {
		xm := uint64((t.X>>bit)&1) << shift
		ym := uint64((t.Y>>bit)&1) << (shift + 1)
		val |= xm | ym
		shift += 2
	}
	return Key(val), true
}

// Tile decodes the key back into tile coordinates.
func (k Key) Tile() tile.ID {
	val := uint64(k)
	z := uint32(val) & 0x1f
	var x, y uint32
	shift := 64 - 2*z
	for bit := uint32(0); bit < z; bit++ {
		x |= uint32(val>>shift&1) << bit
		y |= uint32(val>>(shift+1)&1) << bit
		shift += 2
	}
	return tile.ID{X: x, Y: y, Z: z}
}
