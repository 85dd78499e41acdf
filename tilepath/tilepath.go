// Package tilepath renders tiles and metatiles as filesystem-safe
// relative paths for cache stores. Every helper derives the path purely
// from the tile's (zoom, x, y) and a caller-chosen extension, so no
// external input can escape the cache root.
package tilepath

import (
	"fmt"

	"github.com/eak1mov/go-slippymap/tile"
)

// ZXY returns the plain "z/x/y.ext" layout.
func ZXY(t tile.ID, ext string) string {
	return fmt.Sprintf("%d/%d/%d.%s", t.Z, t.X, t.Y, ext)
}

// TC returns the tile-cache layout used by tirex-style stores: x and y
// each split into three zero-padded thousands groups,
// "z/xxx/xxx/xxx/yyy/yyy/yyy.ext".
func TC(t tile.ID, ext string) string {
	return fmt.Sprintf("%d/%03d/%03d/%03d/%03d/%03d/%03d.%s",
		t.Z,
		t.X/1_000_000, t.X/1_000%1_000, t.X%1_000,
		t.Y/1_000_000, t.Y/1_000%1_000, t.Y%1_000,
		ext)
}

// MP returns the mapproxy layout: x and y each split into two zero-padded
// ten-thousands groups, "z/xxxx/xxxx/yyyy/yyyy.ext".
func MP(t tile.ID, ext string) string {
	return fmt.Sprintf("%d/%04d/%04d/%04d/%04d.%s",
		t.Z, t.X/10_000, t.X%10_000, t.Y/10_000, t.Y%10_000, ext)
}

// ModTile returns the mod_tile hash layout "z/a/b/c/d/e.ext": five
// single-byte path segments, each packing four bits of x over four bits
// of y, most significant segment first.
func ModTile(t tile.ID, ext string) string {
	x, y := t.X, t.Y
	var h [5]uint32
	for i := range h {
		h[i] = (x&0xf)<<4 | y&0xf
		x >>= 4
		y >>= 4
	}
	return fmt.Sprintf("%d/%d/%d/%d/%d/%d.%s", t.Z, h[4], h[3], h[2], h[1], h[0], ext)
}

// ModTileMeta returns the mod_tile hash layout for a metatile file,
// derived from the metatile's origin tile with the conventional "meta"
// extension.
func ModTileMeta(m tile.Metatile) string {
	return ModTile(m.Origin(), "meta")
}
