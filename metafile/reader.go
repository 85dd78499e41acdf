// Package metafile reads serialized metatile files in the mod_tile .meta
// layout: a fixed header naming the metatile, an offset/length entry per
// contained tile slot, then the tile data. The package only consumes an
// external byte stream; it never fetches or stores tiles itself.
package metafile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/eak1mov/go-slippymap/tile"
)

var ErrFormat = errors.New("slippymap: malformed metatile file")

var metaMagic = [4]byte{'M', 'E', 'T', 'A'}

// header mirrors the mod_tile meta_layout struct: little-endian 32-bit
// fields, count = scale².
type header struct {
	Magic [4]byte
	Count int32
	X     int32
	Y     int32
	Z     int32
}

// entry locates one tile slot's data inside the file.
type entry struct {
	Offset int32
	Size   int32
}

var (
	headerSize = binary.Size(header{})
	entrySize  = binary.Size(entry{})
)

// Reader reads tiles from a single metatile file. It implements the
// tile.Reader, tile.Visitor, tile.LocationReader and tile.LocationVisitor
// interfaces; tiles outside the metatile, and empty slots inside it, read
// as absent.
type Reader struct {
	src     io.ReaderAt
	meta    tile.Metatile
	entries []entry
}

// NewReader parses the header and slot index of a serialized metatile.
func NewReader(src io.ReaderAt) (*Reader, error) {
	var h header
	if err := readAt(src, 0, headerSize, &h); err != nil {
		return nil, err
	}
	if h.Magic != metaMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, h.Magic[:])
	}
	if h.Count <= 0 {
		return nil, fmt.Errorf("%w: tile count %d", ErrFormat, h.Count)
	}
	scale := int32(math.Sqrt(float64(h.Count)))
	if scale*scale != h.Count {
		return nil, fmt.Errorf("%w: tile count %d is not a square", ErrFormat, h.Count)
	}
	if h.X < 0 || h.Y < 0 || h.Z < 0 {
		return nil, fmt.Errorf("%w: negative coordinates %d/%d/%d", ErrFormat, h.Z, h.X, h.Y)
	}
	meta, err := tile.NewMetatile(uint32(scale), uint32(h.Z), uint32(h.X), uint32(h.Y))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	entries := make([]entry, h.Count)
	if err := readAt(src, int64(headerSize), int(h.Count)*entrySize, entries); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Offset < 0 || e.Size < 0 {
			return nil, fmt.Errorf("%w: negative slot location", ErrFormat)
		}
	}

	return &Reader{src: src, meta: meta, entries: entries}, nil
}

func readAt(src io.ReaderAt, offset int64, length int, v any) error {
	buffer := make([]byte, length)
	if _, err := src.ReadAt(buffer, offset); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return binary.Read(bytes.NewReader(buffer), binary.LittleEndian, v)
}

// Metatile returns the metatile the file serializes.
func (r *Reader) Metatile() tile.Metatile {
	return r.meta
}

// slot returns the index entry for t, or false when t lies outside the
// metatile. Slots are ordered x-major from the origin, with the full
// Scale stride even when the grid caps the spanned size.
func (r *Reader) slot(t tile.ID) (entry, bool) {
	if t.Z != r.meta.Z || t.X < r.meta.X || t.Y < r.meta.Y {
		return entry{}, false
	}
	dx, dy := t.X-r.meta.X, t.Y-r.meta.Y
	if dx >= r.meta.Size() || dy >= r.meta.Size() {
		return entry{}, false
	}
	return r.entries[dx*r.meta.Scale+dy], true
}

func (r *Reader) ReadLocation(tileID tile.ID) (tile.Location, error) {
	e, ok := r.slot(tileID)
	if !ok || e.Size == 0 {
		return tile.Location{}, nil
	}
	return tile.Location{Offset: uint64(e.Offset), Length: uint64(e.Size)}, nil
}

func (r *Reader) ReadTile(tileID tile.ID) ([]byte, error) {
	e, ok := r.slot(tileID)
	if !ok || e.Size == 0 {
		return make([]byte, 0), nil
	}
	tileData := make([]byte, e.Size)
	if _, err := r.src.ReadAt(tileData, int64(e.Offset)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return tileData, nil
}

// VisitLocations visits the stored tiles of the metatile in the row-major
// order of Metatile.Tiles, skipping empty slots.
func (r *Reader) VisitLocations(visitor func(tile.ID, tile.Location) error) error {
	for t := range r.meta.Tiles() {
		e, _ := r.slot(t)
		if e.Size == 0 {
			continue
		}
		loc := tile.Location{Offset: uint64(e.Offset), Length: uint64(e.Size)}
		if err := visitor(t, loc); err != nil {
			return err
		}
	}
	return nil
}

// VisitTiles visits the stored tiles and their data in the row-major
// order of Metatile.Tiles, skipping empty slots.
func (r *Reader) VisitTiles(visitor func(tile.ID, []byte) error) error {
	return r.VisitLocations(func(tileID tile.ID, _ tile.Location) error {
		tileData, err := r.ReadTile(tileID)
		if err != nil {
			return err
		}
		return visitor(tileID, tileData)
	})
}

// FileReader is a Reader over an opened metatile file.
type FileReader struct {
	*Reader
	file *os.File
}

// NewFileReader opens filePath and parses it as a metatile file. The
// returned reader must be closed after use.
func NewFileReader(filePath string) (*FileReader, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	reader, err := NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &FileReader{Reader: reader, file: file}, nil
}

func (r *FileReader) Close() error {
	return r.file.Close()
}
