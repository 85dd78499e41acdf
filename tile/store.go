package tile

// Location is the absolute position of one tile's data inside a
// serialized tile store.
type Location struct {
	Offset uint64
	Length uint64
}

// Reader reads single tiles from a tile store.
type Reader interface {
	// ReadTile returns the data of one tile. A tile absent from the
	// store yields an empty slice with no error.
	ReadTile(tileID ID) ([]byte, error)
}

// Visitor enumerates the tiles of a store. Order is
// implementation-defined unless the implementation documents one.
type Visitor interface {
	VisitTiles(visitor func(ID, []byte) error) error
}

// LocationReader resolves a tile to its data location without reading
// the data itself.
type LocationReader interface {
	ReadLocation(tileID ID) (Location, error)
}

// LocationVisitor enumerates the data locations of a store.
type LocationVisitor interface {
	VisitLocations(visitor func(ID, Location) error) error
}
