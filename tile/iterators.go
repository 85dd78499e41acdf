package tile

import (
	"errors"
	"iter"
)

var errVisitCancelled = errors.New("visit cancelled")

// IterTiles adapts a Visitor into an iterator over tile IDs and data.
// Iteration may panic on unrecoverable store errors.
func IterTiles(r Visitor) iter.Seq2[ID, []byte] {
	return func(yield func(ID, []byte) bool) {
		err := r.VisitTiles(func(tileID ID, tileData []byte) error {
			if !yield(tileID, tileData) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}

// IterLocations adapts a LocationVisitor into an iterator over tile IDs
// and data locations.
func IterLocations(r LocationVisitor) iter.Seq2[ID, Location] {
	return func(yield func(ID, Location) bool) {
		err := r.VisitLocations(func(tileID ID, location Location) error {
			if !yield(tileID, location) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}
