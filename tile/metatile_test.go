package tile_test

import (
	"errors"
	"testing"

	"github.com/eak1mov/go-slippymap/tile"
	"github.com/google/go-cmp/cmp"
)

func TestNewMetatile(t *testing.T) {
	cases := []struct {
		Name    string
		Scale   uint32
		Zoom    uint32
		X, Y    uint32
		WantErr bool
	}{
		{Name: "Aligned", Scale: 8, Zoom: 3, X: 0, Y: 0},
		{Name: "AlignedOffset", Scale: 2, Zoom: 3, X: 2, Y: 4},
		{Name: "ScaleOne", Scale: 1, Zoom: 2, X: 3, Y: 1},
		{Name: "ZeroScale", Scale: 0, Zoom: 3, X: 0, Y: 0, WantErr: true},
		{Name: "NonPowerOfTwo", Scale: 3, Zoom: 3, X: 0, Y: 0, WantErr: true},
		{Name: "MisalignedX", Scale: 2, Zoom: 3, X: 1, Y: 0, WantErr: true},
		{Name: "MisalignedY", Scale: 4, Zoom: 3, X: 4, Y: 2, WantErr: true},
		{Name: "OriginOffGrid", Scale: 2, Zoom: 1, X: 4, Y: 0, WantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			m, err := tile.NewMetatile(tc.Scale, tc.Zoom, tc.X, tc.Y)
			if tc.WantErr {
				if !errors.Is(err, tile.ErrInvalidCoordinate) {
					t.Fatalf("NewMetatile error = %v, want ErrInvalidCoordinate", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewMetatile failed: %v", err)
			}
			want := tile.Metatile{Scale: tc.Scale, X: tc.X, Y: tc.Y, Z: tc.Zoom}
			if m != want {
				t.Errorf("NewMetatile = %v, want %v", m, want)
			}
		})
	}
}

func TestMetatileAt(t *testing.T) {
	m, err := tile.MetatileAt(tile.ID{X: 5, Y: 6, Z: 3}, 2)
	if err != nil {
		t.Fatalf("MetatileAt failed: %v", err)
	}
	if want := (tile.Metatile{Scale: 2, X: 4, Y: 6, Z: 3}); m != want {
		t.Errorf("MetatileAt(3/5/6, 2) = %v, want %v", m, want)
	}

	if _, err := tile.MetatileAt(tile.ID{X: 5, Y: 6, Z: 3}, 3); !errors.Is(err, tile.ErrInvalidCoordinate) {
		t.Errorf("MetatileAt(scale 3) error = %v, want ErrInvalidCoordinate", err)
	}
	if _, err := tile.MetatileAt(tile.ID{X: 5, Y: 6, Z: 1}, 2); !errors.Is(err, tile.ErrInvalidCoordinate) {
		t.Errorf("MetatileAt(invalid tile) error = %v, want ErrInvalidCoordinate", err)
	}
}

func TestMetatileParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"8 3/0/0", "1 0/0/0", "2 4/14/6"} {
		t.Run(s, func(t *testing.T) {
			m, err := tile.ParseMetatile(s)
			if err != nil {
				t.Fatalf("ParseMetatile(%q) failed: %v", s, err)
			}
			if got := m.String(); got != s {
				t.Errorf("String() = %q, want %q", got, s)
			}
		})
	}
}

func TestParseMetatileSnapsToOrigin(t *testing.T) {
	// Any tile inside the block names the block; String canonicalizes.
	cases := []struct {
		Input     string
		Want      tile.Metatile
		Canonical string
	}{
		{"8 3/2/5", tile.Metatile{Scale: 8, X: 0, Y: 0, Z: 3}, "8 3/0/0"},
		{"2 3/1/0", tile.Metatile{Scale: 2, X: 0, Y: 0, Z: 3}, "2 3/0/0"},
		{"2 4/15/9", tile.Metatile{Scale: 2, X: 14, Y: 8, Z: 4}, "2 4/14/8"},
	}
	for _, tc := range cases {
		t.Run(tc.Input, func(t *testing.T) {
			m, err := tile.ParseMetatile(tc.Input)
			if err != nil {
				t.Fatalf("ParseMetatile(%q) failed: %v", tc.Input, err)
			}
			if m != tc.Want {
				t.Errorf("ParseMetatile(%q) = %v, want %v", tc.Input, m, tc.Want)
			}
			if got := m.String(); got != tc.Canonical {
				t.Errorf("String() = %q, want %q", got, tc.Canonical)
			}
		})
	}
}

func TestParseMetatileErrors(t *testing.T) {
	cases := []struct {
		Name    string
		Input   string
		WantErr error
	}{
		{Name: "MissingScale", Input: "3/2/5", WantErr: tile.ErrParse},
		{Name: "NonNumericScale", Input: "x 3/2/5", WantErr: tile.ErrParse},
		{Name: "MalformedPath", Input: "8 3/2", WantErr: tile.ErrParse},
		{Name: "ScaleNotPowerOfTwo", Input: "3 3/3/3", WantErr: tile.ErrInvalidCoordinate},
		{Name: "OffGrid", Input: "2 3/10/0", WantErr: tile.ErrInvalidCoordinate},
	}
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			if _, err := tile.ParseMetatile(tc.Input); !errors.Is(err, tc.WantErr) {
				t.Errorf("ParseMetatile(%q) error = %v, want %v", tc.Input, err, tc.WantErr)
			}
		})
	}
}

func TestMetatileWholeGrid(t *testing.T) {
	// At zoom 3 a scale-8 metatile is the whole grid, so every tile
	// snaps to the zero origin.
	m, err := tile.ParseMetatile("8 3/0/0")
	if err != nil {
		t.Fatalf("ParseMetatile failed: %v", err)
	}
	if got, want := m.Origin(), (tile.ID{X: 0, Y: 0, Z: 3}); got != want {
		t.Errorf("Origin() = %v, want %v", got, want)
	}
}

func TestMetatileTiles(t *testing.T) {
	m := tile.Metatile{Scale: 2, X: 2, Y: 4, Z: 3}

	var got []tile.ID
	for id := range m.Tiles() {
		got = append(got, id)
	}
	want := []tile.ID{
		{X: 2, Y: 4, Z: 3},
		{X: 3, Y: 4, Z: 3},
		{X: 2, Y: 5, Z: 3},
		{X: 3, Y: 5, Z: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tiles() mismatch (-want+got):\n%v", diff)
	}
}

func TestMetatileSizeCappedByGrid(t *testing.T) {
	m := tile.Metatile{Scale: 8, X: 0, Y: 0, Z: 1}
	if !m.Valid() {
		t.Fatalf("metatile %v is invalid", m)
	}
	if got := m.Size(); got != 2 {
		t.Errorf("Size() = %d, want 2", got)
	}
	count := 0
	for range m.Tiles() {
		count++
	}
	if count != 4 {
		t.Errorf("Tiles() yielded %d tiles, want 4", count)
	}
}

func TestMetatilePartition(t *testing.T) {
	// Every tile of a zoom level belongs to exactly one metatile of a
	// given scale.
	const zoom, scale = 3, 4
	owners := make(map[tile.Metatile]int)
	for x := range uint32(1 << zoom) {
		for y := range uint32(1 << zoom) {
			m, err := tile.MetatileAt(tile.ID{X: x, Y: y, Z: zoom}, scale)
			if err != nil {
				t.Fatalf("MetatileAt failed: %v", err)
			}
			owners[m]++
		}
	}
	if len(owners) != 4 {
		t.Errorf("zoom-%d grid split into %d scale-%d metatiles, want 4", zoom, len(owners), scale)
	}
	for m, n := range owners {
		if n != scale*scale {
			t.Errorf("metatile %v owns %d tiles, want %d", m, n, scale*scale)
		}
	}
}

func TestMetatileBounds(t *testing.T) {
	single := tile.Metatile{Scale: 1, X: 1, Y: 1, Z: 1}
	if diff := cmp.Diff((tile.ID{X: 1, Y: 1, Z: 1}).Bounds(), single.Bounds()); diff != "" {
		t.Errorf("scale-1 metatile bounds differ from its tile (-want+got):\n%v", diff)
	}

	world := tile.Metatile{Scale: 2, X: 0, Y: 0, Z: 1}
	b := world.Bounds()
	if b.TopLeft.Lon != -180 || b.BottomRight.Lon != 180 {
		t.Errorf("world metatile spans lon %v..%v, want -180..180", b.TopLeft.Lon, b.BottomRight.Lon)
	}
}
