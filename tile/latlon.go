package tile

import (
	"errors"
	"fmt"
	"math"
)

// MercatorMaxLat is the latitude of the northern edge of the
// Web-Mercator-valid band. The forward projection diverges at the poles,
// so latitudes beyond the band are silently clipped to its nearest edge
// before projecting. Points themselves may carry any latitude in [-90, 90].
const MercatorMaxLat = 85.05112877980659

var ErrInvalidLatLon = errors.New("slippymap: latitude/longitude out of range")

// LatLon is a geographic point in WGS84 degrees.
type LatLon struct {
	Lat float64
	Lon float64
}

// NewLatLon returns the point at (lat, lon). Latitudes outside [-90, 90]
// and longitudes outside [-180, 180] are rejected.
func NewLatLon(lat, lon float64) (LatLon, error) {
	p := LatLon{Lat: lat, Lon: lon}
	if !p.Valid() {
		return LatLon{}, fmt.Errorf("%w: (%v, %v)", ErrInvalidLatLon, lat, lon)
	}
	return p, nil
}

func (p LatLon) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// GridXY projects p onto the fractional tile grid of the given zoom using
// the spherical Web-Mercator formula. The latitude is clipped to the
// Mercator band first.
func (p LatLon) GridXY(zoom uint32) (x, y float64) {
	n := float64(uint64(1) << zoom)
	x = (p.Lon + 180) / 360 * n
	latRad := clipLat(p.Lat) * math.Pi / 180
	y = (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n
	return x, y
}

func clipLat(lat float64) float64 {
	return math.Min(math.Max(lat, -MercatorMaxLat), MercatorMaxLat)
}

// gridLatLon is the inverse projection: the geographic position of a
// fractional grid coordinate at the given zoom.
func gridLatLon(zoom uint32, x, y float64) LatLon {
	n := float64(uint64(1) << zoom)
	lon := x/n*360 - 180
	lat := math.Atan(math.Sinh(math.Pi*(1-2*y/n))) * 180 / math.Pi
	return LatLon{Lat: lat, Lon: lon}
}
