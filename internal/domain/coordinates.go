package domain

import (
	"math"
	"strconv"
	"strings"
)

// Immutable WGS84 geographic coordinates in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for GeoJSON/KML compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Valid reports whether both components are finite and inside the WGS84 range.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Projected EOV (EPSG:23700) coordinates in meters.
// Y is the easting, X the northing, following the Hungarian convention.
type EOVCoordinates struct {
	Y float64
	X float64
}

func (c EOVCoordinates) Valid() bool {
	return !math.IsNaN(c.Y) && !math.IsNaN(c.X) && !math.IsInf(c.Y, 0) && !math.IsInf(c.X, 0)
}

// DecimalText prints the shortest text that round-trips v and keeps ".0" on
// whole numbers, so 650000 reads "650000.0" and 19.05 stays "19.05".
func DecimalText(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
