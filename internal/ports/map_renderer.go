package ports

import "eov-wgs-service/internal/domain"

// Builds a self-contained map document from a center, zoom level and points.
// Implementations must be deterministic and must not perform network calls.
type MapRenderer interface {
	Render(center domain.Coordinates, zoom int, points []domain.Point) (string, error)
}

// Serializes a point sequence into an interchange document (KML, GeoJSON).
type PointEncoder interface {
	Encode(points []domain.Point) ([]byte, error)
	// File extension including the dot, e.g. ".kml".
	Extension() string
	ContentType() string
}
