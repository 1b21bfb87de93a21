package export

import (
	"eov-wgs-service/internal/domain"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON encodes the points as a FeatureCollection of Point features.
// Feature names follow the same fallback as KML placemarks.
func GeoJSON(points []domain.Point) ([]byte, error) {
	if len(points) == 0 {
		return nil, domain.NewError(domain.KindNoPointsToExport, "", "there are no points to export")
	}

	fc := geojson.NewFeatureCollection()
	for i, p := range points {
		lonLat := p.Location.CoordsToList()
		f := geojson.NewFeature(orb.Point{lonLat[0], lonLat[1]})
		f.ID = p.ID.String()

		name := p.Label
		if name == "" {
			name = fmt.Sprintf("Point %d", i+1)
		}
		f.Properties["name"] = name
		f.Properties["description"] = plainText(p.Popup)
		f.Properties["created_at"] = p.CreatedAt.UTC().Format(time.RFC3339)

		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("geojson: marshal feature collection: %w", err)
	}
	return data, nil
}

// GeoJSONEncoder adapts GeoJSON to the PointEncoder port.
type GeoJSONEncoder struct{}

func (GeoJSONEncoder) Encode(points []domain.Point) ([]byte, error) { return GeoJSON(points) }
func (GeoJSONEncoder) Extension() string                            { return ".geojson" }
func (GeoJSONEncoder) ContentType() string                          { return "application/geo+json" }
