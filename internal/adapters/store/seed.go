package store

import (
	"context"
	"encoding/json"
	"eov-wgs-service/internal/domain"
	"eov-wgs-service/internal/ports"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// One entry of a point seed file (JSON or YAML), in WGS84 degrees.
type SeedPoint struct {
	Label string  `json:"label" yaml:"label"`
	Lat   float64 `json:"lat" yaml:"lat"`
	Lon   float64 `json:"lon" yaml:"lon"`
}

// Point builds the domain point shown for a seeded entry.
func (s SeedPoint) Point(now time.Time) domain.Point {
	loc := domain.Coordinates{Lat: s.Lat, Lon: s.Lon}
	label := strings.TrimSpace(s.Label)
	short := fmt.Sprintf("%.5f, %.5f", s.Lat, s.Lon)

	tooltip := short
	popup := "<b>" + short + "</b>"
	if label != "" {
		tooltip = html.EscapeString(label) + "<br>" + short
		popup = "<b>" + html.EscapeString(label) + "</b><br>" + short
	}
	return domain.NewPoint(loc, label, popup, tooltip, now)
}

// Read a seed file. The format is picked from the extension: .yaml/.yml or JSON otherwise.
func LoadSeed(path string) ([]SeedPoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	var seeds []SeedPoint
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &seeds); err != nil {
			return nil, fmt.Errorf("load seed: parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &seeds); err != nil {
			return nil, fmt.Errorf("load seed: parse json: %w", err)
		}
	}

	for i, s := range seeds {
		if !(domain.Coordinates{Lat: s.Lat, Lon: s.Lon}).Valid() {
			return nil, fmt.Errorf("load seed: invalid coordinates at index %d: %v, %v", i+1, s.Lat, s.Lon)
		}
	}

	return seeds, nil
}

// Append every seed point to the store, in file order.
func Seed(ctx context.Context, st ports.PointStore, seeds []SeedPoint) error {
	now := time.Now()
	for i, s := range seeds {
		if err := st.Append(ctx, s.Point(now)); err != nil {
			return fmt.Errorf("seed points: append index %d: %w", i+1, err)
		}
	}
	return nil
}
