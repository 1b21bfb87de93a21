package mapview

import (
	"bytes"
	"embed"
	"eov-wgs-service/internal/domain"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// Default satellite tile layer.
const (
	DefaultTileURL     = "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}"
	DefaultAttribution = "Esri"
	maxZoom            = 20
)

//go:embed templates/map.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/map.html.tmpl"))

// Marker kinds drawn by the page script.
const (
	markerPlain = "plain"
	markerInfo  = "info"
)

// marker is the per-point payload handed to the page script.
type marker struct {
	Kind    string  `json:"kind"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Label   string  `json:"label,omitempty"`
	Popup   string  `json:"popup"`
	Tooltip string  `json:"tooltip"`
}

type page struct {
	Title       string
	Center      domain.Coordinates
	Zoom        int
	MaxZoom     int
	TileURL     string
	Attribution string
	Points      []marker
}

// Renderer builds Leaflet map pages. It performs no network calls itself;
// tiles and the Leaflet script are fetched by whatever displays the page.
type Renderer struct {
	TileURL     string
	Attribution string
	Title       string
}

func NewRenderer(tileURL, attribution string) *Renderer {
	if strings.TrimSpace(tileURL) == "" {
		tileURL = DefaultTileURL
	}
	if strings.TrimSpace(attribution) == "" {
		attribution = DefaultAttribution
	}
	return &Renderer{TileURL: tileURL, Attribution: attribution, Title: "EOV-WGS converter"}
}

// Render returns the full HTML document: tile layer, click-to-mark layer and one
// addPoint call per point in the given order. Unlabelled points get a plain
// marker; labelled ones a red info marker plus a text label.
func (r *Renderer) Render(center domain.Coordinates, zoom int, points []domain.Point) (string, error) {
	if !center.Valid() {
		return "", fmt.Errorf("render map: invalid center %v", center)
	}
	if zoom < 0 || zoom > maxZoom {
		return "", fmt.Errorf("render map: zoom %d out of range 0..%d", zoom, maxZoom)
	}
	if r.TileURL == "" {
		return "", errors.New("render map: tile url is empty")
	}

	data := page{
		Title:       r.Title,
		Center:      center,
		Zoom:        zoom,
		MaxZoom:     maxZoom,
		TileURL:     r.TileURL,
		Attribution: r.Attribution,
		Points:      make([]marker, 0, len(points)),
	}
	for _, p := range points {
		kind := markerPlain
		if p.HasLabel() {
			kind = markerInfo
		}
		data.Points = append(data.Points, marker{
			Kind:    kind,
			Lat:     p.Location.Lat,
			Lon:     p.Location.Lon,
			Label:   p.Label,
			Popup:   p.Popup,
			Tooltip: p.Tooltip,
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render map: execute template: %w", err)
	}
	return buf.String(), nil
}
