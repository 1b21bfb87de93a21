package dto

import "time"

// Coordinate fields are raw text; the service validator owns their rules.
type EOVToWGSRequest struct {
	EOVY  string `json:"eov_y"`
	EOVX  string `json:"eov_x"`
	Label string `json:"label"`
	Place bool   `json:"place"`
}

type WGSToEOVRequest struct {
	WGS string `json:"wgs"`
}

type ExternalMapRequest struct {
	EOVY  string `json:"eov_y"`
	EOVX  string `json:"eov_x"`
	Label string `json:"label"`
}

type EOVToWGSResponse struct {
	Lat   float64        `json:"lat"`
	Lon   float64        `json:"lon"`
	Text  string         `json:"text"`
	Point *PointResponse `json:"point,omitempty"`
}

type WGSToEOVResponse struct {
	EOVY float64 `json:"eov_y"`
	EOVX float64 `json:"eov_x"`
	Text string  `json:"text"`
}

type ExternalMapResponse struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Text string  `json:"text"`
	URL  string  `json:"url"`
}

type PointResponse struct {
	ID        string    `json:"id"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Label     string    `json:"label,omitempty"`
	Tooltip   string    `json:"tooltip"`
	Popup     string    `json:"popup"`
	CreatedAt time.Time `json:"created_at"`
}

type ListPointResponse struct {
	Points []PointResponse `json:"points"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}
