package domain

import (
	"time"

	"github.com/google/uuid"
)

// A single marker collected across conversions.
// Location is always WGS84, whatever system the user typed in.
// Points are values: once appended they are only removed by a bulk clear.
type Point struct {
	ID        uuid.UUID
	Location  Coordinates
	Label     string
	Popup     string
	Tooltip   string
	CreatedAt time.Time
}

func NewPoint(loc Coordinates, label, popup, tooltip string, now time.Time) Point {
	return Point{
		ID:        uuid.New(),
		Location:  loc,
		Label:     label,
		Popup:     popup,
		Tooltip:   tooltip,
		CreatedAt: now.UTC(),
	}
}

// HasLabel reports whether the point carries a display name.
func (p Point) HasLabel() bool { return p.Label != "" }
