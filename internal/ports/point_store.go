package ports

import (
	"context"
	"eov-wgs-service/internal/domain"
)

// Port: ordered, append-only collection of points drawn on the map.
type PointStore interface {
	// Add a point after every point already stored.
	Append(ctx context.Context, p domain.Point) error
	// Remove every point. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
	// Return a full snapshot in insertion order.
	All(ctx context.Context) ([]domain.Point, error)
}
