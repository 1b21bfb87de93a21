package ports

import "context"

// Contract for a fixed-direction geodetic transform between two reference systems.
// The direction is chosen when the transformer is built; Transform never flips it.
type CoordinateTransformer interface {
	// Transform a coordinate pair (a, b) in the source system into the target system.
	Transform(ctx context.Context, a, b float64) (float64, float64, error)
}
