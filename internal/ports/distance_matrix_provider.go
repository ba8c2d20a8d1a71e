package ports

import "context"

// Batched extension of DistanceProvider, answered with a single matrix row.
type DistanceMatrixProvider interface {
	DistanceProvider
	// Return distances from one origin to many destinations, keyed by destination.
	GetDistances(ctx context.Context, origin string, destinations []string) (map[string]DistanceResult, error)
}
