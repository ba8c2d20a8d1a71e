package ports

import "context"

// Distance and travel duration between two locations.
// DurationInTrafficSeconds is zero unless the query asked for a departure time
// and the API answered with a traffic-aware duration.
type DistanceResult struct {
	DistanceMeters           int
	DurationSeconds          int
	DurationInTrafficSeconds int
}

// Contract for retrieving travel distance and duration between two locations.
type DistanceProvider interface {
	// Return travel distance and estimated duration from origin to destination.
	GetDistance(ctx context.Context, origin string, destination string) (DistanceResult, error)
}
