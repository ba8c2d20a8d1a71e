package ports

import (
	"context"
	"distance-matrix-client/internal/domain"
	"time"
)

// One answered origin/destination pair as stored in the query journal.
type JournalEntry struct {
	QueryID         string
	QueriedAt       time.Time
	Origin          string
	Destination     string
	Mode            string
	Status          string
	DistanceMeters  int
	DurationSeconds int
}

// Append-only history of answered queries. It is never consulted to answer a query.
type ResultJournal interface {
	// Store every element of resp under a new query id.
	Record(ctx context.Context, opts domain.Options, resp *domain.MatrixResponse) error
	// Return up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]JournalEntry, error)
}
