package ports

import (
	"context"
	"distance-matrix-client/internal/domain"
)

// Contract for executing one distance matrix query with an explicit option snapshot.
type MatrixQuerier interface {
	Matrix(ctx context.Context, opts domain.Options, origins, destinations []string) (*domain.MatrixResponse, error)
}
