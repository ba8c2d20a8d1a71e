package services

import (
	"context"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/platform/logging"
	"distance-matrix-client/internal/platform/obs"
	"distance-matrix-client/internal/ports"
	"errors"
	"fmt"
)

// RunMatrixQuery performs one matrix query with opts and, when journal is
// non-nil, records the answer. Journal failures are logged and never
// returned; the caller still gets the response.
func RunMatrixQuery(
	ctx context.Context,
	querier ports.MatrixQuerier,
	journal ports.ResultJournal,
	opts domain.Options,
	origins []string,
	destinations []string,
) (*domain.MatrixResponse, error) {
	if querier == nil {
		return nil, errors.New("run matrix query: querier is nil")
	}

	resp, err := querier.Matrix(ctx, opts, origins, destinations)
	if err != nil {
		return nil, fmt.Errorf("run matrix query: %w", err)
	}

	if journal != nil {
		recorded := opts.WithLocations(origins, destinations)
		if err := journal.Record(ctx, recorded, resp); err != nil {
			logging.Default.Warnw("journal record failed", "req_id", obs.RequestID(ctx), "err", err)
		}
	}

	return resp, nil
}
