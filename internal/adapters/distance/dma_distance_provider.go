package distance

import (
	"context"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/platform/obs"
	"distance-matrix-client/internal/ports"
	"errors"
	"fmt"
	"math"
)

// GetDistance delegates to the batched path with a single destination.
func (c *DMAClient) GetDistance(
	ctx context.Context,
	origin string,
	destination string,
) (ports.DistanceResult, error) {
	normDestination := domain.NormalizeLocation(destination)
	if normDestination == "" {
		return ports.DistanceResult{}, errors.New("get DMA distance: destination must be non-empty")
	}

	results, err := c.GetDistances(ctx, origin, []string{normDestination})
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("get distances %q -> %q: %w", origin, normDestination, err)
	}

	result, ok := results[normDestination]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("no distance result for %q -> %q", origin, destination)
	}

	return result, nil
}

// GetDistances computes distances from a single origin to many destinations
// with one matrix row, using the client's default options.
// A destination equal to the origin is answered locally with a zero result.
func (c *DMAClient) GetDistances(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "dma.GetDistances")(&err)

	normOrigin := domain.NormalizeLocation(origin)
	if normOrigin == "" {
		return nil, errors.New("origin must be non-empty")
	}

	out := make(map[string]ports.DistanceResult, len(destinations))

	seen := make(map[string]struct{}, len(destinations))
	destList := make([]string, 0, len(destinations))
	for _, d := range destinations {
		nd := domain.NormalizeLocation(d)
		if nd == "" {
			continue
		}
		if _, ok := seen[nd]; ok {
			continue
		}
		seen[nd] = struct{}{}

		if nd == normOrigin {
			out[nd] = ports.DistanceResult{}
			continue
		}
		destList = append(destList, nd)
	}

	if len(destList) == 0 {
		return out, nil
	}

	resp, err := c.Matrix(ctx, c.defaults, []string{normOrigin}, destList)
	if err != nil {
		return nil, fmt.Errorf("fetching matrix row: %w", err)
	}
	if err := resp.Err(); err != nil {
		return nil, fmt.Errorf("fetching matrix row: %w", err)
	}

	if len(resp.Rows) != 1 {
		return nil, fmt.Errorf("expected 1 origin row; got %d", len(resp.Rows))
	}
	row := resp.Rows[0].Elements
	if len(row) != len(destList) {
		return nil, fmt.Errorf(
			"row length does not match destinations: elements=%d destinations=%d",
			len(row), len(destList),
		)
	}

	for i, dest := range destList {
		r, err := toDistanceResult(row[i])
		if err != nil {
			return nil, fmt.Errorf("%q -> %q: %w", normOrigin, dest, err)
		}
		out[dest] = r
	}

	return out, nil
}

func toDistanceResult(el domain.MatrixElement) (ports.DistanceResult, error) {
	if el.Status != domain.StatusOK {
		return ports.DistanceResult{}, &domain.StatusError{Status: el.Status}
	}
	if el.Distance == nil || el.Duration == nil {
		return ports.DistanceResult{}, errors.New("matrix returned element without distance or duration")
	}

	// The API reports float metrics; round to whole meters and seconds.
	r := ports.DistanceResult{
		DistanceMeters:  int(math.Round(el.Distance.Value)),
		DurationSeconds: int(math.Round(el.Duration.Value)),
	}
	if el.DurationInTraffic != nil {
		r.DurationInTrafficSeconds = int(math.Round(el.DurationInTraffic.Value))
	}

	return r, nil
}
