package services

import (
	"context"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/ports"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// maxConcurrentLookups bounds the per-destination fallback fan-out.
const maxConcurrentLookups = 5

type RankedDestination struct {
	Destination string
	ports.DistanceResult
}

type lookupResult struct {
	destination string
	result      ports.DistanceResult
	err         error
}

// RankDestinations orders destinations by travel duration from origin,
// shortest first. Equal durations are ordered by name so the result is
// deterministic.
//
// A provider implementing ports.DistanceMatrixProvider is asked once for the
// whole row; any other provider gets one GetDistance per destination.
func RankDestinations(
	ctx context.Context,
	provider ports.DistanceProvider,
	origin string,
	destinations []string,
) ([]RankedDestination, error) {
	if provider == nil {
		return nil, errors.New("rank destinations: provider is nil")
	}
	origin = domain.NormalizeLocation(origin)
	if origin == "" {
		return nil, errors.New("rank destinations: origin must be non-empty")
	}

	seen := make(map[string]struct{}, len(destinations))
	uniq := make([]string, 0, len(destinations))
	for _, d := range destinations {
		d = domain.NormalizeLocation(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		uniq = append(uniq, d)
	}
	if len(uniq) == 0 {
		return []RankedDestination{}, nil
	}

	distances, err := lookupDistances(ctx, provider, origin, uniq)
	if err != nil {
		return nil, fmt.Errorf("rank destinations: %w", err)
	}

	ranked := make([]RankedDestination, 0, len(uniq))
	for _, d := range uniq {
		r, ok := distances[d]
		if !ok {
			return nil, fmt.Errorf("rank destinations: missing distance for %q", d)
		}
		ranked = append(ranked, RankedDestination{Destination: d, DistanceResult: r})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DurationSeconds != ranked[j].DurationSeconds {
			return ranked[i].DurationSeconds < ranked[j].DurationSeconds
		}
		return ranked[i].Destination < ranked[j].Destination
	})

	return ranked, nil
}

func lookupDistances(
	ctx context.Context,
	provider ports.DistanceProvider,
	origin string,
	destinations []string,
) (map[string]ports.DistanceResult, error) {
	if mp, ok := provider.(ports.DistanceMatrixProvider); ok {
		res, err := mp.GetDistances(ctx, origin, destinations)
		if err != nil {
			return nil, fmt.Errorf("get matrix distances from %q: %w", origin, err)
		}
		return res, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, maxConcurrentLookups)
	resultsCh := make(chan lookupResult, len(destinations))
	var wg sync.WaitGroup

	for _, d := range destinations {
		wg.Add(1)
		go func(dest string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			r, err := provider.GetDistance(ctx, origin, dest)
			if err != nil {
				resultsCh <- lookupResult{destination: dest, err: fmt.Errorf("get distance %q -> %q: %w", origin, dest, err)}
				cancel()
				return
			}
			resultsCh <- lookupResult{destination: dest, result: r}
		}(d)
	}

	wg.Wait()
	close(resultsCh)

	out := make(map[string]ports.DistanceResult, len(destinations))
	var firstErr error
	for res := range resultsCh {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		out[res.destination] = res.result
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}
