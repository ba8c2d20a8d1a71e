package distance

import (
	"context"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/ports"
	"fmt"
	"sync"
)

type MockPair struct {
	From, To string
	Meters   int
	Seconds  int
}

// MockDistanceProvider answers distance and matrix queries from a fixed table.
// Pairs missing from the table come back as NOT_FOUND elements.
type MockDistanceProvider struct {
	m map[string]ports.DistanceResult

	mu      sync.Mutex
	calls   int
	lastOpt domain.Options
	err     error
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]ports.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[p.From+domain.LocationSeparator+p.To] = ports.DistanceResult{DistanceMeters: p.Meters, DurationSeconds: p.Seconds}
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) GetDistance(ctx context.Context, origin, destination string) (ports.DistanceResult, error) {
	r, ok := p.m[origin+domain.LocationSeparator+destination]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}

	return r, nil
}

func (p *MockDistanceProvider) GetDistances(ctx context.Context, origin string, destinations []string) (map[string]ports.DistanceResult, error) {
	out := make(map[string]ports.DistanceResult, len(destinations))
	for _, d := range destinations {
		r, err := p.GetDistance(ctx, origin, d)
		if err != nil {
			return nil, err
		}
		out[d] = r
	}
	return out, nil
}

func (p *MockDistanceProvider) Matrix(
	ctx context.Context,
	opts domain.Options,
	origins []string,
	destinations []string,
) (*domain.MatrixResponse, error) {
	p.mu.Lock()
	p.calls++
	p.lastOpt = opts.WithLocations(origins, destinations)
	err := p.err
	p.mu.Unlock()

	if err != nil {
		return nil, err
	}

	resp := &domain.MatrixResponse{
		Status:               domain.StatusOK,
		OriginAddresses:      origins,
		DestinationAddresses: destinations,
		Rows:                 make([]domain.MatrixRow, 0, len(origins)),
	}
	for _, o := range origins {
		row := domain.MatrixRow{Elements: make([]domain.MatrixElement, 0, len(destinations))}
		for _, d := range destinations {
			r, ok := p.m[o+domain.LocationSeparator+d]
			if !ok {
				row.Elements = append(row.Elements, domain.MatrixElement{Status: "NOT_FOUND"})
				continue
			}
			row.Elements = append(row.Elements, domain.MatrixElement{
				Status:   domain.StatusOK,
				Distance: &domain.TextValue{Text: fmt.Sprintf("%d m", r.DistanceMeters), Value: float64(r.DistanceMeters)},
				Duration: &domain.TextValue{Text: fmt.Sprintf("%d s", r.DurationSeconds), Value: float64(r.DurationSeconds)},
			})
		}
		resp.Rows = append(resp.Rows, row)
	}

	return resp, nil
}

// FailWith makes every later Matrix call return err.
func (p *MockDistanceProvider) FailWith(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

// LastOptions returns the options of the latest Matrix call, locations included.
func (p *MockDistanceProvider) LastOptions() domain.Options {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastOpt
}

func (p *MockDistanceProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
