package transport

import (
	"context"
	"distance-matrix-client/internal/ports"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPTransport performs single GET requests over net/http.
// It never retries and never interprets the status code.
type HTTPTransport struct {
	session *http.Client
}

// NewHTTPTransport returns a transport whose requests are bounded by timeout.
// A zero timeout leaves only the caller's context as a bound.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{session: &http.Client{Timeout: timeout}}
}

// NewHTTPTransportWithClient wraps an existing client, e.g. httptest's.
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{session: client}
}

func (t *HTTPTransport) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (t *HTTPTransport) Get(ctx context.Context, url string) (*ports.TransportResponse, error) {
	req, err := t.newRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	resp, err := t.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &ports.TransportResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
