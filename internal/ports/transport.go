package ports

import "context"

// Raw HTTP outcome: status code and full body.
type TransportResponse struct {
	StatusCode int
	Body       []byte
}

// Contract for performing a single GET request.
type Transport interface {
	// Issue one GET to url. Any status is returned; only a failure to get a
	// response at all is an error.
	Get(ctx context.Context, url string) (*TransportResponse, error)
}
