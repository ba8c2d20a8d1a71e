package distance

import (
	"context"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/platform/logging"
	"distance-matrix-client/internal/platform/obs"
	"distance-matrix-client/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the Distance Matrix endpoint; the signed query is appended as is.
const DefaultBaseURL = "https://maps.distancematrixapi.com/maps/api/distancematrix/json?"

// MatrixCallback receives the outcome of an asynchronous matrix query.
type MatrixCallback func(resp *domain.MatrixResponse, err error)

// DMAClient executes distance matrix queries against DistanceMatrixAPI.com.
//
// Every call works on the Options value it is given, so concurrent calls with
// different options never interfere. Each call issues exactly one GET;
// there is no retry.
//
// The client is safe for concurrent use.
type DMAClient struct {
	transport ports.Transport
	signer    ports.QuerySigner
	baseURL   string
	defaults  domain.Options
}

type Option func(*DMAClient)

func WithBaseURL(baseURL string) Option {
	return func(c *DMAClient) { c.baseURL = baseURL }
}

// WithDefaultOptions sets the options used by GetDistance and GetDistances.
func WithDefaultOptions(opts domain.Options) Option {
	return func(c *DMAClient) { c.defaults = opts }
}

func NewDMAClient(transport ports.Transport, signer ports.QuerySigner, opts ...Option) (*DMAClient, error) {
	if transport == nil {
		return nil, errors.New("dma client: transport is nil")
	}
	if signer == nil {
		return nil, errors.New("dma client: signer is nil")
	}

	client := &DMAClient{
		transport: transport,
		signer:    signer,
		baseURL:   DefaultBaseURL,
		defaults:  domain.DefaultOptions(nil),
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Matrix queries distances from every origin to every destination.
//
// Argument and signing errors wrap domain.ErrInvalidArgument and happen
// before any I/O. A failed request yields *domain.TransportError, a non-200
// answer *domain.APIRequestError, a body that is not a JSON object
// domain.ErrDecodeResponse. A decoded response is returned as is, even when
// its status is not OK.
func (c *DMAClient) Matrix(
	ctx context.Context,
	opts domain.Options,
	origins []string,
	destinations []string,
) (*domain.MatrixResponse, error) {
	requestURL, err := c.Prepare(opts, origins, destinations)
	if err != nil {
		return nil, err
	}

	return c.Fetch(ctx, requestURL)
}

// MatrixAsync validates and signs the query synchronously, then performs the
// request on its own goroutine and calls callback exactly once with the result.
// A returned error means the callback will not be called.
func (c *DMAClient) MatrixAsync(
	ctx context.Context,
	opts domain.Options,
	origins []string,
	destinations []string,
	callback MatrixCallback,
) error {
	if callback == nil {
		return fmt.Errorf("%w: missing callback function", domain.ErrInvalidArgument)
	}

	requestURL, err := c.Prepare(opts, origins, destinations)
	if err != nil {
		return err
	}

	c.FetchAsync(ctx, requestURL, callback)
	return nil
}

// Prepare formats the locations onto opts and builds the signed request URL.
// Every error it returns wraps domain.ErrInvalidArgument.
func (c *DMAClient) Prepare(opts domain.Options, origins, destinations []string) (string, error) {
	if len(origins) == 0 {
		return "", fmt.Errorf("%w: origins must not be empty", domain.ErrInvalidArgument)
	}
	if len(destinations) == 0 {
		return "", fmt.Errorf("%w: destinations must not be empty", domain.ErrInvalidArgument)
	}

	values, err := opts.WithLocations(origins, destinations).Values()
	if err != nil {
		return "", fmt.Errorf("%w: encode query: %w", domain.ErrInvalidArgument, err)
	}

	logging.Default.Debugw("dma request options", "base_url", c.baseURL, "params", redact(values).Encode())

	query, err := c.signer.Stringify(values, c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}

	return c.baseURL + query, nil
}

// Fetch issues one GET for a URL built by Prepare and decodes the answer.
// The undecoded body is kept on the response as Raw.
func (c *DMAClient) Fetch(ctx context.Context, requestURL string) (_ *domain.MatrixResponse, err error) {
	defer obs.Time(ctx, "dma.Fetch")(&err)

	resp, err := c.transport.Get(ctx, requestURL)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.APIRequestError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(resp.Body)),
		}
	}

	var decoded domain.MatrixResponse
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeResponse, err)
	}
	decoded.Raw = json.RawMessage(resp.Body)

	return &decoded, nil
}

// FetchAsync runs Fetch on its own goroutine and hands the outcome to callback.
func (c *DMAClient) FetchAsync(ctx context.Context, requestURL string, callback MatrixCallback) {
	go func() {
		resp, err := c.Fetch(ctx, requestURL)
		callback(resp, err)
	}()
}

// redact masks credentials before values are logged.
func redact(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for k, v := range values {
		switch k {
		case "key", "signature":
			out[k] = []string{"REDACTED"}
		default:
			out[k] = v
		}
	}
	return out
}
