// Package distancematrix is a client for the DistanceMatrixAPI.com distance
// matrix endpoint.
//
// A Client holds one mutable option set. Setters change it in place and
// every query works on a snapshot taken when the query starts, so later
// setter calls never leak into a request that is already running.
//
//	c := distancematrix.Default()
//	if err := c.SetMode("walking"); err != nil { ... }
//	err := c.Matrix(ctx, []string{"Berlin"}, []string{"Potsdam"}, func(resp *distancematrix.Response, err error) {
//		...
//	})
package distancematrix

import (
	"context"
	"distance-matrix-client/internal/adapters/distance"
	"distance-matrix-client/internal/adapters/signing"
	"distance-matrix-client/internal/adapters/transport"
	"distance-matrix-client/internal/config"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/ports"
	"fmt"
	"sync"
)

type (
	Config            = config.Config
	Options           = domain.Options
	Response          = domain.MatrixResponse
	Row               = domain.MatrixRow
	Element           = domain.MatrixElement
	APIRequestError   = domain.APIRequestError
	TransportError    = domain.TransportError
	StatusError       = domain.StatusError
	Callback          = distance.MatrixCallback
	Transport         = ports.Transport
	TransportResponse = ports.TransportResponse
	QuerySigner       = ports.QuerySigner
)

var (
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrDecodeResponse  = domain.ErrDecodeResponse
)

// DefaultBaseURL is the endpoint queries are sent to unless configured otherwise.
const DefaultBaseURL = distance.DefaultBaseURL

type Client struct {
	config   *domain.RequestConfig
	executor *distance.DMAClient
}

type settings struct {
	transport ports.Transport
	signer    ports.QuerySigner
	baseURL   string
}

type Option func(*settings)

// WithTransport replaces the net/http transport, e.g. with a test double.
func WithTransport(t Transport) Option {
	return func(s *settings) { s.transport = t }
}

func WithSigner(signer QuerySigner) Option {
	return func(s *settings) { s.signer = signer }
}

// WithBaseURL overrides the configured endpoint. The URL must end where the
// query string starts, normally with "?".
func WithBaseURL(baseURL string) Option {
	return func(s *settings) { s.baseURL = baseURL }
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns the process-wide client, created on first use from the
// config file and environment. Credentials select the auth shape: business
// auth when both client and signature are present, otherwise the API key.
func Default() *Client {
	defaultOnce.Do(func() {
		c, err := New(config.LoadConfigOrDefault(""))
		if err != nil {
			panic(fmt.Sprintf("distancematrix: build default client: %v", err))
		}
		defaultClient = c
	})
	return defaultClient
}

// New builds an independent client from cfg. A nil cfg uses the defaults
// with credentials read from the environment.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = &config.Config{Auth: config.AuthFromEnv()}
		config.SetDefaults(cfg)
	}

	s := settings{
		transport: transport.NewHTTPTransport(cfg.API.Timeout),
		signer:    signing.NewGoogleSigner(),
		baseURL:   cfg.API.BaseURL,
	}
	for _, opt := range opts {
		opt(&s)
	}

	executor, err := distance.NewDMAClient(s.transport, s.signer, distance.WithBaseURL(s.baseURL))
	if err != nil {
		return nil, fmt.Errorf("distancematrix: %w", err)
	}

	return &Client{
		config:   domain.NewRequestConfig(cfg.Auth.Auth()),
		executor: executor,
	}, nil
}

// Options returns a snapshot of the current option set.
func (c *Client) Options() Options { return c.config.Snapshot() }

// SetMode accepts driving, walking, bicycling or transit.
func (c *Client) SetMode(mode string) error { return c.config.SetMode(mode) }

func (c *Client) SetLanguage(language string) { c.config.SetLanguage(language) }

// SetAvoid accepts tolls, highways, ferries or indoor.
func (c *Client) SetAvoid(avoid string) error { return c.config.SetAvoid(avoid) }

// SetUnits accepts metric or imperial.
func (c *Client) SetUnits(units string) error { return c.config.SetUnits(units) }

func (c *Client) SetDepartureTime(value string) { c.config.SetDepartureTime(value) }

func (c *Client) SetArrivalTime(value string) { c.config.SetArrivalTime(value) }

// SetKey switches to key auth and drops client and signature.
func (c *Client) SetKey(key string) { c.config.SetKey(key) }

// SetClient switches to business auth. An existing signature is kept.
func (c *Client) SetClient(client string) { c.config.SetClient(client) }

// SetSignature switches to business auth. An existing client is kept.
func (c *Client) SetSignature(signature string) { c.config.SetSignature(signature) }

// SetTrafficModel, SetTransitMode and SetTransitRoutingPreference store their
// value unchecked; an unknown value is rejected by the API, not here.
func (c *Client) SetTrafficModel(value string) { c.config.SetTrafficModel(value) }

func (c *Client) SetTransitMode(value string) { c.config.SetTransitMode(value) }

func (c *Client) SetTransitRoutingPreference(value string) {
	c.config.SetTransitRoutingPreference(value)
}

// Reset restores origins, destinations, mode, units, language and avoid to
// their defaults. Credentials, departure and arrival time and the
// traffic and transit settings are kept.
func (c *Client) Reset() { c.config.Reset() }

// Matrix starts a query from every origin to every destination and returns
// at once. callback is called exactly once, on another goroutine, with the
// decoded response or with a *TransportError, *APIRequestError or an error
// wrapping ErrDecodeResponse.
//
// A missing callback, an empty location list or credentials that cannot
// sign the query fail synchronously with ErrInvalidArgument. callback is
// then never called and the latest locations are left unchanged.
func (c *Client) Matrix(ctx context.Context, origins, destinations []string, callback Callback) error {
	if callback == nil {
		return fmt.Errorf("%w: missing callback function", ErrInvalidArgument)
	}

	requestURL, err := c.begin(origins, destinations)
	if err != nil {
		return err
	}

	c.executor.FetchAsync(ctx, requestURL, callback)
	return nil
}

// Query is the blocking form of Matrix.
func (c *Client) Query(ctx context.Context, origins, destinations []string) (*Response, error) {
	requestURL, err := c.begin(origins, destinations)
	if err != nil {
		return nil, err
	}

	return c.executor.Fetch(ctx, requestURL)
}

// begin builds the signed request from a snapshot of the option set. Once
// that succeeds the locations are recorded as the latest ones.
func (c *Client) begin(origins, destinations []string) (string, error) {
	requestURL, err := c.executor.Prepare(c.config.Snapshot(), origins, destinations)
	if err != nil {
		return "", err
	}

	c.config.SetLocations(origins, destinations)
	return requestURL, nil
}
