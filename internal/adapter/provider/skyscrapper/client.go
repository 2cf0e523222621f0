package skyscrapper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
	"github.com/flight-search/flight-finder/internal/infrastructure/retry"
)

// SourceName identifies the live provider in logs and errors.
const SourceName = "skyscrapper"

// Fixed query values sent with every flight search.
const (
	queryCurrency = "USD"
	queryMarket   = "US"
	queryLocale   = "en-US"
)

// maxErrorBody caps how much of a failed response body is kept in the error.
const maxErrorBody = 512

// ClientConfig holds the live provider settings.
type ClientConfig struct {
	// BaseURL is the provider root (e.g., "https://sky-scrapper.p.rapidapi.com")
	BaseURL string

	// APIKey is sent as X-RapidAPI-Key
	APIKey string

	// Host is sent as X-RapidAPI-Host
	Host string

	// Timeout bounds a single HTTP attempt
	Timeout time.Duration

	// Retry controls retries of transport errors and 5xx responses
	Retry retry.Policy
}

// DefaultClientConfig returns the provider settings without credentials.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: "https://sky-scrapper.p.rapidapi.com",
		Host:    "sky-scrapper.p.rapidapi.com",
		Timeout: 10 * time.Second,
		Retry:   retry.ProviderPolicy,
	}
}

// Client is the live Sky Scrapper data source.
type Client struct {
	cfg        ClientConfig
	httpClient *http.Client
	popular    *AirportPayload
	log        *logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithPopularAirports sets the payload returned by PopularAirports.
func WithPopularAirports(p *AirportPayload) ClientOption {
	return func(c *Client) {
		if p != nil {
			c.popular = p
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(l *logger.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient creates a live provider client.
func NewClient(cfg ClientConfig, opts ...ClientOption) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		popular:    DefaultPopularAirports(),
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithDataSource(SourceName)
	return c
}

// Name returns the data source name.
func (c *Client) Name() string {
	return SourceName
}

// SearchAirports calls the provider airport search.
func (c *Client) SearchAirports(ctx context.Context, query, locale string) (*AirportPayload, error) {
	q := url.Values{}
	q.Set("query", query)
	if locale != "" {
		q.Set("locale", locale)
	}
	return get[AirportPayload](ctx, c, "/api/v1/flights/searchAirport", q)
}

// SearchFlights calls the provider flight search.
func (c *Client) SearchFlights(ctx context.Context, params domain.FlightSearchParams) (*FlightPayload, error) {
	adults := params.Adults
	if adults <= 0 {
		adults = 1
	}

	q := url.Values{}
	q.Set("originSkyId", params.Origin)
	q.Set("destinationSkyId", params.Destination)
	q.Set("date", params.Date)
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	q.Set("adults", strconv.Itoa(adults))
	q.Set("cabinClass", string(params.CabinClass.OrDefault()))
	q.Set("currency", queryCurrency)
	q.Set("market", queryMarket)
	q.Set("locale", queryLocale)

	return get[FlightPayload](ctx, c, "/api/v1/flights/searchFlights", q)
}

// PopularAirports returns the configured static payload. The provider has no such endpoint.
func (c *Client) PopularAirports(ctx context.Context) (*AirportPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewDataSourceError(SourceName, err)
	}
	return c.popular, nil
}

// get issues a GET with retries and decodes the JSON body into T.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	endpoint := c.cfg.BaseURL + path + "?" + query.Encode()

	policy := c.cfg.Retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		c.log.Warn().
			Err(err).
			Str("path", path).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("retrying provider request")
	})

	return retry.Do(ctx, policy, func(ctx context.Context) (*T, error) {
		return fetch[T](ctx, c, endpoint)
	})
}

func fetch[T any](ctx context.Context, c *Client, endpoint string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewDataSourceError(SourceName, fmt.Errorf("build request: %w", err)))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.Host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, retry.NewPermanent(domain.NewDataSourceError(SourceName, ctx.Err()))
		}
		return nil, domain.NewRetryableDataSourceError(SourceName, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &StatusError{Code: resp.StatusCode, Body: string(body)}
		if statusErr.Temporary() {
			return nil, domain.NewRetryableDataSourceError(SourceName, statusErr)
		}
		return nil, retry.NewPermanent(domain.NewDataSourceError(SourceName, statusErr))
	}

	var payload T
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, retry.NewPermanent(domain.NewDataSourceError(SourceName, fmt.Errorf("decode response: %w", err)))
	}
	return &payload, nil
}

// StatusError reports a non-200 provider response.
type StatusError struct {
	Code int
	Body string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.Code)
}

// Temporary reports whether the status is a server-side failure worth retrying.
func (e *StatusError) Temporary() bool {
	return e.Code >= http.StatusInternalServerError
}

// AsStatusError extracts a StatusError from err.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	ok := errors.As(err, &se)
	return se, ok
}
