// Package integration provides helpers and integration tests for the flight finder.
// Integration tests drive the full echo router with the real middleware,
// use cases and in-memory store in front of a mock or configurable data source.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	httpAdapter "github.com/flight-search/flight-finder/internal/adapter/http"
	"github.com/flight-search/flight-finder/internal/adapter/http/middleware"
	"github.com/flight-search/flight-finder/internal/adapter/http/response"
	"github.com/flight-search/flight-finder/internal/adapter/provider/mockapi"
	"github.com/flight-search/flight-finder/internal/adapter/provider/skyscrapper"
	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/idgen"
	"github.com/flight-search/flight-finder/internal/infrastructure/kvstore"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
	"github.com/flight-search/flight-finder/internal/infrastructure/random"
	"github.com/flight-search/flight-finder/internal/usecase"
	"github.com/flight-search/flight-finder/test/testutil"
)

// Seed fixes the synthetic itineraries of the mock data source.
const Seed = 42

// ServerConfig tunes the stack built by NewTestServer.
type ServerConfig struct {
	// SearchTimeout bounds each data source call (0 uses one second)
	SearchTimeout time.Duration

	// Store backs sessions and recent searches (nil uses a fresh memory store)
	Store kvstore.Store

	// Normalizer converts payloads (nil uses a seeded normalizer)
	Normalizer *skyscrapper.Normalizer
}

// TestServer wraps an Echo instance wired like the production server.
type TestServer struct {
	Echo   *echo.Echo
	Source usecase.DataSource
	Store  kvstore.Store
	Logs   *testutil.LogBuffer
}

// NewTestServer builds the full HTTP stack in front of source.
func NewTestServer(t *testing.T, source usecase.DataSource, cfg ServerConfig) *TestServer {
	t.Helper()

	if cfg.SearchTimeout == 0 {
		cfg.SearchTimeout = time.Second
	}
	if cfg.Store == nil {
		cfg.Store = kvstore.NewMemory(nil)
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = skyscrapper.NewNormalizer(
			skyscrapper.WithRandom(random.NewSeeded(Seed)),
			skyscrapper.WithDefaultAircraft(skyscrapper.DefaultAircraft),
		)
	}

	log, logs := testutil.NewTestLogger()

	users, err := usecase.NewSeededUserDirectory(bcrypt.MinCost)
	require.NoError(t, err)

	search := usecase.NewSearchOrchestrator(source, cfg.Normalizer,
		usecase.SearchConfig{Timeout: cfg.SearchTimeout}, log)
	auth := usecase.NewAuthUseCase(users, cfg.Store, idgen.NewSequence(1000), usecase.AuthConfig{
		SessionTTL: time.Hour,
		BcryptCost: bcrypt.MinCost,
	}, log)
	recent := usecase.NewRecentSearches(cfg.Store, usecase.RecentConfig{}, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Pre(middleware.CORS([]string{"*"}))
	middleware.Setup(e, log)
	httpAdapter.RegisterRoutes(e, httpAdapter.Handlers{
		Flights:  httpAdapter.NewFlightHandler(search, recent, source.Name(), log),
		Airports: httpAdapter.NewAirportHandler(search, log),
		Auth:     httpAdapter.NewAuthHandler(auth, log),
	})

	return &TestServer{Echo: e, Source: source, Store: cfg.Store, Logs: logs}
}

// NewMockAPIServer builds the stack in front of the bundled mock data source
// with no simulated latency.
func NewMockAPIServer(t *testing.T) *TestServer {
	t.Helper()
	source, err := mockapi.New(mockapi.Config{Seed: Seed, Timezone: "UTC"})
	require.NoError(t, err)
	return NewTestServer(t, source, ServerConfig{})
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Token   string
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
// A string Body is sent verbatim; anything else is JSON-encoded.
func (ts *TestServer) Do(req Request) Response {
	var body []byte
	switch b := req.Body.(type) {
	case nil:
	case string:
		body = []byte(b)
	default:
		body, _ = json.Marshal(b)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.Token != "" {
		httpReq.Header.Set(echo.HeaderAuthorization, "Bearer "+req.Token)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Search posts a flight search, authenticated when token is set.
func (ts *TestServer) Search(body interface{}, token string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
		Token:  token,
	})
}

// Get issues a GET request, authenticated when token is set.
func (ts *TestServer) Get(path, token string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path, Token: token})
}

// SignIn signs in a seeded user and returns the session token.
func (ts *TestServer) SignIn(t *testing.T, uid string) string {
	t.Helper()
	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/sign-in",
		Body:   usecase.SignInInput{UID: uid, Password: usecase.SeedPassword},
	})
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	var session domain.Session
	require.NoError(t, resp.Decode(&session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// ParseSearchResponse parses the response body as a FlightSearchResponse.
func (r *Response) ParseSearchResponse() (*domain.FlightSearchResponse, error) {
	var resp domain.FlightSearchResponse
	if err := r.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an ErrorDetail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	if err := r.Decode(&errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin      string                 `json:"origin"`
	Destination string                 `json:"destination"`
	Date        string                 `json:"date"`
	ReturnDate  string                 `json:"returnDate,omitempty"`
	Adults      int                    `json:"adults,omitempty"`
	CabinClass  string                 `json:"cabinClass,omitempty"`
	Filters     map[string]interface{} `json:"filters,omitempty"`
	SortBy      string                 `json:"sortBy,omitempty"`
}

// DefaultSearchRequest returns a search for the canned JFK-LHR route.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:      "JFK",
		Destination: "LHR",
		Date:        testutil.FutureDate(30),
	}
}

// SyntheticSearchRequest returns a search for a route without canned data.
func SyntheticSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:      "BOS",
		Destination: "MIA",
		Date:        testutil.FutureDate(30),
	}
}

// NewOrchestrator builds a search orchestrator over source for use case tests.
func NewOrchestrator(source usecase.DataSource, timeout time.Duration) usecase.SearchOrchestrator {
	return usecase.NewSearchOrchestrator(source, nil, usecase.SearchConfig{Timeout: timeout}, logger.Nop())
}
