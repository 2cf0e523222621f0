package integration

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-finder/internal/adapter/http/middleware"
	"github.com/flight-search/flight-finder/internal/adapter/http/response"
	"github.com/flight-search/flight-finder/internal/adapter/provider/mockapi"
	"github.com/flight-search/flight-finder/internal/adapter/provider/skyscrapper"
	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/test/mock"
	"github.com/flight-search/flight-finder/test/testutil"
)

func TestHandler_SearchFlights_CannedRoute(t *testing.T) {
	ts := NewMockAPIServer(t)
	req := DefaultSearchRequest()

	resp := ts.Search(req, "")

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	result, err := resp.ParseSearchResponse()
	require.NoError(t, err)

	require.Len(t, result.Flights, 4)
	assert.Equal(t, 4, result.TotalResults)
	assert.Equal(t, "JFK-LHR-BA-0800", result.Flights[0].ID)
	assert.Equal(t, "Boeing 777-300ER", result.Flights[0].Aircraft)
	assert.Equal(t, skyscrapper.DefaultAircraft, result.Flights[1].Aircraft)

	assert.Equal(t, "JFK", result.SearchParams.Origin)
	assert.Equal(t, "LHR", result.SearchParams.Destination)
	assert.Equal(t, req.Date, result.SearchParams.Date)
	assert.Equal(t, 1, result.SearchParams.Adults)
	assert.Equal(t, domain.CabinEconomy, result.SearchParams.CabinClass)

	for _, f := range result.Flights {
		assert.Equal(t, domain.CabinEconomy, f.CabinClass)
		assert.NotEmpty(t, f.Airline)
		assert.NotEmpty(t, f.FlightNumber)
		assert.GreaterOrEqual(t, f.Price.Amount, 0.0)
	}
}

func TestHandler_SearchFlights_SyntheticRoute(t *testing.T) {
	ts := NewMockAPIServer(t)
	req := SyntheticSearchRequest()
	req.CabinClass = "business"

	resp := ts.Search(req, "")

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	result, err := resp.ParseSearchResponse()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(result.Flights), mockapi.MinItineraries)
	require.LessOrEqual(t, len(result.Flights), mockapi.MaxItineraries)
	assert.Equal(t, len(result.Flights), result.TotalResults)

	ids := make(map[string]bool)
	for _, f := range result.Flights {
		assert.Equal(t, "BOS", f.Departure.Airport)
		assert.Equal(t, "MIA", f.Arrival.Airport)
		assert.Equal(t, req.Date, f.Departure.Time[:10])
		assert.Equal(t, domain.CabinBusiness, f.CabinClass)
		assert.GreaterOrEqual(t, f.Price.Amount, float64(mockapi.MinPrice))
		assert.Less(t, f.Price.Amount, float64(mockapi.MaxPrice))
		assert.False(t, ids[f.ID], "duplicate id %s", f.ID)
		ids[f.ID] = true
	}
}

func TestHandler_SearchFlights_LowercaseCodes(t *testing.T) {
	ts := NewMockAPIServer(t)
	req := DefaultSearchRequest()
	req.Origin = " jfk "
	req.Destination = "lhr"

	resp := ts.Search(req, "")

	require.Equal(t, http.StatusOK, resp.Code)
	result, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	assert.Equal(t, "JFK", result.SearchParams.Origin)
	assert.Len(t, result.Flights, 4)
}

func TestHandler_SearchFlights_SortAndFilter(t *testing.T) {
	ts := NewMockAPIServer(t)

	t.Run("sort by price", func(t *testing.T) {
		req := SyntheticSearchRequest()
		req.SortBy = "price"

		resp := ts.Search(req, "")
		require.Equal(t, http.StatusOK, resp.Code)
		result, err := resp.ParseSearchResponse()
		require.NoError(t, err)

		assert.True(t, sort.SliceIsSorted(result.Flights, func(i, j int) bool {
			return result.Flights[i].Price.Amount < result.Flights[j].Price.Amount
		}))
	})

	t.Run("direct only", func(t *testing.T) {
		req := SyntheticSearchRequest()
		req.Filters = map[string]interface{}{"maxStops": 0}

		resp := ts.Search(req, "")
		require.Equal(t, http.StatusOK, resp.Code)
		result, err := resp.ParseSearchResponse()
		require.NoError(t, err)

		for _, f := range result.Flights {
			assert.Equal(t, 0, f.Stops)
		}
		assert.Equal(t, len(result.Flights), result.TotalResults)
	})

	t.Run("max price", func(t *testing.T) {
		req := SyntheticSearchRequest()
		req.Filters = map[string]interface{}{"maxPrice": 500}

		resp := ts.Search(req, "")
		require.Equal(t, http.StatusOK, resp.Code)
		result, err := resp.ParseSearchResponse()
		require.NoError(t, err)

		for _, f := range result.Flights {
			assert.LessOrEqual(t, f.Price.Amount, 500.0)
		}
	})
}

func TestHandler_SearchFlights_ConfiguredSource(t *testing.T) {
	date := testutil.FutureDate(10)
	source := mock.NewDataSource("stub").
		WithFlights(mock.SampleFlights("JFK", "LHR", date, 4))
	ts := NewTestServer(t, source, ServerConfig{})

	resp := ts.Search(SearchRequestBody{
		Origin:      "JFK",
		Destination: "LHR",
		Date:        date,
		Adults:      2,
		SortBy:      "duration",
		Filters:     map[string]interface{}{"airlines": []string{"BA", "Virgin Atlantic"}},
	}, "")

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	result, err := resp.ParseSearchResponse()
	require.NoError(t, err)

	// itineraries 0 and 3 are BA, 1 is VS
	require.Len(t, result.Flights, 3)
	assert.Equal(t, "7h 0m", result.Flights[0].Duration)
	assert.Equal(t, "BA", result.Flights[0].FlightNumber[:2])
	assert.Equal(t, 2, result.SearchParams.Adults)

	params, ok := source.LastParams()
	require.True(t, ok)
	assert.Equal(t, 2, params.Adults)
	assert.Equal(t, domain.CabinEconomy, params.CabinClass)
	assert.Equal(t, 1, source.CallCount(mock.MethodSearchFlights))
}

func TestHandler_ValidationErrors(t *testing.T) {
	ts := NewMockAPIServer(t)
	future := testutil.FutureDate(30)

	tests := []struct {
		name      string
		body      interface{}
		wantField string
	}{
		{
			name:      "missing origin",
			body:      SearchRequestBody{Destination: "LHR", Date: future},
			wantField: "origin",
		},
		{
			name:      "missing destination",
			body:      SearchRequestBody{Origin: "JFK", Date: future},
			wantField: "destination",
		},
		{
			name:      "bad date format",
			body:      SearchRequestBody{Origin: "JFK", Destination: "LHR", Date: "15-12-2025"},
			wantField: "date",
		},
		{
			name:      "return before departure",
			body:      SearchRequestBody{Origin: "JFK", Destination: "LHR", Date: future, ReturnDate: "2000-01-01"},
			wantField: "returnDate",
		},
		{
			name:      "too many adults",
			body:      SearchRequestBody{Origin: "JFK", Destination: "LHR", Date: future, Adults: 10},
			wantField: "adults",
		},
		{
			name:      "unknown cabin class",
			body:      SearchRequestBody{Origin: "JFK", Destination: "LHR", Date: future, CabinClass: "luxury"},
			wantField: "cabinClass",
		},
		{
			name:      "unknown sort",
			body:      SearchRequestBody{Origin: "JFK", Destination: "LHR", Date: future, SortBy: "rating"},
			wantField: "sortBy",
		},
		{
			name: "negative max price",
			body: SearchRequestBody{Origin: "JFK", Destination: "LHR", Date: future,
				Filters: map[string]interface{}{"maxPrice": -1}},
			wantField: "filters.maxPrice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Search(tt.body, "")

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			errResp, err := resp.ParseError()
			require.NoError(t, err)
			assert.Equal(t, response.CodeValidationError, errResp.Code)
			assert.Contains(t, errResp.Details, tt.wantField)
		})
	}
}

func TestHandler_ValidationCollectsAllFields(t *testing.T) {
	ts := NewMockAPIServer(t)

	resp := ts.Search(map[string]interface{}{}, "")

	require.Equal(t, http.StatusBadRequest, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Contains(t, errResp.Details, "origin")
	assert.Contains(t, errResp.Details, "destination")
	assert.Contains(t, errResp.Details, "date")
}

func TestHandler_InvalidJSON(t *testing.T) {
	ts := NewMockAPIServer(t)

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   `{"origin": "JFK",`,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeInvalidRequest, errResp.Code)
}

func TestHandler_DataSourceUnavailable(t *testing.T) {
	source := mock.NewDataSource("stub").WithError(errors.New("connection refused"))
	ts := NewTestServer(t, source, ServerConfig{})

	resp := ts.Search(DefaultSearchRequest(), "")

	assert.Equal(t, http.StatusBadGateway, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeDataSourceUnavailable, errResp.Code)
	assert.NotContains(t, string(resp.Body), "connection refused")
}

func TestHandler_DataSourcePanic(t *testing.T) {
	source := mock.NewDataSource("stub").WithPanic("nil map")
	ts := NewTestServer(t, source, ServerConfig{})

	resp := ts.Search(DefaultSearchRequest(), "")

	assert.Equal(t, http.StatusBadGateway, resp.Code)
	_, ok := ts.Logs.Find("data source panicked")
	assert.True(t, ok)
}

func TestHandler_Timeout(t *testing.T) {
	source := mock.NewDataSource("slow").
		WithDelay(500 * time.Millisecond).
		WithFlights(mock.SampleFlights("JFK", "LHR", testutil.FutureDate(30), 2))
	ts := NewTestServer(t, source, ServerConfig{SearchTimeout: 50 * time.Millisecond})

	start := time.Now()
	resp := ts.Search(DefaultSearchRequest(), "")

	assert.Less(t, time.Since(start), 400*time.Millisecond)
	assert.Equal(t, http.StatusGatewayTimeout, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeTimeout, errResp.Code)
}

func TestHandler_Airports(t *testing.T) {
	ts := NewMockAPIServer(t)

	t.Run("exact city", func(t *testing.T) {
		resp := ts.Get("/api/v1/airports/search?query=new%20york", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var airports []domain.Airport
		require.NoError(t, resp.Decode(&airports))
		require.Len(t, airports, 4)
		assert.Equal(t, "JFK", airports[1].Code)
		assert.Equal(t, "New", airports[1].City)
	})

	t.Run("no match is an empty list", func(t *testing.T) {
		resp := ts.Get("/api/v1/airports/search?query=zzzz", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `[]`, string(resp.Body))
	})

	t.Run("query too long", func(t *testing.T) {
		resp := ts.Get("/api/v1/airports/search?query="+strings.Repeat("a", 101), "")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("popular", func(t *testing.T) {
		resp := ts.Get("/api/v1/airports/popular", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var airports []domain.Airport
		require.NoError(t, resp.Decode(&airports))
		require.Len(t, airports, 8)
		assert.Equal(t, "JFK", airports[0].Code)
	})
}

func TestHandler_AirportSearchFallsBackToPopular(t *testing.T) {
	source := mock.NewDataSource("stub").
		WithMethodError(mock.MethodSearchAirports, errors.New("rate limited")).
		WithPopular(mock.SampleAirports("Springfield", "SPI", "SGF"))
	ts := NewTestServer(t, source, ServerConfig{})

	resp := ts.Get("/api/v1/airports/search?query=spring", "")

	require.Equal(t, http.StatusOK, resp.Code)
	var airports []domain.Airport
	require.NoError(t, resp.Decode(&airports))
	require.Len(t, airports, 2)
	assert.Equal(t, "SPI", airports[0].Code)
	assert.Equal(t, "Springfield", airports[0].City)
	assert.Equal(t, 1, source.CallCount(mock.MethodPopularAirports))
}

func TestHandler_AuthFlowRecordsRecentSearches(t *testing.T) {
	ts := NewMockAPIServer(t)
	token := ts.SignIn(t, "john_doe")

	me := ts.Get("/api/v1/auth/me", token)
	require.Equal(t, http.StatusOK, me.Code)
	var user domain.User
	require.NoError(t, me.Decode(&user))
	assert.Equal(t, "john_doe", user.UserID)

	first := DefaultSearchRequest()
	second := SyntheticSearchRequest()
	require.Equal(t, http.StatusOK, ts.Search(first, token).Code)
	require.Equal(t, http.StatusOK, ts.Search(second, token).Code)
	require.Equal(t, http.StatusOK, ts.Search(first, token).Code)

	recent := ts.Get("/api/v1/flights/recent", token)
	require.Equal(t, http.StatusOK, recent.Code)
	var searches []domain.FlightSearchParams
	require.NoError(t, recent.Decode(&searches))
	require.Len(t, searches, 2, "repeated trips are kept once")
	assert.Equal(t, "JFK", searches[0].Origin)
	assert.Equal(t, "BOS", searches[1].Origin)

	logout := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/auth/logout", Token: token})
	require.Equal(t, http.StatusOK, logout.Code)

	after := ts.Get("/api/v1/auth/me", token)
	assert.Equal(t, http.StatusUnauthorized, after.Code)
}

func TestHandler_RecentSearchesLimit(t *testing.T) {
	ts := NewMockAPIServer(t)
	token := ts.SignIn(t, "jane@example.com")

	for day := 1; day <= 7; day++ {
		req := SyntheticSearchRequest()
		req.Date = testutil.FutureDate(day)
		require.Equal(t, http.StatusOK, ts.Search(req, token).Code)
	}

	var searches []domain.FlightSearchParams
	resp := ts.Get("/api/v1/flights/recent", token)
	require.NoError(t, resp.Decode(&searches))
	require.Len(t, searches, 5)
	assert.Equal(t, testutil.FutureDate(7), searches[0].Date)
	assert.Equal(t, testutil.FutureDate(3), searches[4].Date)
}

func TestHandler_AnonymousSearchIsNotRecorded(t *testing.T) {
	ts := NewMockAPIServer(t)

	require.Equal(t, http.StatusOK, ts.Search(DefaultSearchRequest(), "").Code)
	require.Equal(t, http.StatusOK, ts.Search(DefaultSearchRequest(), "not-a-token").Code)

	token := ts.SignIn(t, "john_doe")
	var searches []domain.FlightSearchParams
	resp := ts.Get("/api/v1/flights/recent", token)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, resp.Decode(&searches))
	assert.Empty(t, searches)
}

func TestHandler_RecentRequiresToken(t *testing.T) {
	ts := NewMockAPIServer(t)

	resp := ts.Get("/api/v1/flights/recent", "")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.MsgMissingToken, errResp.Message)
}

func TestHandler_SignUp(t *testing.T) {
	ts := NewMockAPIServer(t)
	form := map[string]string{
		"user_id":         "ada",
		"name":            "Ada Lovelace",
		"email":           "ada@example.com",
		"password":        "engine1",
		"confirmPassword": "engine1",
	}

	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/auth/sign-up", Body: form})
	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Body))
	var session domain.Session
	require.NoError(t, resp.Decode(&session))
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "ada", session.User.UserID)

	dup := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/auth/sign-up", Body: form})
	assert.Equal(t, http.StatusConflict, dup.Code)

	signIn := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/sign-in",
		Body:   map[string]string{"uid": "ADA@example.com", "password": "engine1"},
	})
	assert.Equal(t, http.StatusOK, signIn.Code)
}

func TestHandler_HealthCheck(t *testing.T) {
	ts := NewMockAPIServer(t)

	resp := ts.Get("/health", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok","dataSource":"mock"}`, string(resp.Body))
}

func TestHandler_CabinClasses(t *testing.T) {
	ts := NewMockAPIServer(t)

	resp := ts.Get("/api/v1/flights/cabin-classes", "")

	require.Equal(t, http.StatusOK, resp.Code)
	var options []domain.CabinClassOption
	require.NoError(t, resp.Decode(&options))
	assert.Equal(t, domain.CabinClasses, options)
}

func TestHandler_RequestIDAndCORS(t *testing.T) {
	ts := NewMockAPIServer(t)

	resp := ts.Do(Request{
		Method:  http.MethodGet,
		Path:    "/health",
		Headers: map[string]string{middleware.RequestIDHeader: "req-123", "Origin": "https://app.example.com"},
	})
	assert.Equal(t, "req-123", resp.Headers.Get(middleware.RequestIDHeader))
	assert.Equal(t, "*", resp.Headers.Get("Access-Control-Allow-Origin"))

	entry, ok := ts.Logs.Find("HTTP request")
	require.True(t, ok)
	assert.Equal(t, "req-123", entry["request_id"])

	preflight := ts.Do(Request{
		Method: http.MethodOptions,
		Path:   "/api/v1/flights/search",
		Headers: map[string]string{
			"Origin":                        "https://app.example.com",
			"Access-Control-Request-Method": http.MethodPost,
		},
	})
	assert.Equal(t, http.StatusNoContent, preflight.Code)
}
