package http

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/usecase"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestSearchFlightsRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SearchFlightsRequest
		wantErr bool
		field   string
	}{
		{"minimal", SearchFlightsRequest{Origin: "JFK", Destination: "LHR", Date: "2026-12-15"}, false, ""},
		{"free-form codes", SearchFlightsRequest{Origin: "NYCA", Destination: "LOND", Date: "2026-12-15"}, false, ""},
		{"same day return", SearchFlightsRequest{Origin: "JFK", Destination: "LHR", Date: "2026-12-15", ReturnDate: "2026-12-15"}, false, ""},
		{"max adults", SearchFlightsRequest{Origin: "JFK", Destination: "LHR", Date: "2026-12-15", Adults: 9}, false, ""},
		{"every cabin", SearchFlightsRequest{Origin: "JFK", Destination: "LHR", Date: "2026-12-15", CabinClass: "premium_economy"}, false, ""},
		{"bad return format", SearchFlightsRequest{Origin: "JFK", Destination: "LHR", Date: "2026-12-15", ReturnDate: "2026-12"}, true, "returnDate"},
		{"leap day", SearchFlightsRequest{Origin: "JFK", Destination: "LHR", Date: "2028-02-29"}, false, ""},
		{"not a leap year", SearchFlightsRequest{Origin: "JFK", Destination: "LHR", Date: "2027-02-29"}, true, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var errs *ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Contains(t, errs.ToMap(), tt.field)
		})
	}
}

func TestSearchFlightsRequest_Normalize(t *testing.T) {
	req := SearchFlightsRequest{
		Origin:      " jfk",
		Destination: "lhr ",
		Date:        " 2026-12-15 ",
		CabinClass:  " First ",
		SortBy:      "Duration",
		Filters:     &FilterDTO{Airlines: []string{"  British Airways "}},
	}

	require.NoError(t, req.Validate())

	assert.Equal(t, "JFK", req.Origin)
	assert.Equal(t, "LHR", req.Destination)
	assert.Equal(t, "2026-12-15", req.Date)
	assert.Equal(t, "first", req.CabinClass)
	assert.Equal(t, "duration", req.SortBy)
	assert.Equal(t, []string{"British Airways"}, req.Filters.Airlines)
}

func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("date", "date is required")
	errs.Add("date", "date must be in YYYY-MM-DD format")
	errs.Add("origin", "origin is required")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, "date is required", errs.Error())
	assert.Equal(t, map[string]string{
		"date":   "date is required",
		"origin": "origin is required",
	}, errs.ToMap())
}

func TestParseAirportQuery(t *testing.T) {
	q, err := ParseAirportQuery("  london ", "")
	require.NoError(t, err)
	assert.Equal(t, AirportQuery{Query: "london", Locale: DefaultLocale}, q)

	q, err = ParseAirportQuery("", "fr-FR")
	require.NoError(t, err)
	assert.Equal(t, AirportQuery{Query: "", Locale: "fr-FR"}, q)

	_, err = ParseAirportQuery(strings.Repeat("x", MaxQueryLength+1), "")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))

	_, err = ParseAirportQuery(strings.Repeat("x", MaxQueryLength), "")
	assert.NoError(t, err)
}

func TestToDomainParams(t *testing.T) {
	req := &SearchFlightsRequest{
		Origin:      "JFK",
		Destination: "LHR",
		Date:        "2026-12-15",
		ReturnDate:  "2026-12-22",
		Adults:      3,
		CabinClass:  "business",
	}

	assert.Equal(t, domain.FlightSearchParams{
		Origin:      "JFK",
		Destination: "LHR",
		Date:        "2026-12-15",
		ReturnDate:  "2026-12-22",
		Adults:      3,
		CabinClass:  domain.CabinBusiness,
	}, ToDomainParams(req))
}

func TestToDomainFilters(t *testing.T) {
	assert.Nil(t, ToDomainFilters(nil))
	assert.Nil(t, ToDomainFilters(&FilterDTO{}), "empty filters are dropped")

	f := ToDomainFilters(&FilterDTO{MaxPrice: floatPtr(500), MaxStops: intPtr(1), Airlines: []string{"BA"}})
	require.NotNil(t, f)
	assert.Equal(t, 500.0, *f.MaxPrice)
	assert.Equal(t, 1, *f.MaxStops)
	assert.Equal(t, []string{"BA"}, f.Airlines)
}

func TestToSearchOptions(t *testing.T) {
	opts := ToSearchOptions(&SearchFlightsRequest{SortBy: "departure", Filters: &FilterDTO{MaxStops: intPtr(0)}})

	assert.Equal(t, domain.SortByDeparture, opts.SortBy)
	require.NotNil(t, opts.Filters)
	assert.NoError(t, opts.Validate())
	assert.Equal(t, usecase.SearchOptions{}, ToSearchOptions(&SearchFlightsRequest{}))
}
