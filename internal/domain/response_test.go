package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlightSearchResponse(t *testing.T) {
	params := FlightSearchParams{Origin: "JFK", Destination: "LHR", Date: "2025-12-15", Adults: 1, CabinClass: CabinEconomy}

	tests := []struct {
		name    string
		flights []FlightResult
		want    int
	}{
		{name: "nil flights", flights: nil, want: 0},
		{name: "empty flights", flights: []FlightResult{}, want: 0},
		{name: "two flights", flights: []FlightResult{{ID: "a"}, {ID: "b"}}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewFlightSearchResponse(params, tt.flights)

			require.NotNil(t, resp.Flights)
			assert.Len(t, resp.Flights, tt.want)
			assert.Equal(t, tt.want, resp.TotalResults)
			assert.Equal(t, params, resp.SearchParams)
		})
	}
}

func TestFlightSearchResponse_EmptyFlightsEncodeAsArray(t *testing.T) {
	resp := NewFlightSearchResponse(FlightSearchParams{Origin: "BOS", Destination: "MIA", Date: "2025-12-20"}, nil)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"flights": [],
		"totalResults": 0,
		"searchParams": {"origin": "BOS", "destination": "MIA", "date": "2025-12-20"}
	}`, string(raw))
}
