package domain

// FlightSearchResponse is the result of a flight search.
type FlightSearchResponse struct {
	// Flights contains the normalized (and optionally refined) results
	Flights []FlightResult `json:"flights"`

	// TotalResults is always len(Flights)
	TotalResults int `json:"totalResults"`

	// SearchParams echoes the search after defaults were applied
	SearchParams FlightSearchParams `json:"searchParams"`
}

// NewFlightSearchResponse builds a response whose TotalResults matches the flights returned.
func NewFlightSearchResponse(params FlightSearchParams, flights []FlightResult) *FlightSearchResponse {
	if flights == nil {
		flights = []FlightResult{}
	}
	return &FlightSearchResponse{
		Flights:      flights,
		TotalResults: len(flights),
		SearchParams: params,
	}
}
