package skyscrapper

// popularAirports is the curated list served when the provider has no popular endpoint.
var popularAirports = []struct {
	code, title, country string
}{
	{"JFK", "New York John F. Kennedy", "United States"},
	{"LAX", "Los Angeles International", "United States"},
	{"ORD", "Chicago O'Hare International", "United States"},
	{"DFW", "Dallas Fort Worth International", "United States"},
	{"ATL", "Atlanta Hartsfield-Jackson International", "United States"},
	{"LHR", "London Heathrow", "United Kingdom"},
	{"CDG", "Paris Charles de Gaulle", "France"},
	{"NRT", "Tokyo Narita International", "Japan"},
}

// DefaultPopularAirports builds the curated popular-airports payload.
// Each call returns a fresh payload.
func DefaultPopularAirports() *AirportPayload {
	entries := make(List[AirportEntry], 0, len(popularAirports))
	for _, a := range popularAirports {
		entries = append(entries, &AirportEntry{
			Navigation: &Navigation{
				EntityType:    "AIRPORT",
				LocalizedName: a.title,
				RelevantFlightParams: &RelevantFlightParams{
					SkyID:           a.code,
					FlightPlaceType: "AIRPORT",
					LocalizedName:   a.title,
				},
			},
			Presentation: &Presentation{
				Title:           a.title,
				Subtitle:        a.country,
				SuggestionTitle: a.title + " (" + a.code + ")",
			},
		})
	}
	return &AirportPayload{Status: true, Data: entries}
}
