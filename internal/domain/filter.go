package domain

import "strings"

// SortOption defines the available orderings of flight results.
type SortOption string

// Available sort options.
const (
	// SortNone keeps the order the data source returned (default)
	SortNone SortOption = ""

	// SortByPrice sorts by price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by flight duration ascending (shortest first)
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by departure time ascending (earliest first)
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a known value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortNone, SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// FilterOptions defines optional filters applied after normalization.
type FilterOptions struct {
	// MaxPrice drops flights priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops drops flights with more stops than this value (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines keeps only flights whose airline name or flight-number prefix
	// matches one of these values, case-insensitively
	Airlines []string `json:"airlines,omitempty"`
}

// IsEmpty reports whether no filter is set.
func (f *FilterOptions) IsEmpty() bool {
	return f == nil || (f.MaxPrice == nil && f.MaxStops == nil && len(f.Airlines) == 0)
}

// MatchesFlight checks if a flight passes every filter criterion.
func (f *FilterOptions) MatchesFlight(flight FlightResult) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && flight.Price.Amount > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil && flight.Stops > *f.MaxStops {
		return false
	}

	if len(f.Airlines) > 0 {
		for _, airline := range f.Airlines {
			if matchesAirline(flight, airline) {
				return true
			}
		}
		return false
	}

	return true
}

// matchesAirline compares an airline filter value against the flight's
// display name, or against the carrier code prefix of its flight number when
// the value is a two-character code.
func matchesAirline(flight FlightResult, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	if strings.EqualFold(flight.Airline, value) {
		return true
	}
	if len(value) == 2 && len(flight.FlightNumber) >= 2 {
		return strings.EqualFold(flight.FlightNumber[:2], value)
	}
	return false
}
