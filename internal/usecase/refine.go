package usecase

import (
	"sort"
	"time"

	"github.com/flight-search/flight-finder/internal/domain"
)

// applyFilters returns the flights matching opts. It never mutates its input.
func applyFilters(flights []domain.FlightResult, opts *domain.FilterOptions) []domain.FlightResult {
	if opts.IsEmpty() {
		return flights
	}

	result := make([]domain.FlightResult, 0, len(flights))
	for _, f := range flights {
		if opts.MatchesFlight(f) {
			result = append(result, f)
		}
	}
	return result
}

// sortFlights returns a sorted copy of flights. Ties keep data source order.
func sortFlights(flights []domain.FlightResult, sortBy domain.SortOption) []domain.FlightResult {
	if len(flights) <= 1 || sortBy == domain.SortNone {
		return flights
	}

	result := make([]domain.FlightResult, len(flights))
	copy(result, flights)

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Amount < result[j].Price.Amount
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return domain.DurationMinutes(result[i].Duration) < domain.DurationMinutes(result[j].Duration)
		})
	case domain.SortByDeparture:
		keys := make(map[string]time.Time, len(result))
		for _, f := range result {
			keys[f.Departure.Time] = parseTimestamp(f.Departure.Time)
		}
		sort.SliceStable(result, func(i, j int) bool {
			return departsBefore(keys[result[i].Departure.Time], keys[result[j].Departure.Time])
		})
	}

	return result
}

// departsBefore orders parsed timestamps, placing unparsable (zero) ones last.
func departsBefore(a, b time.Time) bool {
	if a.IsZero() {
		return false
	}
	if b.IsZero() {
		return true
	}
	return a.Before(b)
}

// parseTimestamp parses provider timestamps, which may omit the zone.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
