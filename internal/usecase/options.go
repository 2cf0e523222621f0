// Package usecase contains the application logic of the flight finder:
// the search orchestrator, authentication and recent searches.
package usecase

import (
	"fmt"

	"github.com/flight-search/flight-finder/internal/domain"
)

// SearchOptions contains optional refinements of a flight search.
type SearchOptions struct {
	// Filters drops flights that do not match (nil keeps everything)
	Filters *domain.FilterOptions

	// SortBy orders the results (default: data source order)
	SortBy domain.SortOption
}

// DefaultSearchOptions returns SearchOptions that leave results untouched.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{}
}

// Validate checks the refinement options.
func (o SearchOptions) Validate() error {
	if !o.SortBy.IsValid() {
		return fmt.Errorf("%w: sortBy must be one of: price, duration, departure; got %q",
			domain.ErrInvalidRequest, o.SortBy)
	}
	if o.Filters == nil {
		return nil
	}
	if o.Filters.MaxPrice != nil && *o.Filters.MaxPrice < 0 {
		return fmt.Errorf("%w: filters.maxPrice must not be negative", domain.ErrInvalidRequest)
	}
	if o.Filters.MaxStops != nil && *o.Filters.MaxStops < 0 {
		return fmt.Errorf("%w: filters.maxStops must not be negative", domain.ErrInvalidRequest)
	}
	return nil
}
