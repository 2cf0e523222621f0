package http

import (
	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/usecase"
)

// ToDomainParams converts a SearchFlightsRequest to domain.FlightSearchParams.
func ToDomainParams(req *SearchFlightsRequest) domain.FlightSearchParams {
	return domain.FlightSearchParams{
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.Date,
		ReturnDate:  req.ReturnDate,
		Adults:      req.Adults,
		CabinClass:  domain.CabinClass(req.CabinClass),
	}
}

// ToDomainFilters converts a FilterDTO to domain.FilterOptions.
func ToDomainFilters(dto *FilterDTO) *domain.FilterOptions {
	if dto == nil {
		return nil
	}
	opts := &domain.FilterOptions{
		MaxPrice: dto.MaxPrice,
		MaxStops: dto.MaxStops,
		Airlines: dto.Airlines,
	}
	if opts.IsEmpty() {
		return nil
	}
	return opts
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		Filters: ToDomainFilters(req.Filters),
		SortBy:  domain.SortOption(req.SortBy),
	}
}
