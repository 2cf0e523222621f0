package usecase

import (
	"context"

	"github.com/flight-search/flight-finder/internal/adapter/provider/skyscrapper"
	"github.com/flight-search/flight-finder/internal/domain"
)

//go:generate mockgen -source=datasource.go -destination=mock_datasource.go -package=usecase

// DataSource answers airport and flight queries with provider-shaped payloads.
// The mock and live sources both implement it.
type DataSource interface {
	// Name returns the data source identifier used in logs and errors.
	Name() string

	// SearchAirports returns airports and cities matching a free-text query.
	SearchAirports(ctx context.Context, query, locale string) (*skyscrapper.AirportPayload, error)

	// SearchFlights returns itineraries for a route and date.
	SearchFlights(ctx context.Context, params domain.FlightSearchParams) (*skyscrapper.FlightPayload, error)

	// PopularAirports returns the curated popular-airports list.
	PopularAirports(ctx context.Context) (*skyscrapper.AirportPayload, error)
}
