package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/flight-search/flight-finder/internal/adapter/provider/skyscrapper"
	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
)

//go:generate mockgen -source=search.go -destination=mock_search.go -package=usecase

// DefaultSearchTimeout bounds a single data source call.
const DefaultSearchTimeout = 10 * time.Second

// SearchOrchestrator combines a data source with the normalizer.
type SearchOrchestrator interface {
	// SearchAirportsByQuery returns airports matching query.
	// When the data source fails it falls back to the popular airports.
	SearchAirportsByQuery(ctx context.Context, query, locale string) ([]domain.Airport, error)

	// SearchFlights validates params, queries the data source and returns
	// normalized, optionally filtered and sorted flights.
	SearchFlights(ctx context.Context, params domain.FlightSearchParams, opts SearchOptions) (*domain.FlightSearchResponse, error)

	// PopularAirports returns the curated popular airports.
	PopularAirports(ctx context.Context) ([]domain.Airport, error)
}

// SearchConfig contains configuration options for the orchestrator.
type SearchConfig struct {
	// Timeout bounds each data source call (0 means no extra bound)
	Timeout time.Duration
}

// DefaultSearchConfig returns the default configuration.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{Timeout: DefaultSearchTimeout}
}

type searchOrchestrator struct {
	source     DataSource
	normalizer *skyscrapper.Normalizer
	timeout    time.Duration
	log        *logger.Logger
}

// NewSearchOrchestrator creates a SearchOrchestrator.
// A nil normalizer uses one without a default aircraft; a nil logger discards output.
func NewSearchOrchestrator(source DataSource, normalizer *skyscrapper.Normalizer, cfg SearchConfig, log *logger.Logger) SearchOrchestrator {
	if normalizer == nil {
		normalizer = skyscrapper.NewNormalizer()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &searchOrchestrator{
		source:     source,
		normalizer: normalizer,
		timeout:    cfg.Timeout,
		log:        log.WithComponent("search").WithDataSource(source.Name()),
	}
}

func (o *searchOrchestrator) SearchAirportsByQuery(ctx context.Context, query, locale string) ([]domain.Airport, error) {
	payload, err := call(ctx, o, func(ctx context.Context) (*skyscrapper.AirportPayload, error) {
		return o.source.SearchAirports(ctx, query, locale)
	})
	if err == nil {
		airports := o.normalizer.NormalizeAirports(payload)
		o.log.Debug().Str("query", query).Int("results", len(airports)).Msg("airport search")
		return airports, nil
	}

	o.log.Warn().Err(err).Str("query", query).Msg("airport search failed, falling back to popular airports")

	popular, popErr := o.PopularAirports(ctx)
	if popErr != nil {
		return nil, fmt.Errorf("search airports %q: %w", query, popErr)
	}
	return popular, nil
}

func (o *searchOrchestrator) SearchFlights(ctx context.Context, params domain.FlightSearchParams, opts SearchOptions) (*domain.FlightSearchResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	params.SetDefaults()

	start := time.Now()
	payload, err := call(ctx, o, func(ctx context.Context) (*skyscrapper.FlightPayload, error) {
		return o.source.SearchFlights(ctx, params)
	})
	if err != nil {
		o.log.Error().Err(err).Str("route", params.RouteKey()).Msg("flight search failed")
		return nil, err
	}

	flights := o.normalizer.NormalizeFlights(payload, params)
	flights = sortFlights(applyFilters(flights, opts.Filters), opts.SortBy)

	o.log.Info().
		Str("route", params.RouteKey()).
		Str("date", params.Date).
		Int("results", len(flights)).
		Dur("took", time.Since(start)).
		Msg("flight search")

	return domain.NewFlightSearchResponse(params, flights), nil
}

func (o *searchOrchestrator) PopularAirports(ctx context.Context) ([]domain.Airport, error) {
	payload, err := call(ctx, o, o.source.PopularAirports)
	if err != nil {
		return nil, err
	}
	return o.normalizer.NormalizeAirports(payload), nil
}

// call runs fn under the configured timeout, turns panics into errors and
// wraps every failure as a DataSourceError.
func call[T any](ctx context.Context, o *searchOrchestrator, fn func(context.Context) (T, error)) (result T, err error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			o.log.Error().Interface("panic", r).Msg("data source panicked")
			err = domain.NewDataSourceError(o.source.Name(), fmt.Errorf("panic: %v", r))
		}
	}()

	result, err = fn(ctx)
	if err != nil && !domain.IsDataSourceFailure(err) {
		err = domain.NewDataSourceError(o.source.Name(), err)
	}
	return result, err
}

var _ SearchOrchestrator = (*searchOrchestrator)(nil)
