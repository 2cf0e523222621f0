// Package mockapi is an in-process data source that answers with payloads in
// the Sky Scrapper shape: canned fixtures for known queries and routes, and
// synthetic itineraries for everything else.
package mockapi

import (
	"context"
	"strings"
	"time"

	"github.com/flight-search/flight-finder/internal/adapter/provider/skyscrapper"
	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
	"github.com/flight-search/flight-finder/internal/infrastructure/random"
	"github.com/flight-search/flight-finder/internal/infrastructure/timeutil"
)

// SourceName identifies the mock data source in logs and errors.
const SourceName = "mock"

// MaxAirportMatches caps the entries returned by a fuzzy airport search.
const MaxAirportMatches = 10

// Config holds the mock data source settings.
type Config struct {
	// Latency is waited before every response
	Latency time.Duration

	// Seed makes synthetic itineraries reproducible when non-zero
	Seed int64

	// Timezone lays out synthetic departure times ("" means UTC)
	Timezone string
}

// DefaultConfig returns the default mock settings.
func DefaultConfig() Config {
	return Config{
		Latency: 500 * time.Millisecond,
	}
}

// Source is the mock data source.
type Source struct {
	catalog   *Catalog
	generator *Generator
	clock     timeutil.Clock
	latency   time.Duration
	log       *logger.Logger
}

// Option configures a Source.
type Option func(*options)

type options struct {
	catalog *Catalog
	clock   timeutil.Clock
	rnd     random.Source
	log     *logger.Logger
}

// WithCatalog replaces the embedded fixture catalog.
func WithCatalog(c *Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithClock sets the clock used for payload timestamps and itinerary ids.
func WithClock(c timeutil.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithRandom sets the random source, overriding Config.Seed.
func WithRandom(src random.Source) Option {
	return func(o *options) { o.rnd = src }
}

// WithLogger sets the source logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// New creates a mock data source.
func New(cfg Config, opts ...Option) (*Source, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.catalog == nil {
		c, err := DefaultCatalog()
		if err != nil {
			return nil, err
		}
		o.catalog = c
	}
	if o.clock == nil {
		o.clock = timeutil.NewRealClock()
	}
	if o.rnd == nil {
		o.rnd = random.New(cfg.Seed)
	}
	if o.log == nil {
		o.log = logger.Nop()
	}

	loc, err := timeutil.GetLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	return &Source{
		catalog:   o.catalog,
		generator: NewGenerator(o.rnd, o.clock, loc),
		clock:     o.clock,
		latency:   cfg.Latency,
		log:       o.log.WithDataSource(SourceName),
	}, nil
}

// Name returns the data source name.
func (s *Source) Name() string {
	return SourceName
}

// SearchAirports answers from the catalog: an exact city key returns its
// stored payload, anything else a substring match over all entries.
func (s *Source) SearchAirports(ctx context.Context, query, _ string) (*skyscrapper.AirportPayload, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(query))
	if payload, ok := s.catalog.Airports(key); ok {
		return payload, nil
	}

	matches := s.catalog.Match(key, MaxAirportMatches)
	s.log.Debug().Str("query", key).Int("results", len(matches)).Msg("fuzzy airport match")

	return &skyscrapper.AirportPayload{
		Status:    true,
		Timestamp: timeutil.UnixMilli(s.clock),
		Data:      matches,
	}, nil
}

// SearchFlights returns the canned payload for a known route, or synthetic itineraries.
func (s *Source) SearchFlights(ctx context.Context, params domain.FlightSearchParams) (*skyscrapper.FlightPayload, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	route := params.RouteKey()
	if payload, ok := s.catalog.Route(route); ok {
		s.log.Debug().Str("route", route).Msg("serving canned route")
		return payload, nil
	}

	payload := s.generator.Flights(params)
	s.log.Debug().Str("route", route).Int("results", len(payload.Itineraries())).Msg("generated itineraries")
	return payload, nil
}

// PopularAirports returns the curated popular-airports payload.
func (s *Source) PopularAirports(ctx context.Context) (*skyscrapper.AirportPayload, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Popular(), nil
}

// wait simulates network latency. Cancellation of ctx is the only failure.
func (s *Source) wait(ctx context.Context) error {
	if s.latency <= 0 {
		if err := ctx.Err(); err != nil {
			return domain.NewDataSourceError(SourceName, err)
		}
		return nil
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return domain.NewDataSourceError(SourceName, ctx.Err())
	case <-timer.C:
		return nil
	}
}
