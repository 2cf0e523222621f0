// Package mock provides test doubles for the flight finder.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific payloads).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/flight-finder/internal/adapter/provider/skyscrapper"
	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/usecase"
)

// Method names accepted by CallCount.
const (
	MethodSearchAirports  = "SearchAirports"
	MethodSearchFlights   = "SearchFlights"
	MethodPopularAirports = "PopularAirports"
)

// DataSource is a configurable implementation of usecase.DataSource.
// Errors can be set per method so a test can fail flight searches while
// the popular-airports fallback keeps answering.
type DataSource struct {
	name     string
	airports *skyscrapper.AirportPayload
	popular  *skyscrapper.AirportPayload
	flights  *skyscrapper.FlightPayload
	errs     map[string]error
	delay    time.Duration
	panicMsg string

	mu     sync.Mutex
	calls  map[string]int
	params []domain.FlightSearchParams
}

// NewDataSource creates a mock data source with the given name.
// The source is configured using the builder pattern methods.
func NewDataSource(name string) *DataSource {
	return &DataSource{
		name:  name,
		errs:  make(map[string]error),
		calls: make(map[string]int),
	}
}

// WithAirports configures the payload returned by SearchAirports.
func (d *DataSource) WithAirports(payload *skyscrapper.AirportPayload) *DataSource {
	d.airports = payload
	return d
}

// WithPopular configures the payload returned by PopularAirports.
func (d *DataSource) WithPopular(payload *skyscrapper.AirportPayload) *DataSource {
	d.popular = payload
	return d
}

// WithFlights configures the payload returned by SearchFlights.
func (d *DataSource) WithFlights(payload *skyscrapper.FlightPayload) *DataSource {
	d.flights = payload
	return d
}

// WithError makes every method return err.
func (d *DataSource) WithError(err error) *DataSource {
	for _, m := range []string{MethodSearchAirports, MethodSearchFlights, MethodPopularAirports} {
		d.errs[m] = err
	}
	return d
}

// WithMethodError makes a single method return err.
func (d *DataSource) WithMethodError(method string, err error) *DataSource {
	d.errs[method] = err
	return d
}

// WithDelay configures the source to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (d *DataSource) WithDelay(delay time.Duration) *DataSource {
	d.delay = delay
	return d
}

// WithPanic makes every method panic with msg.
func (d *DataSource) WithPanic(msg string) *DataSource {
	d.panicMsg = msg
	return d
}

// Name returns the data source name.
func (d *DataSource) Name() string {
	return d.name
}

// SearchAirports implements usecase.DataSource.
func (d *DataSource) SearchAirports(ctx context.Context, _, _ string) (*skyscrapper.AirportPayload, error) {
	if err := d.enter(ctx, MethodSearchAirports); err != nil {
		return nil, err
	}
	return d.airports, nil
}

// SearchFlights implements usecase.DataSource.
// The params of every call are recorded for LastParams.
func (d *DataSource) SearchFlights(ctx context.Context, params domain.FlightSearchParams) (*skyscrapper.FlightPayload, error) {
	d.mu.Lock()
	d.params = append(d.params, params)
	d.mu.Unlock()

	if err := d.enter(ctx, MethodSearchFlights); err != nil {
		return nil, err
	}
	return d.flights, nil
}

// PopularAirports implements usecase.DataSource.
func (d *DataSource) PopularAirports(ctx context.Context) (*skyscrapper.AirportPayload, error) {
	if err := d.enter(ctx, MethodPopularAirports); err != nil {
		return nil, err
	}
	return d.popular, nil
}

// enter counts the call, applies the delay and returns the configured error.
func (d *DataSource) enter(ctx context.Context, method string) error {
	d.mu.Lock()
	d.calls[method]++
	d.mu.Unlock()

	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if d.panicMsg != "" {
		panic(d.panicMsg)
	}
	return d.errs[method]
}

// CallCount returns the number of times method was called.
func (d *DataSource) CallCount(method string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[method]
}

// LastParams returns the params of the most recent SearchFlights call.
func (d *DataSource) LastParams() (domain.FlightSearchParams, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.params) == 0 {
		return domain.FlightSearchParams{}, false
	}
	return d.params[len(d.params)-1], true
}

// Reset clears call counts and recorded params.
func (d *DataSource) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = make(map[string]int)
	d.params = nil
}

// Ensure DataSource implements usecase.DataSource at compile time.
var _ usecase.DataSource = (*DataSource)(nil)

// Carrier is an airline used by SampleFlights.
type Carrier struct {
	Code string
	Name string
}

// DefaultCarriers are cycled through by SampleFlights.
var DefaultCarriers = []Carrier{
	{Code: "BA", Name: "British Airways"},
	{Code: "VS", Name: "Virgin Atlantic"},
	{Code: "AA", Name: "American Airlines"},
}

// SampleFlights returns a payload with count priced itineraries from origin
// to destination on date. Itinerary i departs at 08:00 plus 2i hours, costs
// 400 + 50i USD, lasts 7h plus 10i minutes and makes i%3 stops. Flight
// numbers are the carrier code followed by 100+i.
func SampleFlights(origin, destination, date string, count int) *skyscrapper.FlightPayload {
	base, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		base = time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
	}
	base = base.Add(8 * time.Hour)

	its := make([]skyscrapper.Itinerary, 0, count)
	for i := 0; i < count; i++ {
		carrier := DefaultCarriers[i%len(DefaultCarriers)]
		minutes := 7*60 + i*10
		dep := base.Add(time.Duration(i*2) * time.Hour)
		arr := dep.Add(time.Duration(minutes) * time.Minute)
		price := &skyscrapper.Money{Amount: skyscrapper.Amount(400 + 50*i), Currency: "USD"}

		its = append(its, skyscrapper.Itinerary{
			ID: fmt.Sprintf("%s-%s-%s-%d", origin, destination, carrier.Code, i+1),
			PricingOptions: skyscrapper.ListOf(skyscrapper.PricingOption{
				Price: price,
				PricingOptions: skyscrapper.ListOf(skyscrapper.PricingOption{
					Price: price,
				}),
			}),
			Legs: skyscrapper.ListOf(skyscrapper.Leg{
				Origin:        &skyscrapper.Place{IATACode: origin, Terminal: "4"},
				Destination:   &skyscrapper.Place{IATACode: destination, Terminal: "5"},
				Duration:      fmt.Sprintf("PT%dH%dM", minutes/60, minutes%60),
				Departure:     dep.Format(time.RFC3339),
				Arrival:       arr.Format(time.RFC3339),
				NumberOfStops: i % 3,
				Carriers: &skyscrapper.Carriers{
					Marketing: skyscrapper.ListOf(skyscrapper.Carrier{
						IATACode:     carrier.Code,
						Name:         carrier.Name,
						FlightNumber: fmt.Sprintf("%s%d", carrier.Code, 100+i),
					}),
				},
			}),
		})
	}

	return &skyscrapper.FlightPayload{
		Status:    true,
		Timestamp: base.UnixMilli(),
		Data:      &skyscrapper.FlightData{Itineraries: skyscrapper.ListOf(its...)},
	}
}

// SampleAirports returns an airport payload with one entry per code.
// The title of each entry is "<city> <code>".
func SampleAirports(city string, codes ...string) *skyscrapper.AirportPayload {
	entries := make([]skyscrapper.AirportEntry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, skyscrapper.AirportEntry{
			Navigation: &skyscrapper.Navigation{
				EntityType: "AIRPORT",
				RelevantFlightParams: &skyscrapper.RelevantFlightParams{
					SkyID:           code,
					FlightPlaceType: "AIRPORT",
				},
			},
			Presentation: &skyscrapper.Presentation{
				Title:    city + " " + code,
				Subtitle: "Testland",
			},
		})
	}
	return &skyscrapper.AirportPayload{Status: true, Data: skyscrapper.ListOf(entries...)}
}
