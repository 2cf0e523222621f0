package skyscrapper

import (
	"strconv"
	"strings"

	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/random"
)

// DefaultAircraft is the aircraft reported by the mock data source when a leg names none.
const DefaultAircraft = "Boeing 737"

// Flight number suffixes are drawn from [flightNumberMin, flightNumberMax).
const (
	flightNumberMin = 1000
	flightNumberMax = 10000
)

// Normalizer converts provider payloads into domain entities.
// It never fails and never modifies its input.
type Normalizer struct {
	rnd             random.Source
	defaultAircraft string
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithRandom sets the source used to generate flight numbers.
func WithRandom(src random.Source) Option {
	return func(n *Normalizer) {
		if src != nil {
			n.rnd = src
		}
	}
}

// WithDefaultAircraft sets the aircraft used when a leg does not name one.
// An empty name leaves the field unset.
func WithDefaultAircraft(name string) Option {
	return func(n *Normalizer) {
		n.defaultAircraft = name
	}
}

// NewNormalizer creates a Normalizer. Without WithRandom it draws from crypto/rand.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{rnd: random.NewCrypto()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NormalizeAirports converts an airport payload into airports, one per entry in order.
// A nil payload or an absent data list yields an empty slice.
func NormalizeAirports(payload *AirportPayload) []domain.Airport {
	if payload == nil || len(payload.Data) == 0 {
		return []domain.Airport{}
	}

	airports := make([]domain.Airport, 0, len(payload.Data))
	for _, entry := range payload.Data {
		airports = append(airports, normalizeAirport(entry))
	}
	return airports
}

// NormalizeAirports converts an airport payload into airports.
func (n *Normalizer) NormalizeAirports(payload *AirportPayload) []domain.Airport {
	return NormalizeAirports(payload)
}

func normalizeAirport(entry *AirportEntry) domain.Airport {
	airport := domain.Airport{Code: entry.SkyID()}
	if entry != nil && entry.Presentation != nil {
		airport.Name = entry.Presentation.Title
		airport.Country = entry.Presentation.Subtitle
	}
	if fields := strings.Fields(airport.Name); len(fields) > 0 {
		airport.City = fields[0]
	}
	return airport
}

// NormalizeFlights converts a flight payload into flight results in itinerary order.
// Itineraries without a leg, a pricing option or a marketing carrier are skipped.
func (n *Normalizer) NormalizeFlights(payload *FlightPayload, params domain.FlightSearchParams) []domain.FlightResult {
	itineraries := payload.Itineraries()
	flights := make([]domain.FlightResult, 0, len(itineraries))

	for i, itinerary := range itineraries {
		flight, ok := n.normalizeItinerary(itinerary, params)
		if !ok {
			continue
		}
		if flight.ID == "" {
			flight.ID = "itinerary_" + strconv.Itoa(i)
		}
		flights = append(flights, flight)
	}

	return flights
}

// NormalizeFlights normalizes a flight payload with a one-off Normalizer built from opts.
func NormalizeFlights(payload *FlightPayload, params domain.FlightSearchParams, opts ...Option) []domain.FlightResult {
	return NewNormalizer(opts...).NormalizeFlights(payload, params)
}

func (n *Normalizer) normalizeItinerary(it *Itinerary, params domain.FlightSearchParams) (domain.FlightResult, bool) {
	if it == nil {
		return domain.FlightResult{}, false
	}

	leg := it.Legs.First()
	option := it.PricingOptions.First()
	carrier := leg.marketingCarrier()
	if leg == nil || option == nil || carrier == nil {
		return domain.FlightResult{}, false
	}

	hours, minutes, _ := ParseISODuration(leg.Duration)

	stops := leg.NumberOfStops
	if stops < 0 {
		stops = 0
	}

	return domain.FlightResult{
		ID:           it.ID,
		Airline:      carrier.Name,
		FlightNumber: n.flightNumber(carrier),
		Departure:    flightPoint(leg.Origin, leg.Departure, params.Origin),
		Arrival:      flightPoint(leg.Destination, leg.Arrival, params.Destination),
		Duration:     domain.FormatDuration(hours, minutes),
		Price:        price(option.Price),
		Stops:        stops,
		CabinClass:   params.CabinClass.OrDefault(),
		Aircraft:     n.aircraft(leg),
	}, true
}

// flightNumber keeps a provider-supplied number and otherwise appends a
// random four-digit suffix to the carrier code.
func (n *Normalizer) flightNumber(c *Carrier) string {
	if c.FlightNumber != "" {
		return c.FlightNumber
	}
	return c.IATACode + strconv.Itoa(random.Between(n.rnd, flightNumberMin, flightNumberMax))
}

func (n *Normalizer) aircraft(leg *Leg) string {
	if leg.Aircraft != nil && leg.Aircraft.Name != "" {
		return leg.Aircraft.Name
	}
	return n.defaultAircraft
}

func flightPoint(place *Place, at, fallbackCode string) domain.FlightPoint {
	point := domain.FlightPoint{Airport: place.Code(), Time: at}
	if point.Airport == "" {
		point.Airport = fallbackCode
	}
	if place != nil {
		point.Terminal = place.Terminal
	}
	return point
}

func price(m *Money) domain.Price {
	p := domain.Price{Currency: domain.DefaultCurrency}
	if m == nil {
		return p
	}
	if m.Amount > 0 {
		p.Amount = float64(m.Amount)
	}
	if m.Currency != "" {
		p.Currency = m.Currency
	}
	return p
}
