package mockapi

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/flight-search/flight-finder/internal/adapter/provider/skyscrapper"
	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/random"
	"github.com/flight-search/flight-finder/internal/infrastructure/timeutil"
)

// Airline is a carrier the generator can assign to a synthetic itinerary.
type Airline struct {
	Code string
	Name string
}

// Airlines is the roster synthetic itineraries draw from.
var Airlines = []Airline{
	{Code: "AA", Name: "American Airlines"},
	{Code: "DL", Name: "Delta Air Lines"},
	{Code: "UA", Name: "United Airlines"},
	{Code: "BA", Name: "British Airways"},
	{Code: "AF", Name: "Air France"},
	{Code: "LH", Name: "Lufthansa"},
	{Code: "KL", Name: "KLM"},
	{Code: "IB", Name: "Iberia"},
}

// Bounds of the synthetic data. Upper bounds are exclusive.
const (
	MinItineraries = 3
	MaxItineraries = 10

	MinPrice = 200
	MaxPrice = 1000

	FirstDepartureHour = 6
	LastDepartureHour  = 22

	MinDurationHours = 1
	MaxDurationHours = 12

	maxTerminal = 5

	// DirectProbability is the chance a synthetic itinerary has no stops.
	DirectProbability = 0.7
)

// isoLayout renders timestamps with millisecond precision and the zone offset ("Z" for UTC).
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Generator synthesizes flight payloads for routes missing from the catalog.
type Generator struct {
	rnd   random.Source
	clock timeutil.Clock
	loc   *time.Location
}

// NewGenerator creates a generator. Departure times are laid out in loc, UTC when nil.
func NewGenerator(rnd random.Source, clock timeutil.Clock, loc *time.Location) *Generator {
	if loc == nil {
		loc = time.UTC
	}
	return &Generator{rnd: rnd, clock: clock, loc: loc}
}

// Flights returns a payload of synthetic itineraries on params.Date.
// An unparsable date yields a successful payload with no itineraries.
func (g *Generator) Flights(params domain.FlightSearchParams) *skyscrapper.FlightPayload {
	now := timeutil.UnixMilli(g.clock)
	payload := &skyscrapper.FlightPayload{
		Status:    true,
		Timestamp: now,
		Data:      &skyscrapper.FlightData{Itineraries: skyscrapper.List[skyscrapper.Itinerary]{}},
	}

	if _, err := time.ParseInLocation(domain.DateLayout, params.Date, g.loc); err != nil {
		return payload
	}

	count := random.Between(g.rnd, MinItineraries, MaxItineraries+1)
	itineraries := make(skyscrapper.List[skyscrapper.Itinerary], 0, count)
	for i := 0; i < count; i++ {
		it, err := g.itinerary(params, now, i)
		if err != nil {
			return payload
		}
		itineraries = append(itineraries, it)
	}

	payload.Data.Itineraries = itineraries
	return payload
}

func (g *Generator) itinerary(params domain.FlightSearchParams, now int64, i int) (*skyscrapper.Itinerary, error) {
	airline := Airlines[g.rnd.Intn(len(Airlines))]
	amount := g.price()

	departure, err := timeutil.AtClock(params.Date, g.loc,
		random.Between(g.rnd, FirstDepartureHour, LastDepartureHour),
		g.rnd.Intn(60))
	if err != nil {
		return nil, err
	}

	hours := random.Between(g.rnd, MinDurationHours, MaxDurationHours)
	minutes := g.rnd.Intn(60)
	arrival := departure.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)

	originTerminal := g.terminal()
	destinationTerminal := g.terminal()

	stops := 0
	if !random.Chance(g.rnd, DirectProbability) {
		stops = 1 + g.rnd.Intn(2)
	}

	price := &skyscrapper.Money{Amount: skyscrapper.Amount(amount), Currency: domain.DefaultCurrency}
	carrier := skyscrapper.Carrier{IATACode: airline.Code, Name: airline.Name}
	suffix := strconv.Itoa(i)

	return &skyscrapper.Itinerary{
		ID: fmt.Sprintf("itinerary_%d_%d", now, i),
		PricingOptions: skyscrapper.ListOf(skyscrapper.PricingOption{
			ID:                      "option_" + suffix,
			FareType:                "PUBLIC",
			IncludedCheckedBagsOnly: true,
			Price:                   price,
			PricingOptions: skyscrapper.ListOf(skyscrapper.PricingOption{
				ID:                      "pricing_" + suffix,
				FareType:                "PUBLIC",
				IncludedCheckedBagsOnly: true,
				Price:                   &skyscrapper.Money{Amount: price.Amount, Currency: price.Currency},
			}),
		}),
		Legs: skyscrapper.ListOf(skyscrapper.Leg{
			ID:          "leg_" + suffix,
			Origin:      &skyscrapper.Place{IATACode: params.Origin, Terminal: originTerminal},
			Destination: &skyscrapper.Place{IATACode: params.Destination, Terminal: destinationTerminal},
			Duration:    skyscrapper.FormatISODuration(hours, minutes),
			Departure:   departure.Format(isoLayout),
			Arrival:     arrival.Format(isoLayout),
			Carriers: &skyscrapper.Carriers{
				Marketing: skyscrapper.ListOf(carrier),
				Operating: skyscrapper.ListOf(carrier),
			},
			Operating:     &skyscrapper.Operating{CarrierCode: airline.Code},
			NumberOfStops: stops,
		}),
	}, nil
}

// price draws a whole amount in [MinPrice, MaxPrice).
func (g *Generator) price() float64 {
	amount := math.Round(MinPrice + g.rnd.Float64()*(MaxPrice-MinPrice))
	if amount >= MaxPrice {
		amount = MaxPrice - 1
	}
	return amount
}

func (g *Generator) terminal() string {
	return strconv.Itoa(1 + g.rnd.Intn(maxTerminal))
}
