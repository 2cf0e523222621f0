package mockapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-finder/internal/adapter/provider/skyscrapper"
	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/random"
	"github.com/flight-search/flight-finder/internal/infrastructure/timeutil"
)

var fixedNow = time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)

func syntheticParams() domain.FlightSearchParams {
	return domain.FlightSearchParams{Origin: "SFO", Destination: "SEA", Date: "2025-12-15"}
}

func TestGenerator_Bounds(t *testing.T) {
	rosterCodes := make(map[string]bool, len(Airlines))
	for _, a := range Airlines {
		rosterCodes[a.Code] = true
	}

	for seed := int64(1); seed <= 50; seed++ {
		g := NewGenerator(random.NewSeeded(seed), timeutil.NewMockClock(fixedNow), nil)
		payload := g.Flights(syntheticParams())

		its := payload.Itineraries()
		require.GreaterOrEqual(t, len(its), MinItineraries)
		require.LessOrEqual(t, len(its), MaxItineraries)
		assert.Equal(t, fixedNow.UnixMilli(), payload.Timestamp)

		for _, it := range its {
			option := it.PricingOptions.First()
			require.NotNil(t, option)
			amount := float64(option.Price.Amount)
			assert.GreaterOrEqual(t, amount, float64(MinPrice))
			assert.Less(t, amount, float64(MaxPrice))
			require.NotNil(t, option.PricingOptions.First())
			assert.Equal(t, option.Price.Amount, option.PricingOptions.First().Price.Amount)

			leg := it.Legs.First()
			require.NotNil(t, leg)
			assert.Contains(t, []int{0, 1, 2}, leg.NumberOfStops)
			assert.Equal(t, "SFO", leg.Origin.IATACode)
			assert.Equal(t, "SEA", leg.Destination.IATACode)
			assert.Contains(t, []string{"1", "2", "3", "4", "5"}, leg.Origin.Terminal)
			assert.Contains(t, []string{"1", "2", "3", "4", "5"}, leg.Destination.Terminal)

			dep, err := time.Parse(time.RFC3339, leg.Departure)
			require.NoError(t, err)
			assert.Equal(t, "2025-12-15", dep.Format(domain.DateLayout))
			assert.GreaterOrEqual(t, dep.Hour(), FirstDepartureHour)
			assert.Less(t, dep.Hour(), LastDepartureHour)

			h, m, ok := skyscrapper.ParseISODuration(leg.Duration)
			require.True(t, ok, leg.Duration)
			assert.GreaterOrEqual(t, h, MinDurationHours)
			assert.Less(t, h, MaxDurationHours)

			arr, err := time.Parse(time.RFC3339, leg.Arrival)
			require.NoError(t, err)
			assert.Equal(t, time.Duration(h)*time.Hour+time.Duration(m)*time.Minute, arr.Sub(dep))

			carrier := leg.Carriers.Marketing.First()
			require.NotNil(t, carrier)
			assert.True(t, rosterCodes[carrier.IATACode], carrier.IATACode)
			assert.Equal(t, carrier.IATACode, leg.Carriers.Operating.First().IATACode)
			assert.Equal(t, carrier.IATACode, leg.Operating.CarrierCode)
		}
	}
}

func TestGenerator_InvalidDate(t *testing.T) {
	g := NewGenerator(random.NewSeeded(1), timeutil.NewMockClock(fixedNow), nil)
	params := syntheticParams()
	params.Date = "not-a-date"

	payload := g.Flights(params)

	assert.True(t, payload.Status)
	require.NotNil(t, payload.Itineraries())
	assert.Empty(t, payload.Itineraries())
}

func TestGenerator_SameSeedSamePayload(t *testing.T) {
	clock := timeutil.NewMockClock(fixedNow)
	a := NewGenerator(random.NewSeeded(7), clock, nil).Flights(syntheticParams())
	b := NewGenerator(random.NewSeeded(7), clock, nil).Flights(syntheticParams())

	assert.Equal(t, a, b)
}

func TestGenerator_Timezone(t *testing.T) {
	loc := timeutil.MustGetLocation("Asia/Tokyo")
	g := NewGenerator(random.NewSeeded(3), timeutil.NewMockClock(fixedNow), loc)

	for _, it := range g.Flights(syntheticParams()).Itineraries() {
		dep, err := time.Parse(time.RFC3339, it.Legs.First().Departure)
		require.NoError(t, err)
		_, offset := dep.Zone()
		assert.Equal(t, 9*60*60, offset)
		assert.Equal(t, "2025-12-15", dep.Format(domain.DateLayout))
	}
}

func TestGenerator_ItineraryIDs(t *testing.T) {
	g := NewGenerator(random.NewSeeded(5), timeutil.NewMockClock(fixedNow), nil)

	seen := map[string]bool{}
	for _, it := range g.Flights(syntheticParams()).Itineraries() {
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
}
