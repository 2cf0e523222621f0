package mockapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-finder/internal/adapter/provider/skyscrapper"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	require.NoError(t, err)
	return c
}

func TestDefaultCatalog_Loads(t *testing.T) {
	c := mustCatalog(t)

	for _, key := range []string{"new york", "london", "paris", "tokyo", "los angeles"} {
		p, ok := c.Airports(key)
		require.True(t, ok, key)
		assert.NotEmpty(t, p.Data, key)
	}

	assert.ElementsMatch(t, []string{"JFK-LHR", "LHR-JFK"}, c.Routes())
	assert.Len(t, c.Popular().Data, 8)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := mustCatalog(t)

	first, ok := c.Airports("london")
	require.True(t, ok)
	first.Data[0].Presentation.Title = "changed"
	first.Data = nil

	second, ok := c.Airports("london")
	require.True(t, ok)
	require.NotEmpty(t, second.Data)
	assert.Equal(t, "London", second.Data[0].Presentation.Title)

	route, ok := c.Route("JFK-LHR")
	require.True(t, ok)
	route.Data.Itineraries = nil
	again, _ := c.Route("JFK-LHR")
	assert.NotEmpty(t, again.Itineraries())
}

func TestCatalog_Match(t *testing.T) {
	c := mustCatalog(t)

	t.Run("substring over every field", func(t *testing.T) {
		got := c.Match("new", MaxAirportMatches)

		require.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), MaxAirportMatches)
		for _, e := range got {
			p := e.Presentation
			text := strings.ToLower(p.Title + "|" + p.Subtitle + "|" + p.SuggestionTitle)
			assert.Contains(t, text, "new")
		}
	})

	t.Run("subtitle match", func(t *testing.T) {
		got := c.Match("zealand", MaxAirportMatches)
		require.Len(t, got, 1)
		assert.Equal(t, "AKL", got[0].SkyID())
	})

	t.Run("capped", func(t *testing.T) {
		got := c.Match("united", MaxAirportMatches)
		assert.Len(t, got, MaxAirportMatches)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Match("atlantis", MaxAirportMatches))
	})
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "invalid json", raw: `{`},
		{name: "duplicate query", raw: `{"searchAirports":[{"query":"a","response":{}},{"query":" A ","response":{}}]}`},
		{name: "duplicate route", raw: `{"searchFlights":[{"route":"A-B","response":{}},{"route":"A-B","response":{}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog_Custom(t *testing.T) {
	raw := `{
		"searchAirports": [{"query": "Oslo", "response": {"status": true, "data": [
			{"navigation": {"relevantFlightParams": {"skyId": "OSL"}},
			 "presentation": {"title": "Oslo Gardermoen", "subtitle": "Norway", "suggestionTitle": "Oslo Gardermoen (OSL)"}}
		]}}],
		"getPopularAirports": {"status": true, "data": []}
	}`

	c, err := LoadCatalog([]byte(raw))
	require.NoError(t, err)

	p, ok := c.Airports("oslo")
	require.True(t, ok)
	airports := skyscrapper.NormalizeAirports(p)
	require.Len(t, airports, 1)
	assert.Equal(t, "OSL", airports[0].Code)
	assert.Empty(t, c.Routes())
}
