package mockapi

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flight-search/flight-finder/internal/adapter/provider/skyscrapper"
)

//go:embed data/mock_database.json
var databaseJSON []byte

// Catalog is the read-only fixture database behind the mock data source.
// Every accessor returns a copy, so callers may modify results freely.
type Catalog struct {
	queries []queryEntry
	byQuery map[string]*skyscrapper.AirportPayload
	routes  map[string]*skyscrapper.FlightPayload
	popular *skyscrapper.AirportPayload
}

type queryEntry struct {
	Query    string                     `json:"query"`
	Response skyscrapper.AirportPayload `json:"response"`
}

type routeEntry struct {
	Route    string                    `json:"route"`
	Response skyscrapper.FlightPayload `json:"response"`
}

type database struct {
	SearchAirports     []queryEntry               `json:"searchAirports"`
	SearchFlights      []routeEntry               `json:"searchFlights"`
	GetPopularAirports skyscrapper.AirportPayload `json:"getPopularAirports"`
}

// DefaultCatalog loads the embedded fixture database.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(databaseJSON)
}

// LoadCatalog parses a fixture database.
// Query keys are matched lowercase; route keys are "<origin>-<destination>".
func LoadCatalog(raw []byte) (*Catalog, error) {
	var db database
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("parse mock database: %w", err)
	}

	c := &Catalog{
		queries: make([]queryEntry, 0, len(db.SearchAirports)),
		byQuery: make(map[string]*skyscrapper.AirportPayload, len(db.SearchAirports)),
		routes:  make(map[string]*skyscrapper.FlightPayload, len(db.SearchFlights)),
		popular: &db.GetPopularAirports,
	}

	for i := range db.SearchAirports {
		e := db.SearchAirports[i]
		key := strings.ToLower(strings.TrimSpace(e.Query))
		if _, dup := c.byQuery[key]; dup {
			return nil, fmt.Errorf("duplicate airport query %q", key)
		}
		e.Query = key
		c.queries = append(c.queries, e)
		c.byQuery[key] = &c.queries[len(c.queries)-1].Response
	}

	for i := range db.SearchFlights {
		e := db.SearchFlights[i]
		if _, dup := c.routes[e.Route]; dup {
			return nil, fmt.Errorf("duplicate route %q", e.Route)
		}
		resp := e.Response
		c.routes[e.Route] = &resp
	}

	return c, nil
}

// Airports returns the stored payload for an exact query key.
func (c *Catalog) Airports(key string) (*skyscrapper.AirportPayload, bool) {
	p, ok := c.byQuery[key]
	if !ok {
		return nil, false
	}
	return clone(p), true
}

// Match flattens every stored entry in catalog order and keeps those whose
// title, subtitle or suggestion title contains needle, up to limit entries.
// needle must already be lowercase.
func (c *Catalog) Match(needle string, limit int) skyscrapper.List[skyscrapper.AirportEntry] {
	matches := make(skyscrapper.List[skyscrapper.AirportEntry], 0, limit)
	for _, q := range c.queries {
		for _, entry := range q.Response.Data {
			if len(matches) >= limit {
				return matches
			}
			if entryMatches(entry, needle) {
				matches = append(matches, clone(entry))
			}
		}
	}
	return matches
}

func entryMatches(entry *skyscrapper.AirportEntry, needle string) bool {
	if entry == nil || entry.Presentation == nil {
		return false
	}
	p := entry.Presentation
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.SuggestionTitle), needle) ||
		strings.Contains(strings.ToLower(p.Subtitle), needle)
}

// Route returns the canned flight payload for a route key.
func (c *Catalog) Route(key string) (*skyscrapper.FlightPayload, bool) {
	p, ok := c.routes[key]
	if !ok {
		return nil, false
	}
	return clone(p), true
}

// Popular returns the curated popular-airports payload.
func (c *Catalog) Popular() *skyscrapper.AirportPayload {
	return clone(c.popular)
}

// Routes lists the canned route keys.
func (c *Catalog) Routes() []string {
	keys := make([]string, 0, len(c.routes))
	for k := range c.routes {
		keys = append(keys, k)
	}
	return keys
}

// clone deep-copies a payload value. Fixture values always round-trip.
func clone[T any](v *T) *T {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("mockapi: clone: %v", err))
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		panic(fmt.Sprintf("mockapi: clone: %v", err))
	}
	return out
}
