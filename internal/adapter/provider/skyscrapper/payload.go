// Package skyscrapper holds the Sky Scrapper payload shape shared by the mock
// and live data sources, the normalizer that turns it into domain entities,
// and the HTTP client for the live provider.
package skyscrapper

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var errNotObject = errors.New("skyscrapper: not a JSON object")

// decodeObject decodes the members of a JSON object one at a time into the
// destinations keyed by member name. A member that fails to decode is reset
// to its zero value; only a value that is not an object fails as a whole.
func decodeObject(b []byte, fields map[string]interface{}) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(b, &members); err != nil {
		return errNotObject
	}
	for name, dst := range fields {
		raw, ok := members[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			v := reflect.ValueOf(dst).Elem()
			v.Set(reflect.Zero(v.Type()))
		}
	}
	return nil
}

// List is a JSON list that tolerates malformed input.
// A value that is not a JSON array decodes as an absent (nil) list.
// Elements that are null or fail to decode are kept as nil so positions are preserved.
type List[T any] []*T

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(b []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil || raws == nil {
		*l = nil
		return nil
	}

	out := make(List[T], len(raws))
	for i, raw := range raws {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		out[i] = &v
	}
	*l = out
	return nil
}

// First returns the first element, or nil when the list is empty.
func (l List[T]) First() *T {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}

// ListOf builds a List from values.
func ListOf[T any](values ...T) List[T] {
	out := make(List[T], len(values))
	for i := range values {
		v := values[i]
		out[i] = &v
	}
	return out
}

// Amount is a price amount that accepts JSON numbers and numeric strings.
// Anything else decodes as zero.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// AirportPayload is the response of an airport search.
type AirportPayload struct {
	Status    bool               `json:"status"`
	Timestamp int64              `json:"timestamp"`
	Data      List[AirportEntry] `json:"data"`
}

// UnmarshalJSON implements json.Unmarshaler. Malformed members keep their zero value.
func (p *AirportPayload) UnmarshalJSON(b []byte) error {
	*p = AirportPayload{}
	return decodeObject(b, map[string]interface{}{
		"status":    &p.Status,
		"timestamp": &p.Timestamp,
		"data":      &p.Data,
	})
}

// AirportEntry is one airport or city suggestion.
type AirportEntry struct {
	Navigation   *Navigation   `json:"navigation,omitempty"`
	Presentation *Presentation `json:"presentation,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler. A malformed navigation or
// presentation decodes as absent without affecting the other.
func (e *AirportEntry) UnmarshalJSON(b []byte) error {
	*e = AirportEntry{}
	return decodeObject(b, map[string]interface{}{
		"navigation":   &e.Navigation,
		"presentation": &e.Presentation,
	})
}

// Navigation carries the identifiers used to search flights for an entry.
type Navigation struct {
	EntityID             string                `json:"entityId,omitempty"`
	EntityType           string                `json:"entityType,omitempty"`
	LocalizedName        string                `json:"localizedName,omitempty"`
	RelevantFlightParams *RelevantFlightParams `json:"relevantFlightParams,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Navigation) UnmarshalJSON(b []byte) error {
	*n = Navigation{}
	return decodeObject(b, map[string]interface{}{
		"entityId":             &n.EntityID,
		"entityType":           &n.EntityType,
		"localizedName":        &n.LocalizedName,
		"relevantFlightParams": &n.RelevantFlightParams,
	})
}

// RelevantFlightParams holds the provider airport code.
type RelevantFlightParams struct {
	SkyID           string `json:"skyId"`
	EntityID        string `json:"entityId,omitempty"`
	FlightPlaceType string `json:"flightPlaceType,omitempty"`
	LocalizedName   string `json:"localizedName,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RelevantFlightParams) UnmarshalJSON(b []byte) error {
	*r = RelevantFlightParams{}
	return decodeObject(b, map[string]interface{}{
		"skyId":           &r.SkyID,
		"entityId":        &r.EntityID,
		"flightPlaceType": &r.FlightPlaceType,
		"localizedName":   &r.LocalizedName,
	})
}

// Presentation holds the display strings of an entry.
type Presentation struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	SuggestionTitle string `json:"suggestionTitle"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Presentation) UnmarshalJSON(b []byte) error {
	*p = Presentation{}
	return decodeObject(b, map[string]interface{}{
		"title":           &p.Title,
		"subtitle":        &p.Subtitle,
		"suggestionTitle": &p.SuggestionTitle,
	})
}

// SkyID returns the entry's airport code, or "" when absent.
func (e *AirportEntry) SkyID() string {
	if e == nil || e.Navigation == nil || e.Navigation.RelevantFlightParams == nil {
		return ""
	}
	return e.Navigation.RelevantFlightParams.SkyID
}

// FlightPayload is the response of a flight search.
type FlightPayload struct {
	Status    bool        `json:"status"`
	Timestamp int64       `json:"timestamp"`
	Data      *FlightData `json:"data,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler. Malformed members keep their zero value.
func (p *FlightPayload) UnmarshalJSON(b []byte) error {
	*p = FlightPayload{}
	return decodeObject(b, map[string]interface{}{
		"status":    &p.Status,
		"timestamp": &p.Timestamp,
		"data":      &p.Data,
	})
}

// FlightData wraps the itineraries of a flight search.
type FlightData struct {
	Itineraries List[Itinerary] `json:"itineraries"`
}

// UnmarshalJSON implements json.Unmarshaler. A non-object value decodes as empty.
func (d *FlightData) UnmarshalJSON(b []byte) error {
	type plain FlightData
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		*d = FlightData{}
		return nil
	}
	*d = FlightData(v)
	return nil
}

// Itineraries returns the payload's itineraries, or nil when absent.
func (p *FlightPayload) Itineraries() List[Itinerary] {
	if p == nil || p.Data == nil {
		return nil
	}
	return p.Data.Itineraries
}

// Itinerary is one bookable journey.
type Itinerary struct {
	ID             string              `json:"id"`
	PricingOptions List[PricingOption] `json:"pricingOptions"`
	Legs           List[Leg]           `json:"legs"`
}

// UnmarshalJSON implements json.Unmarshaler. Only a non-object itinerary fails.
func (it *Itinerary) UnmarshalJSON(b []byte) error {
	*it = Itinerary{}
	return decodeObject(b, map[string]interface{}{
		"id":             &it.ID,
		"pricingOptions": &it.PricingOptions,
		"legs":           &it.Legs,
	})
}

// PricingOption is one fare for an itinerary. The provider nests further
// options under a top-level option.
type PricingOption struct {
	ID                      string              `json:"id,omitempty"`
	FareType                string              `json:"fareType,omitempty"`
	IncludedCheckedBagsOnly bool                `json:"includedCheckedBagsOnly,omitempty"`
	Price                   *Money              `json:"price,omitempty"`
	PricingOptions          List[PricingOption] `json:"pricingOptions,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *PricingOption) UnmarshalJSON(b []byte) error {
	*o = PricingOption{}
	return decodeObject(b, map[string]interface{}{
		"id":                      &o.ID,
		"fareType":                &o.FareType,
		"includedCheckedBagsOnly": &o.IncludedCheckedBagsOnly,
		"price":                   &o.Price,
		"pricingOptions":          &o.PricingOptions,
	})
}

// Money is an amount with its currency.
type Money struct {
	Amount   Amount `json:"amount"`
	Currency string `json:"currency"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Money) UnmarshalJSON(b []byte) error {
	*m = Money{}
	return decodeObject(b, map[string]interface{}{
		"amount":   &m.Amount,
		"currency": &m.Currency,
	})
}

// Leg is one directional part of an itinerary.
type Leg struct {
	ID              string     `json:"id,omitempty"`
	Origin          *Place     `json:"origin,omitempty"`
	Destination     *Place     `json:"destination,omitempty"`
	Duration        string     `json:"duration,omitempty"`
	Departure       string     `json:"departure,omitempty"`
	Arrival         string     `json:"arrival,omitempty"`
	Carriers        *Carriers  `json:"carriers,omitempty"`
	Operating       *Operating `json:"operating,omitempty"`
	NumberOfStops   int        `json:"numberOfStops"`
	BlacklistedInEU bool       `json:"blacklistedInEU,omitempty"`
	Aircraft        *Aircraft  `json:"aircraft,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler. A wrong-typed member, such as a
// string stop count or a bare-string origin, decodes as its zero value.
func (l *Leg) UnmarshalJSON(b []byte) error {
	*l = Leg{}
	return decodeObject(b, map[string]interface{}{
		"id":              &l.ID,
		"origin":          &l.Origin,
		"destination":     &l.Destination,
		"duration":        &l.Duration,
		"departure":       &l.Departure,
		"arrival":         &l.Arrival,
		"carriers":        &l.Carriers,
		"operating":       &l.Operating,
		"numberOfStops":   &l.NumberOfStops,
		"blacklistedInEU": &l.BlacklistedInEU,
		"aircraft":        &l.Aircraft,
	})
}

// Place is an airport reference inside a leg.
type Place struct {
	IATACode    string `json:"iataCode,omitempty"`
	DisplayCode string `json:"displayCode,omitempty"`
	Terminal    string `json:"terminal,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Place) UnmarshalJSON(b []byte) error {
	*p = Place{}
	return decodeObject(b, map[string]interface{}{
		"iataCode":    &p.IATACode,
		"displayCode": &p.DisplayCode,
		"terminal":    &p.Terminal,
	})
}

// Code returns the IATA code, falling back to the display code.
func (p *Place) Code() string {
	if p == nil {
		return ""
	}
	if p.IATACode != "" {
		return p.IATACode
	}
	return p.DisplayCode
}

// Carriers lists the marketing and operating carriers of a leg.
type Carriers struct {
	Marketing List[Carrier] `json:"marketing"`
	Operating List[Carrier] `json:"operating,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Carriers) UnmarshalJSON(b []byte) error {
	*c = Carriers{}
	return decodeObject(b, map[string]interface{}{
		"marketing": &c.Marketing,
		"operating": &c.Operating,
	})
}

// Carrier is an airline on a leg.
type Carrier struct {
	IATACode     string `json:"iataCode"`
	Name         string `json:"name"`
	FlightNumber string `json:"flightNumber,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Carrier) UnmarshalJSON(b []byte) error {
	*c = Carrier{}
	return decodeObject(b, map[string]interface{}{
		"iataCode":     &c.IATACode,
		"name":         &c.Name,
		"flightNumber": &c.FlightNumber,
	})
}

// Operating identifies the operating carrier by code only.
type Operating struct {
	CarrierCode string `json:"carrierCode"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Operating) UnmarshalJSON(b []byte) error {
	*o = Operating{}
	return decodeObject(b, map[string]interface{}{"carrierCode": &o.CarrierCode})
}

// Aircraft describes the equipment flying a leg.
type Aircraft struct {
	Name string `json:"name"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Aircraft) UnmarshalJSON(b []byte) error {
	*a = Aircraft{}
	return decodeObject(b, map[string]interface{}{"name": &a.Name})
}

// marketingCarrier returns the leg's first marketing carrier, or nil.
func (l *Leg) marketingCarrier() *Carrier {
	if l == nil || l.Carriers == nil {
		return nil
	}
	return l.Carriers.Marketing.First()
}
