// Package domain contains the core entities and rules of the flight finder.
// These entities are provider-agnostic: every data source is normalized into them
// before anything else in the system sees its results.
package domain

import (
	"fmt"
	"strconv"
)

// FlightResult represents a single bookable flight offering shown to the user.
type FlightResult struct {
	// ID is an opaque identifier, unique within one search response
	ID string `json:"id"`

	// Airline is the marketing carrier's display name (e.g., "British Airways")
	Airline string `json:"airline"`

	// FlightNumber is the carrier code plus a numeric suffix (e.g., "BA1234").
	// It is not guaranteed to be globally unique.
	FlightNumber string `json:"flightNumber"`

	// Departure contains the departure airport and time
	Departure FlightPoint `json:"departure"`

	// Arrival contains the arrival airport and time
	Arrival FlightPoint `json:"arrival"`

	// Duration is a human-readable duration string (e.g., "7h 30m")
	Duration string `json:"duration"`

	// Price contains pricing information
	Price Price `json:"price"`

	// Stops is the number of stops (0 = direct flight)
	Stops int `json:"stops"`

	// CabinClass echoes the cabin class of the search
	CabinClass CabinClass `json:"cabinClass"`

	// Aircraft is an optional aircraft display name (e.g., "Boeing 737")
	Aircraft string `json:"aircraft,omitempty"`
}

// FlightPoint represents one end of a flight (departure or arrival).
type FlightPoint struct {
	// Airport is the airport code (e.g., "JFK")
	Airport string `json:"airport"`

	// Time is the ISO-8601 timestamp as supplied by the provider
	Time string `json:"time"`

	// Terminal is the terminal identifier, if known
	Terminal string `json:"terminal,omitempty"`
}

// Price contains the fare for a flight.
type Price struct {
	// Amount is the numeric price value, never negative
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// DefaultCurrency is used when a provider omits the price currency.
const DefaultCurrency = "USD"

// FormatDuration formats hours and minutes as "Xh Ym".
// Both parts are always present, so zero renders as "0h 0m".
func FormatDuration(hours, minutes int) string {
	return strconv.Itoa(hours) + "h " + strconv.Itoa(minutes) + "m"
}

// DurationMinutes parses a duration produced by FormatDuration back into minutes.
// It returns 0 for strings that are not in that format.
func DurationMinutes(formatted string) int {
	var hours, minutes int
	n, err := fmt.Sscanf(formatted, "%dh %dm", &hours, &minutes)
	if err != nil || n != 2 {
		return 0
	}
	return hours*60 + minutes
}
