// Package http provides the HTTP handler layer for the flight finder API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/flight-search/flight-finder/internal/domain"
)

// MaxQueryLength caps the airport autocomplete query.
const MaxQueryLength = 100

// DefaultLocale is used when an airport search omits the locale.
const DefaultLocale = "en-US"

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the departure airport code (e.g., "JFK")
	Origin string `json:"origin" example:"JFK"`

	// Destination is the arrival airport code (e.g., "LHR")
	Destination string `json:"destination" example:"LHR"`

	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date" example:"2026-12-15"`

	// ReturnDate is the optional return date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty" example:"2026-12-22"`

	// Adults is the number of adult passengers (1-9, default 1)
	Adults int `json:"adults,omitempty" example:"1"`

	// CabinClass is economy, premium_economy, business or first (default economy)
	CabinClass string `json:"cabinClass,omitempty" example:"economy"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy is price, duration or departure; empty keeps the data source order
	SortBy string `json:"sortBy,omitempty" example:"price"`
}

// FilterDTO represents optional filters for flight search.
type FilterDTO struct {
	// MaxPrice drops flights priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"800"`

	// MaxStops drops flights with more stops than this value (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"0"`

	// Airlines keeps flights whose airline name or carrier code matches
	Airlines []string `json:"airlines,omitempty" example:"BA,Virgin Atlantic"`
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var validCabinClasses = map[string]bool{
	"":                true,
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
}

var validSortOptions = map[string]bool{
	"":          true,
	"price":     true,
	"duration":  true,
	"departure": true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
// The first message recorded for a field wins.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := result[e.Field]; !ok {
			result[e.Field] = e.Message
		}
	}
	return result
}

// Normalize trims the request and folds codes and enums to their canonical case.
func (r *SearchFlightsRequest) Normalize() {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.Date = strings.TrimSpace(r.Date)
	r.ReturnDate = strings.TrimSpace(r.ReturnDate)
	r.CabinClass = strings.ToLower(strings.TrimSpace(r.CabinClass))
	r.SortBy = strings.ToLower(strings.TrimSpace(r.SortBy))
}

// Validate normalizes the request and returns every validation problem found.
func (r *SearchFlightsRequest) Validate() error {
	r.Normalize()
	errs := &ValidationErrors{}

	if r.Origin == "" {
		errs.Add("origin", "origin is required")
	}
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
	}

	departure, ok := validateDate(errs, "date", r.Date, true)
	if r.ReturnDate != "" {
		ret, retOK := validateDate(errs, "returnDate", r.ReturnDate, false)
		if ok && retOK && ret.Before(departure) {
			errs.Add("returnDate", "returnDate must not be before date")
		}
	}

	if r.Adults < 0 {
		errs.Add("adults", "adults must be at least 1")
	} else if r.Adults > domain.MaxAdults {
		errs.Add("adults", fmt.Sprintf("adults cannot exceed %d", domain.MaxAdults))
	}

	if !validCabinClasses[r.CabinClass] {
		errs.Add("cabinClass", "cabinClass must be one of: economy, premium_economy, business, first")
	}
	if !validSortOptions[r.SortBy] {
		errs.Add("sortBy", "sortBy must be one of: price, duration, departure")
	}

	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateDate(errs *ValidationErrors, field, value string, required bool) (time.Time, bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return time.Time{}, false
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}, false
	}
	return t, true
}

func (r *SearchFlightsRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must not be negative")
	}
	if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
		errs.Add("filters.maxStops", "maxStops must not be negative")
	}
	for i, airline := range r.Filters.Airlines {
		trimmed := strings.TrimSpace(airline)
		if trimmed == "" {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i), "airline must not be empty")
		}
		r.Filters.Airlines[i] = trimmed
	}
}

// AirportQuery holds the query parameters of an airport search.
type AirportQuery struct {
	Query  string
	Locale string
}

// ParseAirportQuery reads and validates airport search parameters.
// An empty query is allowed and matches every catalog entry up to the limit.
func ParseAirportQuery(query, locale string) (AirportQuery, error) {
	q := AirportQuery{
		Query:  strings.TrimSpace(query),
		Locale: strings.TrimSpace(locale),
	}
	if q.Locale == "" {
		q.Locale = DefaultLocale
	}
	if len(q.Query) > MaxQueryLength {
		return AirportQuery{}, domain.NewValidationError("query",
			fmt.Sprintf("query must be at most %d characters", MaxQueryLength))
	}
	return q, nil
}
