package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// CabinClass is the fare tier of a search.
type CabinClass string

// Supported cabin classes.
const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// CabinClassOption pairs a cabin class with its display label.
type CabinClassOption struct {
	Value CabinClass `json:"value"`
	Label string     `json:"label"`
}

// CabinClasses lists every cabin class in display order.
var CabinClasses = []CabinClassOption{
	{Value: CabinEconomy, Label: "Economy"},
	{Value: CabinPremiumEconomy, Label: "Premium Economy"},
	{Value: CabinBusiness, Label: "Business"},
	{Value: CabinFirst, Label: "First Class"},
}

// IsValid reports whether c is one of the supported cabin classes.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// OrDefault returns c, or economy when c is empty.
func (c CabinClass) OrDefault() CabinClass {
	if c == "" {
		return CabinEconomy
	}
	return c
}

// DateLayout is the calendar date format used by searches.
const DateLayout = "2006-01-02"

// MaxAdults is the largest party a single search may request.
const MaxAdults = 9

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FlightSearchParams defines the parameters of a flight search.
type FlightSearchParams struct {
	// Origin is the departure airport code (free-form, e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the arrival airport code (free-form, e.g., "LHR")
	Destination string `json:"destination"`

	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// ReturnDate is set only for round trips
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults,omitempty"`

	// CabinClass is the fare tier (default: economy)
	CabinClass CabinClass `json:"cabinClass,omitempty"`
}

// RouteKey returns the "<origin>-<destination>" lookup key of the search.
func (p FlightSearchParams) RouteKey() string {
	return p.Origin + "-" + p.Destination
}

// SameTrip reports whether two searches cover the same route on the same day.
func (p FlightSearchParams) SameTrip(other FlightSearchParams) bool {
	return p.Origin == other.Origin &&
		p.Destination == other.Destination &&
		p.Date == other.Date
}

// Validate checks the search parameters.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (p *FlightSearchParams) Validate() error {
	if strings.TrimSpace(p.Origin) == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(p.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}

	departure, err := parseDate("date", p.Date)
	if err != nil {
		return err
	}

	if p.ReturnDate != "" {
		ret, err := parseDate("returnDate", p.ReturnDate)
		if err != nil {
			return err
		}
		if ret.Before(departure) {
			return fmt.Errorf("%w: returnDate must not be before date", ErrInvalidRequest)
		}
	}

	if p.Adults < 0 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if p.Adults > MaxAdults {
		return fmt.Errorf("%w: adults cannot exceed %d", ErrInvalidRequest, MaxAdults)
	}

	if p.CabinClass != "" && !p.CabinClass.IsValid() {
		return fmt.Errorf("%w: cabinClass must be one of: economy, premium_economy, business, first; got %q",
			ErrInvalidRequest, p.CabinClass)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *FlightSearchParams) SetDefaults() {
	if p.Adults == 0 {
		p.Adults = 1
	}
	p.CabinClass = p.CabinClass.OrDefault()
}

// parseDate validates a YYYY-MM-DD field and returns the parsed date.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return t, nil
}
