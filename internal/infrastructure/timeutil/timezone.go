package timeutil

import (
	"fmt"
	"sync"
	"time"

	// Embedded zone database so mock departures work on hosts without tzdata.
	_ "time/tzdata"
)

// locationCache stores cached timezone locations.
var locationCache sync.Map

// UTC is the Coordinated Universal Time zone name.
const UTC = "UTC"

// GetLocation returns a cached timezone location.
// An empty name resolves to UTC.
func GetLocation(name string) (*time.Location, error) {
	if name == "" {
		name = UTC
	}

	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for known-good timezone names.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// AtClock parses a YYYY-MM-DD date in loc and sets the wall clock to hour:minute.
func AtClock(date string, loc *time.Location, hour, minute int) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
