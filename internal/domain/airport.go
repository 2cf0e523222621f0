package domain

// Airport represents an airport as shown in autocomplete and popular lists.
type Airport struct {
	// Code is the short airport identifier (IATA-like). It is the list key and
	// may be empty when the provider omitted it.
	Code string `json:"code"`

	// Name is the display name (e.g., "New York John F. Kennedy")
	Name string `json:"name"`

	// City is a short label taken from the first word of Name
	City string `json:"city"`

	// Country is the display label of the country
	Country string `json:"country"`
}
