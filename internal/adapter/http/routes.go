package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-finder/internal/adapter/http/middleware"
)

// Handlers groups the handlers mounted by RegisterRoutes.
type Handlers struct {
	Flights  *FlightHandler
	Airports *AirportHandler
	Auth     *AuthHandler
}

// RegisterRoutes registers all API routes under a versioned group.
// Authentication is attached per route: required for account and recent-search
// endpoints, optional for flight search.
func RegisterRoutes(e *echo.Echo, h Handlers, mw ...echo.MiddlewareFunc) {
	e.GET("/health", h.Flights.Health)

	api := e.Group("/api/v1", mw...)
	requireAuth := middleware.RequireAuth(h.Auth.Resolver())
	optionalAuth := middleware.OptionalAuth(h.Auth.Resolver())

	airports := api.Group("/airports")
	airports.GET("/search", h.Airports.Search)
	airports.GET("/popular", h.Airports.Popular)

	flights := api.Group("/flights")
	flights.POST("/search", h.Flights.SearchFlights, optionalAuth)
	flights.GET("/recent", h.Flights.RecentSearches, requireAuth)
	flights.GET("/cabin-classes", h.Flights.CabinClasses)

	auth := api.Group("/auth")
	auth.POST("/sign-up", h.Auth.SignUp)
	auth.POST("/sign-in", h.Auth.SignIn)
	auth.GET("/me", h.Auth.Me, requireAuth)
	auth.POST("/logout", h.Auth.Logout, requireAuth)
}
