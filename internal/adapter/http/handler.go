package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-finder/internal/adapter/http/middleware"
	"github.com/flight-search/flight-finder/internal/adapter/http/response"
	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
	"github.com/flight-search/flight-finder/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	search     usecase.SearchOrchestrator
	recent     usecase.RecentSearches
	dataSource string
	log        *logger.Logger
}

// NewFlightHandler creates a new FlightHandler.
// dataSource is reported by the health check.
func NewFlightHandler(search usecase.SearchOrchestrator, recent usecase.RecentSearches, dataSource string, log *logger.Logger) *FlightHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &FlightHandler{
		search:     search,
		recent:     recent,
		dataSource: dataSource,
		log:        log.WithComponent("http"),
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search flights for a route and date. Signed-in users get the search saved to their recent searches.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} domain.FlightSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Data source unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return writeValidationError(c, err)
	}

	ctx := c.Request().Context()
	result, err := h.search.SearchFlights(ctx, ToDomainParams(&req), ToSearchOptions(&req))
	if err != nil {
		return writeError(c, h.log, err)
	}

	if user, ok := middleware.UserFromContext(c); ok && h.recent != nil {
		if err := h.recent.Add(ctx, user.UserID, result.SearchParams); err != nil {
			logger.FromContext(ctx, h.log).Warn().Err(err).
				Str("user_id", user.UserID).
				Msg("failed to record recent search")
		}
	}

	return response.OK(c, result)
}

// RecentSearches handles GET /api/v1/flights/recent
//
// @Summary List recent searches
// @Description Returns the signed-in user's most recent distinct searches, newest first.
// @Tags flights
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} domain.FlightSearchParams
// @Failure 401 {object} response.ErrorDetail "Unauthorized"
// @Router /api/v1/flights/recent [get]
func (h *FlightHandler) RecentSearches(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return response.Unauthorized(c, response.MsgMissingToken)
	}

	searches, err := h.recent.List(c.Request().Context(), user.UserID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, searches)
}

// CabinClasses handles GET /api/v1/flights/cabin-classes
//
// @Summary List cabin classes
// @Tags flights
// @Produce json
// @Success 200 {array} domain.CabinClassOption
// @Router /api/v1/flights/cabin-classes [get]
func (h *FlightHandler) CabinClasses(c echo.Context) error {
	return response.OK(c, domain.CabinClasses)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c, h.dataSource)
}
