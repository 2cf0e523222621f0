package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-finder/internal/adapter/http/response"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
	"github.com/flight-search/flight-finder/internal/usecase"
)

// AirportHandler handles airport autocomplete endpoints.
type AirportHandler struct {
	search usecase.SearchOrchestrator
	log    *logger.Logger
}

// NewAirportHandler creates a new AirportHandler.
func NewAirportHandler(search usecase.SearchOrchestrator, log *logger.Logger) *AirportHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AirportHandler{search: search, log: log.WithComponent("http")}
}

// Search handles GET /api/v1/airports/search
//
// @Summary Search airports
// @Description Autocomplete airports and cities. Falls back to popular airports when the data source fails.
// @Tags airports
// @Produce json
// @Param query query string false "Free-text query, e.g. new york"
// @Param locale query string false "Locale" default(en-US)
// @Success 200 {array} domain.Airport
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/airports/search [get]
func (h *AirportHandler) Search(c echo.Context) error {
	q, err := ParseAirportQuery(c.QueryParam("query"), c.QueryParam("locale"))
	if err != nil {
		return writeError(c, h.log, err)
	}

	airports, err := h.search.SearchAirportsByQuery(c.Request().Context(), q.Query, q.Locale)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, airports)
}

// Popular handles GET /api/v1/airports/popular
//
// @Summary Popular airports
// @Tags airports
// @Produce json
// @Success 200 {array} domain.Airport
// @Failure 502 {object} response.ErrorDetail "Data source unavailable"
// @Router /api/v1/airports/popular [get]
func (h *AirportHandler) Popular(c echo.Context) error {
	airports, err := h.search.PopularAirports(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, airports)
}
