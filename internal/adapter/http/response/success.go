package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status     string `json:"status"`
	DataSource string `json:"dataSource,omitempty"`
}

// Health writes a health check response.
func Health(c echo.Context, dataSource string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:     "ok",
		DataSource: dataSource,
	})
}
