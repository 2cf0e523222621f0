package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
)

// CORS returns middleware that answers preflight requests and sets
// cross-origin headers for the given origins. "*" allows any origin.
// Register it with e.Pre so preflights are answered before routing.
func CORS(allowedOrigins []string) echo.MiddlewareFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         600,
	})
	return echo.WrapMiddleware(c.Handler)
}
