package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs HTTP requests.
// Before calling the handler it stores a request-scoped logger carrying the
// request id in the request context, so downstream code can fetch it with
// logger.FromContext. On completion it logs method, path, status and duration.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = logger.Nop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqID := GetRequestID(c)

			scoped := log
			if reqID != "" {
				scoped = log.WithRequestID(reqID)
			}
			req := c.Request()
			c.SetRequest(req.WithContext(logger.IntoContext(req.Context(), scoped)))

			if err := next(c); err != nil {
				// Let Echo's error handler write the response
				c.Error(err)
			}

			res := c.Response()
			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			if user, ok := UserFromContext(c); ok {
				event = event.Str("user_id", user.UserID)
			}

			event.
				Str("request_id", reqID).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
