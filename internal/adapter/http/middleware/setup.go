package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
)

// Setup registers the global middleware on the Echo instance in order:
//  1. RequestID, so every later log line carries the id
//  2. RequestLogger, which logs every request including recovered panics
//  3. Recover, closest to the handlers
//
// Call it before registering routes. Authentication is attached per route group.
func Setup(e *echo.Echo, log *logger.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log *logger.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}
