package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-finder/internal/adapter/http/response"
	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
)

// writeValidationError writes a 400 response for request validation failures.
func writeValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// writeError maps domain errors to HTTP responses.
// Timeouts are checked before data source failures because the data source
// wraps the context error it gave up on.
func writeError(c echo.Context, fallback *logger.Logger, err error) error {
	var fieldErr *domain.ValidationError
	switch {
	case errors.As(err, &fieldErr):
		return response.FieldError(c, fieldErr.Field, fieldErr.Message)
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return response.Unauthorized(c, response.MsgInvalidToken)
	case errors.Is(err, domain.ErrInvalidPassword):
		return response.Unauthorized(c, response.MsgInvalidPassword)
	case errors.Is(err, domain.ErrUserNotFound):
		return response.NotFound(c, response.MsgUserNotFound)
	case errors.Is(err, domain.ErrUserExists):
		return response.Conflict(c, response.MsgUserExists)
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case domain.IsDataSourceFailure(err):
		logger.FromContext(c.Request().Context(), fallback).Warn().Err(err).Msg("data source failed")
		return response.BadGateway(c)
	default:
		logger.FromContext(c.Request().Context(), fallback).Error().Err(err).Msg("unhandled error")
		return response.InternalServerError(c)
	}
}
