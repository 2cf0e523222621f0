package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-finder/internal/adapter/http/response"
	"github.com/flight-search/flight-finder/internal/domain"
)

const (
	// AuthorizationHeader carries the bearer token.
	AuthorizationHeader = "Authorization"

	bearerPrefix = "Bearer "
	userKey      = "auth_user"
	tokenKey     = "auth_token"
)

// TokenResolver resolves a session token to its user.
type TokenResolver interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// RequireAuth rejects requests without a valid bearer token with 401.
func RequireAuth(resolver TokenResolver) echo.MiddlewareFunc {
	return authenticate(resolver, true)
}

// OptionalAuth attaches the user when a valid bearer token is supplied and
// lets anonymous requests through. An invalid token is treated as anonymous.
func OptionalAuth(resolver TokenResolver) echo.MiddlewareFunc {
	return authenticate(resolver, false)
}

func authenticate(resolver TokenResolver, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c.Request().Header.Get(AuthorizationHeader))
			if token == "" {
				if required {
					return response.Unauthorized(c, response.MsgMissingToken)
				}
				return next(c)
			}

			user, err := resolver.CurrentUser(c.Request().Context(), token)
			if err != nil {
				if !required {
					return next(c)
				}
				if errors.Is(err, domain.ErrUnauthorized) {
					return response.Unauthorized(c, response.MsgInvalidToken)
				}
				return response.InternalServerError(c)
			}

			c.Set(userKey, user)
			c.Set(tokenKey, token)
			return next(c)
		}
	}
}

// BearerToken extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userKey).(*domain.User)
	return user, ok && user != nil
}

// TokenFromContext returns the bearer token of an authenticated request.
func TokenFromContext(c echo.Context) string {
	token, _ := c.Get(tokenKey).(string)
	return token
}
