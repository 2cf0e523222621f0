package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-finder/internal/adapter/http/middleware"
	"github.com/flight-search/flight-finder/internal/adapter/http/response"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
	"github.com/flight-search/flight-finder/internal/usecase"
)

// MsgLoggedOut is returned by a successful logout.
const MsgLoggedOut = "Logged out successfully"

// AuthHandler handles account endpoints.
type AuthHandler struct {
	auth usecase.AuthUseCase
	log  *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth usecase.AuthUseCase, log *logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthHandler{auth: auth, log: log.WithComponent("http")}
}

// SignUp handles POST /api/v1/auth/sign-up
//
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body usecase.SignUpInput true "Account details"
// @Success 201 {object} domain.Session
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "User already exists"
// @Router /api/v1/auth/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var in usecase.SignUpInput
	if err := c.Bind(&in); err != nil {
		return response.InvalidRequestBody(c)
	}

	session, err := h.auth.SignUp(c.Request().Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.Created(c, session)
}

// SignIn handles POST /api/v1/auth/sign-in
//
// @Summary Sign in
// @Description Sign in with a user id or email and a password.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body usecase.SignInInput true "Credentials"
// @Success 200 {object} domain.Session
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "Invalid password"
// @Failure 404 {object} response.ErrorDetail "User not found"
// @Router /api/v1/auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var in usecase.SignInInput
	if err := c.Bind(&in); err != nil {
		return response.InvalidRequestBody(c)
	}

	session, err := h.auth.SignIn(c.Request().Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.OK(c, session)
}

// Me handles GET /api/v1/auth/me
//
// @Summary Current user
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} domain.User
// @Failure 401 {object} response.ErrorDetail "Unauthorized"
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return response.Unauthorized(c, response.MsgMissingToken)
	}
	return response.OK(c, user)
}

// Logout handles POST /api/v1/auth/logout
//
// @Summary Sign out
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorDetail "Unauthorized"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), middleware.TokenFromContext(c)); err != nil {
		return writeError(c, h.log, err)
	}
	return response.Message(c, MsgLoggedOut)
}

// Resolver exposes the session lookup used by the auth middleware.
func (h *AuthHandler) Resolver() middleware.TokenResolver {
	return h.auth
}
