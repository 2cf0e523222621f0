package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error writes an ErrorDetail with the given status.
func Error(c echo.Context, status int, code, message string) error {
	return c.JSON(status, &ErrorDetail{Code: code, Message: message})
}

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return BadRequest(c, MsgInvalidRequestBody)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeValidationError, message)
}

// FieldError writes a 400 validation response for a single field.
func FieldError(c echo.Context, field, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
		Details: map[string]string{field: message},
	})
}

// Unauthorized writes a 401 Unauthorized response.
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, CodeNotFound, message)
}

// Conflict writes a 409 Conflict response.
func Conflict(c echo.Context, message string) error {
	return Error(c, http.StatusConflict, CodeConflict, message)
}

// BadGateway writes a 502 Bad Gateway response for data source failures.
func BadGateway(c echo.Context) error {
	return Error(c, http.StatusBadGateway, CodeDataSourceUnavailable, MsgDataSourceUnavailable)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return Error(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return Error(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError)
}
