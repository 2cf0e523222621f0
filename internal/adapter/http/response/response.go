// Package response provides standardized HTTP response builders for the flight finder API.
// Every error body has the same {code, message, details} shape.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest        = "invalid_request"
	CodeValidationError       = "validation_error"
	CodeUnauthorized          = "unauthorized"
	CodeNotFound              = "not_found"
	CodeConflict              = "conflict"
	CodeDataSourceUnavailable = "data_source_unavailable"
	CodeTimeout               = "timeout"
	CodeInternalError         = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody    = "Failed to parse request body"
	MsgValidationFailed      = "Request validation failed"
	MsgMissingToken          = "Authorization token is required"
	MsgInvalidToken          = "Invalid or expired token"
	MsgInvalidPassword       = "Invalid password"
	MsgUserNotFound          = "User not found"
	MsgUserExists            = "User already exists with this user_id or email"
	MsgDataSourceUnavailable = "Flight data is currently unavailable"
	MsgTimeout               = "Request timed out"
	MsgRequestCancelled      = "Request was cancelled"
	MsgInternalError         = "An unexpected error occurred"
)

// MessageResponse carries a single informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes a 201 Created response with the given data.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// Message writes a 200 OK response with a message body.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, &MessageResponse{Message: message})
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
