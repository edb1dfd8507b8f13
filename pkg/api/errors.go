package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmshield/swarmshield/pkg/services"
)

// internalErrorMessage is the only string a 500 ever carries. The underlying
// error goes to the log, never to the client.
const internalErrorMessage = "internal server error"

// errorResponse is the envelope for authentication, authorization, transport
// and throttling failures.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// validationResponse is the envelope for 422 field validation failures.
type validationResponse struct {
	Errors map[string][]string `json:"errors"`
}

func errorJSON(c *echo.Context, status int, code, message string) error {
	return c.JSON(status, errorResponse{Error: code, Message: message})
}

func validationJSON(c *echo.Context, fields map[string][]string) error {
	return c.JSON(http.StatusUnprocessableEntity, validationResponse{Errors: fields})
}

func internalJSON(c *echo.Context, err error) error {
	slog.Error("Unhandled request error", "path", c.Request().URL.Path, "error", err)
	return errorJSON(c, http.StatusInternalServerError, "internal_error", internalErrorMessage)
}

// mapServiceError renders service-layer failures. Validation errors become
// 422 field envelopes; anything unexpected becomes the fixed 500.
func mapServiceError(c *echo.Context, err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return validationJSON(c, map[string][]string{validErr.Field: {validErr.Message}})
	}
	if errors.Is(err, services.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, "not_found", "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return errorJSON(c, http.StatusConflict, "already_exists", "resource already exists")
	}
	return internalJSON(c, err)
}
