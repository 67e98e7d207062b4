package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/autosave"
	"resumeapi/internal/editor"
	"resumeapi/internal/http/middleware"
	"resumeapi/internal/service"
	"resumeapi/internal/storage"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps domain errors onto the error envelope. Anything unknown is a 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrInvalidInput):
		return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, editor.ErrInvalidChange),
		errors.Is(err, editor.ErrUnknownSection),
		errors.Is(err, editor.ErrUnknownVoiceField):
		return writeError(c, fiber.StatusBadRequest, "INVALID_CHANGE", err.Error())
	case errors.Is(err, service.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "access denied")
	case errors.Is(err, editor.ErrSessionNotFound):
		return writeError(c, fiber.StatusNotFound, "SESSION_NOT_FOUND", "edit session not found")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, autosave.ErrSaveInProgress):
		return writeError(c, fiber.StatusConflict, "SAVE_IN_PROGRESS", "a save is already in progress")
	case errors.Is(err, autosave.ErrClosed):
		return writeError(c, fiber.StatusConflict, "SESSION_CLOSED", "edit session is closed")
	case errors.Is(err, storage.ErrUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "authentication required")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
