package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"jobadmin/internal/backend"
	"jobadmin/internal/export"
	"jobadmin/internal/http/middleware"
	"jobadmin/internal/service"
	"jobadmin/internal/session"
	"jobadmin/internal/storage"
	"jobadmin/internal/token"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// okPayload is the body of mutations: the toast text plus the changed record, if any.
type okPayload struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

const msgSessionExpired = "Session expired. Please log in again."

// writeError writes the error envelope. message must be safe to show to the admin.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

func writeOK(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(okPayload{Message: message, Data: data})
}

// respondError maps workflow and backend errors onto the envelope. fallback is the toast text
// when the backend gave no usable message.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var (
		verr   *service.ValidationError
		apiErr *backend.APIError
	)
	switch {
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", verr.Message)
	case errors.Is(err, backend.ErrUnauthorized), errors.Is(err, session.ErrNotFound), errors.Is(err, token.ErrInvalidToken):
		return writeError(c, fiber.StatusUnauthorized, "SESSION_EXPIRED", msgSessionExpired)
	case errors.Is(err, service.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "Only a super admin can do this")
	case errors.Is(err, service.ErrNotPending):
		return writeError(c, fiber.StatusConflict, "NOT_PENDING", "Coupon is no longer pending")
	case errors.Is(err, service.ErrNotApproved):
		return writeError(c, fiber.StatusConflict, "NOT_APPROVED", "Only approved coupons can be assigned")
	case errors.Is(err, service.ErrQuotaExceeded):
		return writeError(c, fiber.StatusConflict, "QUOTA_EXCEEDED", detail(err, service.ErrQuotaExceeded))
	case errors.Is(err, service.ErrNoChange):
		return writeError(c, fiber.StatusConflict, "NO_CHANGE", "Status is already set to this value")
	case errors.Is(err, service.ErrReadOnlyCatalog):
		return writeError(c, fiber.StatusMethodNotAllowed, "READ_ONLY_CATALOG", "This catalog cannot be edited")
	case errors.Is(err, service.ErrLoginRejected):
		return writeError(c, fiber.StatusUnauthorized, "LOGIN_FAILED", detail(err, service.ErrLoginRejected))
	case errors.Is(err, export.ErrUnknownKind):
		return writeError(c, fiber.StatusBadRequest, "UNKNOWN_EXPORT", "Unknown export kind")
	case errors.Is(err, export.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "export not found")
	case errors.Is(err, export.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, storage.ErrNotConfigured):
		return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Exports are not enabled")
	case errors.As(err, &apiErr):
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
		return writeError(c, status, "BACKEND_ERROR", apiErr.Summary(fallback))
	case errors.Is(err, context.DeadlineExceeded), isTransportError(err):
		return writeError(c, fiber.StatusBadGateway, "BACKEND_UNAVAILABLE", "Unable to reach the server. Please try again.")
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", fallback)
}

// detail is the text a sentinel was wrapped with ("sentinel: detail").
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

func isTransportError(err error) bool {
	var uerr interface{ Timeout() bool }
	return errors.As(err, &uerr)
}

// ErrorHandler standardizes errors that escape handlers (routing misses, body parsing, panics).
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "Please log in")
		case fiber.StatusForbidden:
			return writeError(c, status, "FORBIDDEN", "forbidden")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", http.StatusText(status))
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
