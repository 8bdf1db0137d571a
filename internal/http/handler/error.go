package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"identityapi/internal/apierror"
	"identityapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	TraceID     string `json:"traceId,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func traceIDFromCtx(c *fiber.Ctx) string {
	sc := trace.SpanFromContext(c.UserContext()).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "APP-60001", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
// - description: optional detail safe to show to the caller
func writeError(c *fiber.Ctx, status int, code, message, description string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:        code,
			Message:     message,
			Description: description,
			TraceID:     traceIDFromCtx(c),
		},
	}
	return c.Status(status).JSON(res)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Server errors are logged with their cause; the cause never reaches the client.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx, err error) error {
		if apiErr, ok := apierror.From(err); ok {
			if apiErr.IsServerError() {
				log.Error("request_failed",
					zap.String("request_id", requestIDFromCtx(c)),
					zap.String("code", apiErr.Code),
					zap.Error(apiErr.Err),
				)
			}
			return writeError(c, apiErr.Status, apiErr.Code, apiErr.Message, apiErr.Description)
		}

		status := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request", fiberErrorMessage(fiberErr))
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found", "")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed", "")
		case fiber.StatusUnsupportedMediaType:
			return writeError(c, status, "UNSUPPORTED_MEDIA_TYPE", "unsupported media type", "")
		default:
			log.Error("request_failed", zap.String("request_id", requestIDFromCtx(c)), zap.Error(err))
			return writeError(c, status, "INTERNAL_ERROR", "internal server error", "")
		}
	}
}

func fiberErrorMessage(e *fiber.Error) string {
	if e == nil {
		return ""
	}
	return e.Message
}
