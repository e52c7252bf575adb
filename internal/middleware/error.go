package middleware

import (
	"errors"
	"net/http"

	"pathpilot/internal/domain"
	"pathpilot/internal/dto"
	"pathpilot/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is the centralized fiber error handler. Every failure is
// rendered as {"error": "<message>"}; the message is the stringified cause.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		// Handle fiber errors (routing, body limit)
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("path", c.Path()),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Error: fiberErr.Message})
		}

		statusCode := mapErrorToHTTPStatus(err)
		log.Error("Request failed",
			zap.String("code", string(domain.CodeOf(err))),
			zap.String("path", c.Path()),
			zap.Int("status", statusCode),
			zap.Error(err),
		)
		return c.Status(statusCode).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}

// mapErrorToHTTPStatus maps domain errors to HTTP status codes. Only
// malformed input is a client error; every other failure is a 500.
func mapErrorToHTTPStatus(err error) int {
	switch domain.CodeOf(err) {
	case domain.CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
