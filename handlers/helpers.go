package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"attendance-tracker/models"
	"attendance-tracker/pkg/attendance"
	"attendance-tracker/pkg/paseto"
)

// requestTimeout bounds every store call made on behalf of one request.
const requestTimeout = 5 * time.Second

func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), requestTimeout)
}

func sessionFrom(c *fiber.Ctx) (models.Session, bool) {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok || claims == nil {
		return models.Session{}, false
	}
	return claims.Session(), true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, attendance.ErrDuplicateCheckIn),
		errors.Is(err, attendance.ErrMarkedAbsent),
		errors.Is(err, attendance.ErrAlreadyCheckedOut):
		return fiber.StatusConflict
	case errors.Is(err, attendance.ErrNoCheckInFound),
		errors.Is(err, attendance.ErrInvalidInterval),
		errors.Is(err, attendance.ErrQRCodeExpired),
		errors.Is(err, attendance.ErrInvalidRange):
		return fiber.StatusBadRequest
	case errors.Is(err, attendance.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, attendance.ErrForbidden):
		return fiber.StatusForbidden
	}
	return fiber.StatusInternalServerError
}

// respondError maps domain errors to their status and message. Anything else
// is logged and reported as a generic 500 with fallback.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		slog.Error(fallback, "path", c.Path(), "error", err)
		return c.Status(status).JSON(fiber.Map{"error": fallback})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
