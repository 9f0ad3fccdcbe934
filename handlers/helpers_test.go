package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"attendance-tracker/pkg/attendance"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{attendance.ErrDuplicateCheckIn, fiber.StatusConflict},
		{attendance.ErrMarkedAbsent, fiber.StatusConflict},
		{attendance.ErrAlreadyCheckedOut, fiber.StatusConflict},
		{attendance.ErrNoCheckInFound, fiber.StatusBadRequest},
		{attendance.ErrInvalidInterval, fiber.StatusBadRequest},
		{attendance.ErrQRCodeExpired, fiber.StatusBadRequest},
		{fmt.Errorf("%w: from setelah to", attendance.ErrInvalidRange), fiber.StatusBadRequest},
		{attendance.ErrNotFound, fiber.StatusNotFound},
		{attendance.ErrForbidden, fiber.StatusForbidden},
		{errors.New("connection reset"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
