package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware turns a panic in a handler into a 500.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
	})
}

func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, time.Minute, "Terlalu banyak permintaan. Silakan coba lagi nanti.")
}

// LoginRateLimiter is the stricter limit for password guessing.
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, "Terlalu banyak percobaan login. Coba beberapa saat lagi.")
}

func newLimiter(max int, expiration time.Duration, msg string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": msg})
		},
	})
}
