package middleware

import (
	"github.com/gofiber/fiber/v2"

	"attendance-tracker/models"
	"attendance-tracker/pkg/paseto"
)

func ManagerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*paseto.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
		}

		if claims.Role != models.RoleManager {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak. Hak akses manager diperlukan"})
		}

		return c.Next()
	}
}
