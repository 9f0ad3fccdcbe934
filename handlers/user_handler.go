package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"attendance-tracker/models"
	"attendance-tracker/repository"
)

type UserHandler struct {
	userRepo repository.UserRepository
}

func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// GetUserByID godoc
// @Summary Get User by ID
// @Description Mendapatkan detail user berdasarkan ID (user hanya bisa melihat data diri sendiri, manager bisa melihat semua)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.User "User berhasil ditemukan"
// @Failure 400 {object} models.ErrorResponse "Invalid user ID format"
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}

	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID user tidak valid"})
	}

	if !session.IsManager() && session.UserID != objID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "akses ditolak. anda hanya dapat melihat profile anda sendiri."})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, objID)
	if err != nil {
		return respondError(c, err, "Gagal mengambil data user")
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// GetAllUsers godoc
// @Summary Get All Users
// @Description Daftar user per role, untuk filter karyawan pada laporan (manager only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param role query string false "employee (default) atau manager"
// @Success 200 {array} models.UserIdentity
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	role := models.Role(c.Query("role", string(models.RoleEmployee)))
	if role != models.RoleEmployee && role != models.RoleManager {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "role harus employee atau manager"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := h.userRepo.FindUsersByRole(ctx, role)
	if err != nil {
		return respondError(c, err, "Gagal mengambil data users")
	}

	out := make([]models.UserIdentity, 0, len(users))
	for i := range users {
		out = append(out, users[i].Identity())
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
