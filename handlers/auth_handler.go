package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"attendance-tracker/models"
	"attendance-tracker/pkg/paseto"
	"attendance-tracker/pkg/password"
	util "attendance-tracker/pkg/utils"
	"attendance-tracker/repository"
)

type AuthHandler struct {
	userRepo repository.UserRepository
	maker    *paseto.Maker
}

func NewAuthHandler(userRepo repository.UserRepository, maker *paseto.Maker) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		maker:    maker,
	}
}

// Register godoc
// @Summary Register User
// @Description Mendaftarkan user baru (manager only)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.UserRegisterPayload true "Data registrasi user"
// @Success 201 {object} models.RegisterSuccessResponse
// @Failure 400 {object} object{error=string,errors=array} "Invalid request body atau validation error"
// @Failure 409 {object} models.ErrorResponse "Email sudah terdaftar"
// @Failure 500 {object} models.ErrorResponse "Gagal hash password atau gagal mendaftarkan user"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.UserRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal hash password"})
	}

	newUser := &models.User{
		Name:       payload.Name,
		Email:      strings.ToLower(payload.Email),
		Password:   hashedPassword,
		Role:       models.Role(payload.Role),
		EmployeeID: payload.EmployeeID,
		Department: payload.Department,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.userRepo.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email sudah terdaftar"})
		}
		slog.Error("gagal mendaftarkan user", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal mendaftarkan user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User berhasil didaftarkan",
		"user_id": newUser.ID.Hex(),
	})
}

// Login godoc
// @Summary Login User
// @Description Melakukan proses login dan mengembalikan token PASETO jika email dan password valid
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Kredensial untuk Login"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 400 {object} object{error=string,errors=array} "Payload tidak valid atau validation error"
// @Failure 401 {object} models.ErrorResponse "Kombinasi email dan password salah"
// @Failure 429 {object} models.ErrorResponse "Terlalu banyak percobaan login"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.userRepo.FindUserByEmail(ctx, strings.ToLower(payload.Email))
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kombinasi email dan password salah"})
	}

	if !password.CheckPasswordHash(payload.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kombinasi email dan password salah"})
	}

	token, err := h.maker.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user":    user,
	})
}
