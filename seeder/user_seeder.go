package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"attendance-tracker/models"
	"attendance-tracker/pkg/password"
	"attendance-tracker/repository"
)

// DefaultPassword is the password of every seeded account.
const DefaultPassword = "Password123"

var seedUsers = []models.User{
	{Name: "Admin Manager", Email: "manager@company.com", Role: models.RoleManager, EmployeeID: "MGR001", Department: "Management"},
	{Name: "John Doe", Email: "john@company.com", Role: models.RoleEmployee, EmployeeID: "EMP001", Department: "Engineering"},
	{Name: "Jane Smith", Email: "jane@company.com", Role: models.RoleEmployee, EmployeeID: "EMP002", Department: "HR"},
	{Name: "Bob Johnson", Email: "bob@company.com", Role: models.RoleEmployee, EmployeeID: "EMP003", Department: "Engineering"},
}

// SeedUsers creates the demo accounts that do not exist yet and returns all
// of them, existing ones included.
func SeedUsers(ctx context.Context, userRepo repository.UserRepository) ([]models.User, error) {
	slog.Info("Memulai seeding user...")

	hashedPassword, err := password.HashPassword(DefaultPassword)
	if err != nil {
		return nil, fmt.Errorf("gagal hash password: %w", err)
	}

	out := make([]models.User, 0, len(seedUsers))
	for _, tmpl := range seedUsers {
		existing, err := userRepo.FindUserByEmail(ctx, tmpl.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			slog.Info("User sudah ada, dilewati", "email", tmpl.Email)
			out = append(out, *existing)
			continue
		}

		u := tmpl
		u.Password = hashedPassword
		if err := userRepo.CreateUser(ctx, &u); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				continue
			}
			return nil, fmt.Errorf("gagal menyimpan user %s: %w", u.Email, err)
		}
		slog.Info("User berhasil ditambahkan", "email", u.Email, "role", u.Role)
		out = append(out, u)
	}
	return out, nil
}
