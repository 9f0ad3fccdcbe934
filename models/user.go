package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

type User struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Password   string             `json:"-" bson:"password"`
	Role       Role               `json:"role" bson:"role"`
	EmployeeID string             `json:"employee_id" bson:"employee_id"`
	Department string             `json:"department" bson:"department,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

func (u *User) Identity() UserIdentity {
	return UserIdentity{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		EmployeeID: u.EmployeeID,
		Department: u.Department,
		Role:       u.Role,
	}
}

type UserRegisterPayload struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Role       string `json:"role" validate:"required,oneof=employee manager"`
	EmployeeID string `json:"employee_id" validate:"required,max=32"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is the authenticated caller, passed explicitly into service calls.
type Session struct {
	UserID primitive.ObjectID
	Role   Role
}

func (s Session) IsManager() bool {
	return s.Role == RoleManager
}
