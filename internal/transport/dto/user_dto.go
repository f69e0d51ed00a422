package dto

import (
	"naukri-api/internal/models"

	"github.com/google/uuid"
)

// ProfileFields are the optional attributes a profile update may change. Nil means "leave as is".
type ProfileFields struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	Education *string `json:"education" validate:"omitempty,max=200"`
	Skills    *string `json:"skills" validate:"omitempty,max=500"`
	Company   *string `json:"company" validate:"omitempty,max=200"`
	Age       *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
}

// RegisterRequest defines the structure for creating a new account.
type RegisterRequest struct {
	Name      string      `json:"name" validate:"required,max=100"`
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required"`
	Role      models.Role `json:"role" validate:"required,oneof=candidate recruiter admin"`
	Education string      `json:"education" validate:"omitempty,max=200"`
	Skills    string      `json:"skills" validate:"omitempty,max=500"`
	Company   string      `json:"company" validate:"omitempty,max=200"`
	Age       *int        `json:"age" validate:"omitempty,gte=0,lte=150"`
	Phone     string      `json:"phone" validate:"omitempty,max=30"`
}

// LoginRequest carries the credentials checked against the identity store.
type LoginRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role" validate:"required,oneof=candidate recruiter admin"`
}

// GetUserByIdRequest defines the structure for getting a user by id.
type GetUserByIdRequest struct {
	ID uuid.UUID `json:"-" validate:"required"` // From path
}

// UpdateProfileRequest is the self-service profile update.
type UpdateProfileRequest struct {
	ID uuid.UUID `json:"-" validate:"required"` // From path
	ProfileFields
}

// AdminUpdateUserRequest lets an admin edit the account identified by (email, role).
type AdminUpdateUserRequest struct {
	AdminID uuid.UUID   `json:"admin_id" validate:"required"`
	Email   string      `json:"email" validate:"required,email"`
	Role    models.Role `json:"role" validate:"required,oneof=candidate recruiter admin"`
	ProfileFields
}

// BanUserRequest removes every account registered under Email.
type BanUserRequest struct {
	AdminID uuid.UUID `json:"admin_id" validate:"required"`
	Email   string    `json:"email" validate:"required,email"`
}

type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Education string      `json:"education,omitempty"`
	Skills    string      `json:"skills,omitempty"`
	Company   string      `json:"company,omitempty"`
	Age       *int        `json:"age,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

type BanUserResponse struct {
	Email   string         `json:"email"`
	Removed []UserResponse `json:"removed"`
}
