package dto

import (
	"time"

	"shophub_backend/internal/models"
)

type UserResponse struct {
	ID        string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Mobile:    user.Mobile,
		CreatedAt: user.CreatedAt,
	}
}

// UpdateProfileRequest carries optional fields; nil means "leave unchanged".
type UpdateProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Mobile   *string `json:"mobile" validate:"omitempty,mobile"`
}
