package dto

import (
	"time"

	"resumebuilder_backend/internal/models"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=15"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=15"`
	ProfileImageURL string `json:"profileImageUrl" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	ProfileImageURL  string    `json:"profileImageUrl"`
	EmailVerified    bool      `json:"emailVerified"`
	SubscriptionPlan string    `json:"subscriptionPlan"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// LoginResponse carries the access token together with the account view.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// NewUserResponse maps a user model to its public view.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		ProfileImageURL:  u.ProfileImageURL,
		EmailVerified:    u.EmailVerified,
		SubscriptionPlan: u.SubscriptionPlan,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
