package dto

import "github.com/billbook-app/billbook_backend/internal/core/domain"

// SignupRequest registers a new user account.
type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Mobile   *string `json:"mobile"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the authenticated user and a signed bearer token.
type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}
