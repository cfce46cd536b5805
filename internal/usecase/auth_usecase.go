// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
)

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput returns the signed token together with the claims it carries,
// which the frontend uses as its user object.
type AuthOutput struct {
	Token string          `json:"token"`
	User  *service.Claims `json:"user"`
}

// AuthUsecase defines authentication operations.
type AuthUsecase interface {
	// Register creates a regular user account and logs it in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
