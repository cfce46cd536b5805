// Package repository defines the persistence interfaces the use cases
// depend on, keeping the domain free of any database driver details.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup. Use cases
// translate it into the AppError taxonomy before it reaches the delivery
// layer.
var ErrUserNotFound = errors.New("user not found")

// UserAccount is the admin listing view: a user joined with the name of
// the company it belongs to, if any.
type UserAccount struct {
	User        *entity.User
	CompanyName *string
}

// UserRepository persists and retrieves users.
type UserRepository interface {
	// Create persists a new user. Returns a conflict AppError when the
	// username or email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDForUpdate retrieves a user by ID while holding a row-level
	// write lock. Only meaningful inside a TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateBalance sets the user's TAP balance.
	UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error

	// List returns all users with their company names, newest first.
	List(ctx context.Context) ([]*UserAccount, error)

	// Delete removes a user. Returns ErrUserNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
