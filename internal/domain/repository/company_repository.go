package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/errors"
)

// ErrCompanyNotFound is returned when no company matches the lookup.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository persists and retrieves companies.
type CompanyRepository interface {
	// Create persists a new company. Returns a conflict AppError when the
	// name is already taken.
	Create(ctx context.Context, company *entity.Company) error

	// FindByID retrieves a company by ID, or ErrCompanyNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// List returns all companies ordered by name.
	List(ctx context.Context) ([]*entity.Company, error)
}
