package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is a tenant. Links belong to exactly one company, and analytics
// access is always scoped to the caller's company.
type Company struct {
	ID          uuid.UUID
	Name        string // unique across the platform
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
