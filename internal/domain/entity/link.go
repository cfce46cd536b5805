package entity

import (
	"time"

	"github.com/google/uuid"
)

// Link is a company-owned redirect entity. Exactly one of URL and
// SelectorID must be set; this is validated at write time because the
// schema cannot express the exclusivity.
type Link struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Name        string
	Description string
	URL         *string    // direct destination
	SelectorID  *uuid.UUID // indirect destination via a selector
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
}

// Selector is a named, independently updatable redirect target. Any number
// of links may point at it, so updating its URL repoints every already
// printed QR code at once without touching the links themselves.
type Selector struct {
	ID          uuid.UUID
	Name        string
	RedirectURL string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
