// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit
// within a single entity.
package service

import (
	"github.com/google/uuid"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
)

// Claims is the identity a bearer token carries. The capability flags are
// baked into the token so request authorization never needs a database
// round trip.
type Claims struct {
	UserID             uuid.UUID   `json:"id"`
	Username           string      `json:"username"`
	Role               entity.Role `json:"role"`
	CompanyID          *uuid.UUID  `json:"company_id"`
	CanAccessWallet    bool        `json:"can_access_wallet"`
	CanAccessAnalytics bool        `json:"can_access_analytics"`
	CanAccessPOS       bool        `json:"can_access_pos"`
}

// HasCapability mirrors entity.User.HasCapability for token-derived
// identities, including the admin bypass.
func (c *Claims) HasCapability(capability entity.Capability) bool {
	if c.Role == entity.RoleAdmin {
		return true
	}

	switch capability {
	case entity.CapabilityWallet:
		return c.CanAccessWallet
	case entity.CapabilityAnalytics:
		return c.CanAccessAnalytics
	case entity.CapabilityPOS:
		return c.CanAccessPOS
	}

	return false
}

// TokenService signs and validates bearer tokens. It abstracts the JWT
// details away from the use cases.
type TokenService interface {
	// Generate creates a signed token carrying the user's claims.
	Generate(user *entity.User) (string, error)

	// Validate parses and verifies a token string, returning its claims.
	Validate(tokenString string) (*Claims, error)
}
