// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies an account. Admins bypass capability checks entirely,
// regular users are gated per capability flag, and motivazional accounts
// only exist to serve the quote subdomain.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleUser         Role = "user"
	RoleMotivazional Role = "motivazional"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleMotivazional:
		return true
	}

	return false
}

// Capability is one of the per-user feature gates.
type Capability string

const (
	CapabilityWallet    Capability = "wallet"
	CapabilityAnalytics Capability = "analytics"
	CapabilityPOS       Capability = "pos"
)

// User is the central identity entity. Its TAP balance is mutated only by
// ledger operations; the non-negative invariant is enforced at transfer
// time, never at the schema level.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CompanyID    *uuid.UUID // nil when the user is not affiliated with a company

	// Independent capability flags. Role admin bypasses all three.
	CanAccessWallet    bool
	CanAccessAnalytics bool
	CanAccessPOS       bool

	BalanceTap    int64
	LoyaltyPoints int

	// Protected marks the bootstrap admin, which can never be deleted.
	Protected bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCapability reports whether the user may use the given capability,
// taking the admin bypass into account.
func (u *User) HasCapability(capability Capability) bool {
	if u.Role == RoleAdmin {
		return true
	}

	switch capability {
	case CapabilityWallet:
		return u.CanAccessWallet
	case CapabilityAnalytics:
		return u.CanAccessAnalytics
	case CapabilityPOS:
		return u.CanAccessPOS
	}

	return false
}
