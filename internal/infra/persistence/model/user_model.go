// Package model contains the GORM-specific structs mirroring the
// database schema. Domain entities never leak GORM tags; the repositories
// map between the two.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). balance_tap has no check constraint on purpose: the
// non-negative invariant is enforced by the ledger at transfer time.
type UserModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username           string     `gorm:"type:varchar(64);unique;not null"`
	Email              string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash       string     `gorm:"type:varchar(255);not null"`
	Role               string     `gorm:"type:varchar(16);not null;default:'user'"`
	CompanyID          *uuid.UUID `gorm:"type:uuid;index"`
	CanAccessWallet    bool       `gorm:"not null;default:false"`
	CanAccessAnalytics bool       `gorm:"not null;default:false"`
	CanAccessPOS       bool       `gorm:"column:can_access_pos;not null;default:false"`
	BalanceTap         int64      `gorm:"not null;default:0"`
	LoyaltyPoints      int        `gorm:"not null;default:0"`
	Protected          bool       `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Company *CompanyModel `gorm:"foreignKey:CompanyID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
