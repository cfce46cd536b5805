package model

import (
	"time"

	"github.com/google/uuid"
)

// ClickModel mirrors the 'analytics' table: one rolling counter row per
// (link, ip, keychain, source) visitor key. The composite unique index is
// what the recorder's INSERT ... ON CONFLICT targets, so the idempotent
// counter works under concurrent clicks.
//
// KeychainID stores uuid.Nil, never NULL, for keychain-less clicks:
// Postgres treats NULLs as distinct inside unique indexes, which would
// allow duplicate rows for the same visitor.
type ClickModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LinkID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_analytics_visitor_key;index"`
	IPAddress  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_analytics_visitor_key"`
	KeychainID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_analytics_visitor_key"`
	Source     string    `gorm:"type:varchar(8);not null;uniqueIndex:idx_analytics_visitor_key"`

	UserAgent string `gorm:"type:text"`
	Referrer  string `gorm:"type:text"`

	Country *string  `gorm:"type:varchar(64)"`
	City    *string  `gorm:"type:varchar(100)"`
	Lat     *float64 `gorm:"type:double precision"`
	Lon     *float64 `gorm:"type:double precision"`

	OSName      *string `gorm:"type:varchar(64)"`
	BrowserName *string `gorm:"type:varchar(64)"`
	DeviceType  *string `gorm:"type:varchar(32)"`

	ClickCount int64     `gorm:"not null;default:1"`
	FirstSeen  time.Time `gorm:"not null"`
	LastSeen   time.Time `gorm:"not null;index"`

	Link *LinkModel `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ClickModel) TableName() string {
	return "analytics"
}
