package model

import (
	"time"

	"github.com/google/uuid"
)

// LinkModel mirrors the 'links' table. URL and SelectorID are both
// nullable at the schema level; the exactly-one-of rule lives in the
// admin use case.
type LinkModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:text"`
	URL         *string    `gorm:"type:text"`
	SelectorID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt   time.Time

	Company  *CompanyModel  `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Selector *SelectorModel `gorm:"foreignKey:SelectorID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (LinkModel) TableName() string {
	return "links"
}

// SelectorModel mirrors the 'selectors' table.
type SelectorModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	RedirectURL string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SelectorModel) TableName() string {
	return "selectors"
}

// KeychainModel mirrors the 'keychains' table. The number is stored
// without the QR prefix.
type KeychainModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	KeychainNumber string    `gorm:"type:varchar(64);unique;not null"`
	LinkID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time

	Link *LinkModel `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (KeychainModel) TableName() string {
	return "keychains"
}
