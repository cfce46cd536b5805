package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel mirrors the append-only 'transactions' table. Rows are
// inserted in the same transaction as the balance mutation they record
// and never touched again.
type TransactionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	TapChange    int64     `gorm:"not null"`
	PointsChange int       `gorm:"not null;default:0"`
	Type         string    `gorm:"type:varchar(32);not null"`
	Description  string    `gorm:"type:varchar(255)"`
	Timestamp    time.Time `gorm:"not null;index"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
