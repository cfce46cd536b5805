package model

import "github.com/google/uuid"

// PhraseModel mirrors the 'motivational_phrases' table.
type PhraseModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Text     string    `gorm:"column:phrase_text;type:text;not null"`
	Category string    `gorm:"type:varchar(32);not null;index"`
	Author   string    `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (PhraseModel) TableName() string {
	return "motivational_phrases"
}
