package entities

import (
	"github.com/google/uuid"
)

type QuizResult struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"index" json:"user_id"`
	Answers         string    `gorm:"type:text" json:"answers"`
	Duration        string    `json:"duration"`
	Frequency       string    `json:"frequency"`
	Recommendations string    `gorm:"type:text" json:"recommendations"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
