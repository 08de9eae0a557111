package entities

import (
	"github.com/google/uuid"
)

// MonthlyGoal is the single per-user target of new foods to try within
// the current calendar month. Only the current value is kept.
type MonthlyGoal struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	Target int       `json:"target"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
