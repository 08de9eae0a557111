package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodEntry struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID             uuid.UUID `gorm:"index" json:"user_id"`
	Name               string    `json:"name"`
	TasteRating        int       `json:"taste_rating"`
	SatisfactionRating int       `json:"satisfaction_rating"`
	FullnessRating     int       `json:"fullness_rating"`
	Notes              string    `json:"notes,omitempty" gorm:"type:text"`
	Date               time.Time `gorm:"type:timestamp" json:"date"`
	IsNewFood          bool      `json:"is_new_food"`
	AiInsights         string    `json:"ai_insights,omitempty" gorm:"type:text"`

	Categories []EntryCategory `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE" json:"categories"`
	User       *User           `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

// EntryCategory keeps the labels a user attached to an entry. Position
// preserves the order the labels were typed in.
type EntryCategory struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	EntryID  uuid.UUID `gorm:"index" json:"entry_id"`
	Label    string    `json:"label"`
	Position int       `json:"position"`
}

// CategoryLabels returns the labels in insertion order.
func (e FoodEntry) CategoryLabels() []string {
	if len(e.Categories) == 0 {
		return nil
	}
	labels := make([]string, 0, len(e.Categories))
	for _, c := range e.Categories {
		labels = append(labels, c.Label)
	}
	return labels
}
