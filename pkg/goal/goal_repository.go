package goal

import (
	"context"
	"food-journal-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	GoalRepository interface {
		SaveGoal(ctx context.Context, goal *entities.MonthlyGoal) error
		GetGoalByUser(ctx context.Context, userID string) (*entities.MonthlyGoal, error)
	}

	goalRepository struct {
		db *gorm.DB
	}
)

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) SaveGoal(ctx context.Context, goal *entities.MonthlyGoal) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"target", "updated_at"}),
	}).Create(goal).Error
}

func (r *goalRepository) GetGoalByUser(ctx context.Context, userID string) (*entities.MonthlyGoal, error) {
	var goal entities.MonthlyGoal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}
