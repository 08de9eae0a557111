package quiz

import (
	"context"
	"food-journal-backend/entities"

	"gorm.io/gorm"
)

type (
	QuizRepository interface {
		SaveResult(ctx context.Context, result *entities.QuizResult) error
		GetLatestResultByUser(ctx context.Context, userID string) (*entities.QuizResult, error)
	}

	quizRepository struct {
		db *gorm.DB
	}
)

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) SaveResult(ctx context.Context, result *entities.QuizResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *quizRepository) GetLatestResultByUser(ctx context.Context, userID string) (*entities.QuizResult, error) {
	var result entities.QuizResult
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
