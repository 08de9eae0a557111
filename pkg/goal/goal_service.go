package goal

import (
	"context"
	"errors"
	"food-journal-backend/domain"
	"food-journal-backend/entities"
	"food-journal-backend/pkg/journal"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultMonthlyGoal is used until the user saves a goal of their own.
const DefaultMonthlyGoal = 5

type (
	GoalService interface {
		SaveGoal(ctx context.Context, req domain.SaveGoalRequest, userID string) error
		GetGoal(ctx context.Context, userID string) (domain.GoalResponse, error)
		GetMonthlyProgress(ctx context.Context, userID string) (domain.ProgressResponse, error)
	}

	goalService struct {
		goalRepository    GoalRepository
		journalRepository journal.JournalRepository
	}
)

func NewGoalService(goalRepository GoalRepository, journalRepository journal.JournalRepository) GoalService {
	return &goalService{
		goalRepository:    goalRepository,
		journalRepository: journalRepository,
	}
}

func (s *goalService) SaveGoal(ctx context.Context, req domain.SaveGoalRequest, userID string) error {
	if req.MonthlyGoal < 1 || req.MonthlyGoal > 50 {
		return domain.ErrInvalidGoalValue
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.goalRepository.SaveGoal(ctx, &entities.MonthlyGoal{
		ID:     uuid.New(),
		UserID: userUUID,
		Target: req.MonthlyGoal,
	})
}

func (s *goalService) currentTarget(ctx context.Context, userID string) (int, error) {
	goal, err := s.goalRepository.GetGoalByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultMonthlyGoal, nil
		}
		return 0, err
	}
	return goal.Target, nil
}

func (s *goalService) GetGoal(ctx context.Context, userID string) (domain.GoalResponse, error) {
	target, err := s.currentTarget(ctx, userID)
	if err != nil {
		return domain.GoalResponse{}, err
	}
	return domain.GoalResponse{MonthlyGoal: target}, nil
}

func (s *goalService) GetMonthlyProgress(ctx context.Context, userID string) (domain.ProgressResponse, error) {
	target, err := s.currentTarget(ctx, userID)
	if err != nil {
		return domain.ProgressResponse{}, err
	}

	// Progress counts over the whole month, so the unfiltered set is used.
	foodEntries, err := s.journalRepository.GetEntriesByUser(ctx, userID)
	if err != nil {
		return domain.ProgressResponse{}, err
	}

	return MonthlyProgress(foodEntries, target, time.Now()), nil
}
