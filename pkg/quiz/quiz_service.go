package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"food-journal-backend/domain"
	"food-journal-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	QuizService interface {
		SubmitQuiz(ctx context.Context, req domain.QuizSubmissionRequest, userID string) (domain.QuizResultResponse, error)
		GetLatestResult(ctx context.Context, userID string) (domain.QuizResultResponse, error)
	}

	quizService struct {
		quizRepository QuizRepository
	}
)

func NewQuizService(quizRepository QuizRepository) QuizService {
	return &quizService{quizRepository: quizRepository}
}

func (s *quizService) SubmitQuiz(ctx context.Context, req domain.QuizSubmissionRequest, userID string) (domain.QuizResultResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.QuizResultResponse{}, domain.ErrParseUUID
	}

	plan, err := GeneratePlan(req.Answers)
	if err != nil {
		return domain.QuizResultResponse{}, err
	}

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		return domain.QuizResultResponse{}, err
	}
	recommendationsJSON, err := json.Marshal(plan.Recommendations)
	if err != nil {
		return domain.QuizResultResponse{}, err
	}

	result := &entities.QuizResult{
		ID:              uuid.New(),
		UserID:          userUUID,
		Answers:         string(answersJSON),
		Duration:        plan.Duration,
		Frequency:       plan.Frequency,
		Recommendations: string(recommendationsJSON),
	}

	if err := s.quizRepository.SaveResult(ctx, result); err != nil {
		return domain.QuizResultResponse{}, err
	}

	return domain.QuizResultResponse{
		Duration:        plan.Duration,
		Frequency:       plan.Frequency,
		Recommendations: plan.Recommendations,
		SubmittedAt:     result.CreatedAt,
	}, nil
}

func (s *quizService) GetLatestResult(ctx context.Context, userID string) (domain.QuizResultResponse, error) {
	result, err := s.quizRepository.GetLatestResultByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QuizResultResponse{}, domain.ErrQuizResultNotFound
		}
		return domain.QuizResultResponse{}, err
	}

	var recommendations []string
	if err := json.Unmarshal([]byte(result.Recommendations), &recommendations); err != nil {
		return domain.QuizResultResponse{}, err
	}

	return domain.QuizResultResponse{
		Duration:        result.Duration,
		Frequency:       result.Frequency,
		Recommendations: recommendations,
		SubmittedAt:     result.CreatedAt,
	}, nil
}
