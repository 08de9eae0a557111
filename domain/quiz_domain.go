package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSubmitQuiz    = "quiz submitted successfully"
	MessageSuccessGetQuizResult = "quiz result retrieved successfully"

	MessageFailedSubmitQuiz    = "failed to submit quiz"
	MessageFailedGetQuizResult = "failed to retrieve quiz result"

	ErrQuizResultNotFound = errors.New("quiz result not found")
	ErrInvalidQuizAnswers = errors.New("quiz answers incomplete")
)

type (
	QuizSubmissionRequest struct {
		Answers []string `json:"answers" validate:"required,len=8,dive,required"`
	}

	QuizPlan struct {
		Duration        string   `json:"duration"`
		Frequency       string   `json:"frequency"`
		Recommendations []string `json:"recommendations"`
	}

	QuizResultResponse struct {
		Duration        string    `json:"duration"`
		Frequency       string    `json:"frequency"`
		Recommendations []string  `json:"recommendations"`
		SubmittedAt     time.Time `json:"submitted_at"`
	}
)
