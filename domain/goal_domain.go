package domain

import "errors"

var (
	MessageSuccessSaveGoal    = "monthly goal saved successfully"
	MessageSuccessGetGoal     = "monthly goal retrieved successfully"
	MessageSuccessGetProgress = "monthly progress retrieved successfully"

	MessageFailedSaveGoal    = "failed to save monthly goal"
	MessageFailedGetGoal     = "failed to retrieve monthly goal"
	MessageFailedGetProgress = "failed to retrieve monthly progress"

	ErrInvalidGoalValue = errors.New("monthly goal must be between 1 and 50")
)

type (
	SaveGoalRequest struct {
		MonthlyGoal int `json:"monthly_goal" validate:"required,min=1,max=50"`
	}

	GoalResponse struct {
		MonthlyGoal int `json:"monthly_goal"`
	}

	ProgressResponse struct {
		Month             string  `json:"month"`
		NewFoodsThisMonth int     `json:"new_foods_this_month"`
		MonthlyGoal       int     `json:"monthly_goal"`
		Percentage        float64 `json:"percentage"`
		IsGoalCompleted   bool    `json:"is_goal_completed"`
		Circumference     float64 `json:"circumference"`
		Offset            float64 `json:"offset"`
		DaysLeft          int     `json:"days_left"`
	}
)
