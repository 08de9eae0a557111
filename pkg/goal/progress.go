package goal

import (
	"food-journal-backend/domain"
	"food-journal-backend/entities"
	"math"
	"time"
)

// ProgressRingRadius is the radius of the progress ring drawn by clients.
const ProgressRingRadius = 90.0

// MonthlyProgress computes goal progress over the full, unfiltered entry
// set. An entry counts only when flagged as a new food AND dated in the
// same calendar month and year as now; this is not a rolling 30-day window.
// The percentage clamps at 100 and a non-positive target yields 0 instead
// of dividing by zero.
func MonthlyProgress(entries []entities.FoodEntry, target int, now time.Time) domain.ProgressResponse {
	newFoodsThisMonth := 0
	for _, entry := range entries {
		if entry.IsNewFood && entry.Date.Month() == now.Month() && entry.Date.Year() == now.Year() {
			newFoodsThisMonth++
		}
	}

	percentage := 0.0
	if target > 0 {
		percentage = math.Min(float64(newFoodsThisMonth)/float64(target)*100, 100)
	}

	circumference := 2 * math.Pi * ProgressRingRadius
	offset := circumference * (1 - percentage/100)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthEnd := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	daysLeft := int(monthEnd.Sub(today).Hours() / 24)

	return domain.ProgressResponse{
		Month:             now.Month().String(),
		NewFoodsThisMonth: newFoodsThisMonth,
		MonthlyGoal:       target,
		Percentage:        percentage,
		IsGoalCompleted:   target > 0 && newFoodsThisMonth >= target,
		Circumference:     circumference,
		Offset:            offset,
		DaysLeft:          daysLeft,
	}
}
