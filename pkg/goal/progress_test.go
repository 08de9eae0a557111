package goal

import (
	"food-journal-backend/entities"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newFoodOn(date time.Time) entities.FoodEntry {
	return entities.FoodEntry{Name: "food", IsNewFood: true, Date: date}
}

func TestMonthlyProgressClampsAtHundred(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	entries := make([]entities.FoodEntry, 0, 7)
	for day := 1; day <= 7; day++ {
		entries = append(entries, newFoodOn(time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)))
	}

	progress := MonthlyProgress(entries, 5, now)

	assert.Equal(t, 7, progress.NewFoodsThisMonth)
	assert.Equal(t, 100.0, progress.Percentage)
	assert.True(t, progress.IsGoalCompleted)
	assert.InDelta(t, 0.0, progress.Offset, 1e-9)
}

func TestMonthlyProgressPartial(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	entries := []entities.FoodEntry{
		newFoodOn(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
		newFoodOn(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)),
		newFoodOn(time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC)),
	}

	progress := MonthlyProgress(entries, 10, now)

	circumference := 2 * math.Pi * ProgressRingRadius
	assert.Equal(t, 30.0, progress.Percentage)
	assert.False(t, progress.IsGoalCompleted)
	assert.InDelta(t, circumference, progress.Circumference, 1e-9)
	assert.InDelta(t, circumference*0.7, progress.Offset, 1e-9)
}

func TestMonthlyProgressScopesToCalendarMonth(t *testing.T) {
	now := time.Date(2024, time.February, 3, 9, 0, 0, 0, time.UTC)
	entries := []entities.FoodEntry{
		newFoodOn(time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC)),
		newFoodOn(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)),
		newFoodOn(time.Date(2023, time.February, 15, 0, 0, 0, 0, time.UTC)),
	}

	progress := MonthlyProgress(entries, 5, now)

	assert.Equal(t, "February", progress.Month)
	assert.Equal(t, 1, progress.NewFoodsThisMonth)
}

func TestMonthlyProgressIgnoresNonNewFoods(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	entry := entities.FoodEntry{Name: "repeat", Date: now}

	progress := MonthlyProgress([]entities.FoodEntry{entry}, 5, now)

	assert.Equal(t, 0, progress.NewFoodsThisMonth)
	assert.Equal(t, 0.0, progress.Percentage)
}

func TestMonthlyProgressNonPositiveTarget(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	entries := []entities.FoodEntry{newFoodOn(now)}

	for _, target := range []int{0, -3} {
		progress := MonthlyProgress(entries, target, now)
		assert.Equal(t, 0.0, progress.Percentage)
		assert.False(t, progress.IsGoalCompleted)
		assert.InDelta(t, progress.Circumference, progress.Offset, 1e-9)
	}
}

func TestMonthlyProgressDaysLeft(t *testing.T) {
	cases := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2024, time.March, 20, 15, 30, 0, 0, time.UTC), 11},
		{time.Date(2024, time.March, 31, 8, 0, 0, 0, time.UTC), 0},
		{time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
	}

	for _, tc := range cases {
		progress := MonthlyProgress(nil, 5, tc.now)
		assert.Equal(t, tc.want, progress.DaysLeft, "now=%s", tc.now)
	}
}
