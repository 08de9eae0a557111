package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2024-03-20 is a Wednesday.
var testNow = time.Date(2024, time.March, 20, 15, 30, 0, 0, time.UTC)

func TestResolveBucketWindows(t *testing.T) {
	tests := []struct {
		bucket string
		start  time.Time
		end    time.Time
	}{
		{BucketAll, time.Time{}, time.Time{}},
		{BucketToday, time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), time.Time{}},
		{BucketYesterday, time.Date(2024, time.March, 19, 0, 0, 0, 0, time.UTC), time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)},
		{BucketThisWeek, time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC), time.Time{}},
		{BucketLastWeek, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC)},
		{BucketThisMonth, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), time.Time{}},
		{BucketLastMonth, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{BucketLast3Months, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), time.Time{}},
		{BucketLast6Months, time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC), time.Time{}},
		{BucketThisYear, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.bucket, func(t *testing.T) {
			window := ResolveBucket(tt.bucket, testNow)
			assert.True(t, window.Start.Equal(tt.start), "start: got %v want %v", window.Start, tt.start)
			assert.True(t, window.End.Equal(tt.end), "end: got %v want %v", window.End, tt.end)
		})
	}
}

func TestResolveBucketWeekStartsSunday(t *testing.T) {
	// A Sunday resolves this week's start to itself.
	sunday := time.Date(2024, time.March, 17, 9, 0, 0, 0, time.UTC)
	window := ResolveBucket(BucketThisWeek, sunday)
	assert.Equal(t, time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC), window.Start)
}

func TestResolveBucketMonthRolloverAcrossYear(t *testing.T) {
	january := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

	lastMonth := ResolveBucket(BucketLastMonth, january)
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), lastMonth.Start)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), lastMonth.End)

	last3Months := ResolveBucket(BucketLast3Months, january)
	assert.Equal(t, time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC), last3Months.Start)

	last6Months := ResolveBucket(BucketLast6Months, january)
	assert.Equal(t, time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC), last6Months.Start)
}

func TestResolveBucketUnknownFallsBackToAll(t *testing.T) {
	window := ResolveBucket("lastFortnight", testNow)
	assert.True(t, window.Start.IsZero())
	assert.True(t, window.End.IsZero())
	assert.True(t, window.Contains(time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDateRangeContainsHalfOpen(t *testing.T) {
	window := ResolveBucket(BucketYesterday, testNow)

	assert.True(t, window.Contains(time.Date(2024, time.March, 19, 0, 0, 0, 0, time.UTC)))
	assert.True(t, window.Contains(time.Date(2024, time.March, 19, 23, 59, 59, 0, time.UTC)))
	assert.False(t, window.Contains(time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, window.Contains(time.Date(2024, time.March, 18, 23, 59, 59, 0, time.UTC)))
}
