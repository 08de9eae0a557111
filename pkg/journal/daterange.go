package journal

import (
	"time"
)

// Named date-range buckets for the entry list view. Each bucket resolves
// to a half-open window [Start, End) relative to a caller-supplied "now".
const (
	BucketAll         = "all"
	BucketToday       = "today"
	BucketYesterday   = "yesterday"
	BucketThisWeek    = "thisWeek"
	BucketLastWeek    = "lastWeek"
	BucketThisMonth   = "thisMonth"
	BucketLastMonth   = "lastMonth"
	BucketLast3Months = "last3Months"
	BucketLast6Months = "last6Months"
	BucketThisYear    = "thisYear"
)

// DateRange is a half-open interval [Start, End). A zero Start or End
// means unbounded on that side.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && !t.Before(r.End) {
		return false
	}
	return true
}

// ResolveBucket maps a bucket identifier to its window. The week starts on
// Sunday. Month arithmetic relies on time.Date normalization, so lastMonth
// evaluated in January resolves to December of the previous year. Unknown
// identifiers resolve to an unbounded window.
func ResolveBucket(bucket string, now time.Time) DateRange {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)
	thisWeekStart := today.AddDate(0, 0, -int(today.Weekday()))
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)
	thisMonthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, now.Location())
	last3MonthsStart := time.Date(today.Year(), today.Month()-3, 1, 0, 0, 0, 0, now.Location())
	last6MonthsStart := time.Date(today.Year(), today.Month()-6, 1, 0, 0, 0, 0, now.Location())
	thisYearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	switch bucket {
	case BucketToday:
		return DateRange{Start: today}
	case BucketYesterday:
		return DateRange{Start: yesterday, End: today}
	case BucketThisWeek:
		return DateRange{Start: thisWeekStart}
	case BucketLastWeek:
		return DateRange{Start: lastWeekStart, End: thisWeekStart}
	case BucketThisMonth:
		return DateRange{Start: thisMonthStart}
	case BucketLastMonth:
		return DateRange{Start: lastMonthStart, End: thisMonthStart}
	case BucketLast3Months:
		return DateRange{Start: last3MonthsStart}
	case BucketLast6Months:
		return DateRange{Start: last6MonthsStart}
	case BucketThisYear:
		return DateRange{Start: thisYearStart}
	default:
		return DateRange{}
	}
}
