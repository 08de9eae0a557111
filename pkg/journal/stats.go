package journal

import (
	"food-journal-backend/domain"
	"food-journal-backend/entities"
	"sort"
)

// timelineDateFormat renders entry dates for the chronological chart.
const timelineDateFormat = "1/2/2006"

// Aggregate computes summary statistics over a filtered entry list. It is a
// pure function: averages default to 0 for an empty list, category counts
// are sorted descending with ties kept in first-seen order, and the timeline
// is re-sorted ascending by date independent of the list order.
func Aggregate(entries []entities.FoodEntry) domain.EntryStatistics {
	stats := domain.EntryStatistics{
		TotalEntries:  len(entries),
		CategoryStats: []domain.CategoryCount{},
		Timeline:      []domain.TimelinePoint{},
	}

	if len(entries) > 0 {
		var taste, satisfaction, fullness int
		for _, entry := range entries {
			taste += entry.TasteRating
			satisfaction += entry.SatisfactionRating
			fullness += entry.FullnessRating
		}
		n := float64(len(entries))
		stats.AverageRatings = domain.AverageRatings{
			Taste:        float64(taste) / n,
			Satisfaction: float64(satisfaction) / n,
			Fullness:     float64(fullness) / n,
		}
	}

	for _, entry := range entries {
		if entry.IsNewFood {
			stats.NewFoodsCount++
		}
	}

	// Category labels compare case-sensitively; first-seen order is the
	// tie-break for equal counts.
	counts := make(map[string]int)
	var order []string
	for _, entry := range entries {
		for _, category := range entry.Categories {
			if _, seen := counts[category.Label]; !seen {
				order = append(order, category.Label)
			}
			counts[category.Label]++
		}
	}
	for _, label := range order {
		stats.CategoryStats = append(stats.CategoryStats, domain.CategoryCount{
			Name:  label,
			Count: counts[label],
		})
	}
	sort.SliceStable(stats.CategoryStats, func(i, j int) bool {
		return stats.CategoryStats[i].Count > stats.CategoryStats[j].Count
	})

	chronological := make([]entities.FoodEntry, len(entries))
	copy(chronological, entries)
	sort.SliceStable(chronological, func(i, j int) bool {
		return chronological[i].Date.Before(chronological[j].Date)
	})
	for _, entry := range chronological {
		stats.Timeline = append(stats.Timeline, domain.TimelinePoint{
			Date:         entry.Date.Format(timelineDateFormat),
			Taste:        entry.TasteRating,
			Satisfaction: entry.SatisfactionRating,
			Fullness:     entry.FullnessRating,
		})
	}

	return stats
}
