package journal

import (
	"food-journal-backend/entities"
	"sort"
)

// Sort keys for the entry list view.
const (
	SortRecent       = "recent"
	SortRating       = "rating"
	SortTaste        = "taste"
	SortSatisfaction = "satisfaction"
	SortFullness     = "fullness"
)

func meanRating(entry entities.FoodEntry) float64 {
	return float64(entry.TasteRating+entry.SatisfactionRating+entry.FullnessRating) / 3
}

// SortEntries returns a new slice ordered descending by the given key.
// The sort is stable, so ties keep the input order. An unknown key returns
// an unreordered copy.
func SortEntries(entries []entities.FoodEntry, sortKey string) []entities.FoodEntry {
	sorted := make([]entities.FoodEntry, len(entries))
	copy(sorted, entries)

	switch sortKey {
	case SortRecent:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.After(sorted[j].Date)
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return meanRating(sorted[i]) > meanRating(sorted[j])
		})
	case SortTaste:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TasteRating > sorted[j].TasteRating
		})
	case SortSatisfaction:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].SatisfactionRating > sorted[j].SatisfactionRating
		})
	case SortFullness:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].FullnessRating > sorted[j].FullnessRating
		})
	}

	return sorted
}
