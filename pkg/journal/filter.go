package journal

import (
	"food-journal-backend/entities"
	"strings"
	"time"
)

// FilterEntries returns the sublist of entries matching both the free-text
// query and the date-range bucket, preserving input order. An empty query
// with the "all" bucket is the identity filter.
func FilterEntries(entries []entities.FoodEntry, query string, bucket string, now time.Time) []entities.FoodEntry {
	window := ResolveBucket(bucket, now)
	q := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]entities.FoodEntry, 0, len(entries))
	for _, entry := range entries {
		if !window.Contains(entry.Date) {
			continue
		}
		if q != "" && !matchesQuery(entry, q) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

// matchesQuery reports whether q (already lowercased) is a substring of the
// entry name, notes, or any category label.
func matchesQuery(entry entities.FoodEntry, q string) bool {
	if strings.Contains(strings.ToLower(entry.Name), q) {
		return true
	}
	if entry.Notes != "" && strings.Contains(strings.ToLower(entry.Notes), q) {
		return true
	}
	for _, category := range entry.Categories {
		if strings.Contains(strings.ToLower(category.Label), q) {
			return true
		}
	}
	return false
}
