package journal

import (
	"food-journal-backend/entities"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratedEntry(name string, taste, satisfaction, fullness int, date time.Time) entities.FoodEntry {
	entry := testEntry(name, date)
	entry.TasteRating = taste
	entry.SatisfactionRating = satisfaction
	entry.FullnessRating = fullness
	return entry
}

func TestSortEntriesRecent(t *testing.T) {
	entries := []entities.FoodEntry{
		testEntry("old", testNow.AddDate(0, 0, -10)),
		testEntry("newest", testNow),
		testEntry("middle", testNow.AddDate(0, 0, -5)),
	}

	sorted := SortEntries(entries, SortRecent)

	assert.Equal(t, []string{"newest", "middle", "old"}, entryNames(sorted))
	// Input untouched
	assert.Equal(t, "old", entries[0].Name)
}

func TestSortEntriesByRatingMean(t *testing.T) {
	entries := []entities.FoodEntry{
		ratedEntry("low", 1, 2, 1, testNow),
		ratedEntry("high", 5, 5, 4, testNow),
		ratedEntry("mid", 3, 3, 3, testNow),
	}

	sorted := SortEntries(entries, SortRating)
	assert.Equal(t, []string{"high", "mid", "low"}, entryNames(sorted))
}

func TestSortEntriesSingleDimensions(t *testing.T) {
	entries := []entities.FoodEntry{
		ratedEntry("a", 1, 5, 2, testNow),
		ratedEntry("b", 5, 1, 4, testNow),
		ratedEntry("c", 3, 3, 5, testNow),
	}

	assert.Equal(t, []string{"b", "c", "a"}, entryNames(SortEntries(entries, SortTaste)))
	assert.Equal(t, []string{"a", "c", "b"}, entryNames(SortEntries(entries, SortSatisfaction)))
	assert.Equal(t, []string{"c", "b", "a"}, entryNames(SortEntries(entries, SortFullness)))
}

func TestSortEntriesTiesPreserveInputOrder(t *testing.T) {
	entries := []entities.FoodEntry{
		ratedEntry("first", 4, 1, 1, testNow),
		ratedEntry("second", 4, 2, 2, testNow),
		ratedEntry("third", 4, 3, 3, testNow),
		ratedEntry("top", 5, 1, 1, testNow),
	}

	sorted := SortEntries(entries, SortTaste)
	assert.Equal(t, []string{"top", "first", "second", "third"}, entryNames(sorted))
}

func TestSortEntriesUnknownKeyPassthrough(t *testing.T) {
	entries := []entities.FoodEntry{
		testEntry("b", testNow.AddDate(0, 0, -1)),
		testEntry("a", testNow),
	}

	sorted := SortEntries(entries, "alphabetical")
	require.Len(t, sorted, 2)
	assert.Equal(t, []string{"b", "a"}, entryNames(sorted))
}

func TestSortEntriesEmpty(t *testing.T) {
	assert.Empty(t, SortEntries(nil, SortRecent))
}
