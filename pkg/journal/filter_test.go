package journal

import (
	"food-journal-backend/entities"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(name string, date time.Time) entities.FoodEntry {
	return entities.FoodEntry{
		ID:                 uuid.New(),
		Name:               name,
		TasteRating:        3,
		SatisfactionRating: 3,
		FullnessRating:     3,
		Date:               date,
	}
}

func withCategories(entry entities.FoodEntry, labels ...string) entities.FoodEntry {
	for i, label := range labels {
		entry.Categories = append(entry.Categories, entities.EntryCategory{
			ID:       uuid.New(),
			EntryID:  entry.ID,
			Label:    label,
			Position: i,
		})
	}
	return entry
}

func entryNames(entries []entities.FoodEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}

func TestFilterEntriesIdentity(t *testing.T) {
	entries := []entities.FoodEntry{
		testEntry("Apple", testNow.AddDate(0, 0, -1)),
		testEntry("Banana", testNow.AddDate(0, -2, 0)),
		testEntry("Cherry", testNow.AddDate(-1, 0, 0)),
	}

	filtered := FilterEntries(entries, "", BucketAll, testNow)

	require.Len(t, filtered, len(entries))
	for i := range entries {
		assert.Equal(t, entries[i].ID, filtered[i].ID)
	}
}

func TestFilterEntriesIsSubset(t *testing.T) {
	entries := []entities.FoodEntry{
		testEntry("Apple pie", testNow.AddDate(0, 0, -1)),
		testEntry("Banana", testNow.AddDate(0, -2, 0)),
		testEntry("Apple juice", testNow.AddDate(-1, 0, 0)),
	}
	ids := make(map[uuid.UUID]struct{}, len(entries))
	for _, entry := range entries {
		ids[entry.ID] = struct{}{}
	}

	for _, bucket := range []string{BucketAll, BucketToday, BucketThisMonth, BucketThisYear, "bogus"} {
		for _, query := range []string{"", "apple", "zzz"} {
			for _, entry := range FilterEntries(entries, query, bucket, testNow) {
				_, ok := ids[entry.ID]
				assert.True(t, ok, "bucket=%s query=%s returned an unknown entry", bucket, query)
			}
		}
	}
}

func TestFilterEntriesTextMatch(t *testing.T) {
	entries := []entities.FoodEntry{
		testEntry("Miso Soup", testNow),
		func() entities.FoodEntry {
			e := testEntry("Toast", testNow)
			e.Notes = "had it with miso butter"
			return e
		}(),
		testEntry("Cereal", testNow),
	}

	filtered := FilterEntries(entries, "MISO", BucketAll, testNow)
	assert.Equal(t, []string{"Miso Soup", "Toast"}, entryNames(filtered))
}

func TestFilterEntriesCategoryMatch(t *testing.T) {
	// Query matches only through a category label.
	entries := []entities.FoodEntry{
		withCategories(testEntry("Stir Fry", testNow), "Cabbage Family", "Dinner"),
		testEntry("Oatmeal", testNow),
	}

	filtered := FilterEntries(entries, "cabbage", BucketAll, testNow)
	assert.Equal(t, []string{"Stir Fry"}, entryNames(filtered))
}

func TestFilterEntriesDateWindow(t *testing.T) {
	thisMonth := testEntry("March entry", time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC))
	lastMonth := testEntry("February entry", time.Date(2024, time.February, 27, 10, 0, 0, 0, time.UTC))
	entries := []entities.FoodEntry{thisMonth, lastMonth}

	filtered := FilterEntries(entries, "", BucketThisMonth, testNow)
	assert.Equal(t, []string{"March entry"}, entryNames(filtered))

	filtered = FilterEntries(entries, "", BucketLastMonth, testNow)
	assert.Equal(t, []string{"February entry"}, entryNames(filtered))
}

func TestFilterEntriesCombinesTextAndDate(t *testing.T) {
	entries := []entities.FoodEntry{
		testEntry("Apple", time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)),
		testEntry("Apple", time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)),
		testEntry("Banana", time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)),
	}

	filtered := FilterEntries(entries, "apple", BucketThisMonth, testNow)
	require.Len(t, filtered, 1)
	assert.Equal(t, entries[0].ID, filtered[0].ID)
}

func TestFilterEntriesEmptyInput(t *testing.T) {
	assert.Empty(t, FilterEntries(nil, "anything", BucketToday, testNow))
	assert.Empty(t, FilterEntries([]entities.FoodEntry{}, "", BucketAll, testNow))
}
