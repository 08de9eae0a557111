package journal

import (
	"food-journal-backend/entities"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVHeaderOnly(t *testing.T) {
	out := string(ExportCSV(nil))

	assert.Equal(t, "Name,Taste Rating,Satisfaction Rating,Fullness Rating,Notes,Date,Is New Food", out)
}

func TestExportCSVRows(t *testing.T) {
	apple := ratedEntry("Apple", 5, 4, 3, time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC))
	apple.IsNewFood = true
	apple.Notes = "crisp"
	banana := ratedEntry("Banana", 2, 2, 2, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))

	out := string(ExportCSV([]entities.FoodEntry{apple, banana}))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Apple,5,4,3,crisp,2024-03-02T10:00:00Z,Yes", lines[1])
	assert.Equal(t, "Banana,2,2,2,,2024-03-15T00:00:00Z,No", lines[2])
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestExportCSVKeepsEmbeddedCommas(t *testing.T) {
	entry := ratedEntry("Soup", 3, 3, 3, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	entry.Notes = "salty, but good"

	out := string(ExportCSV([]entities.FoodEntry{entry}))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 2)
	// Fields are not quoted, so the note's comma adds a column.
	assert.Len(t, strings.Split(lines[1], ","), 8)
}

func TestExportCSVNormalizesDatesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	entry := ratedEntry("Rice", 4, 4, 4, time.Date(2024, time.March, 2, 6, 0, 0, 0, loc))

	out := string(ExportCSV([]entities.FoodEntry{entry}))

	assert.Contains(t, out, "2024-03-01T23:00:00Z")
}
