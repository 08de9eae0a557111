package journal

import (
	"food-journal-backend/entities"
	"strconv"
	"strings"
	"time"
)

// ExportFileName is the attachment name handed to download consumers.
const ExportFileName = "food-entries.csv"

var exportHeader = []string{
	"Name",
	"Taste Rating",
	"Satisfaction Rating",
	"Fullness Rating",
	"Notes",
	"Date",
	"Is New Food",
}

// ExportCSV renders the filtered/sorted list as a comma-delimited document:
// a fixed header row plus one row per entry, dates as RFC3339 and the
// new-food flag as Yes/No. Fields are not quoted, so embedded commas pass
// through unescaped.
func ExportCSV(entries []entities.FoodEntry) []byte {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, strings.Join(exportHeader, ","))

	for _, entry := range entries {
		isNewFood := "No"
		if entry.IsNewFood {
			isNewFood = "Yes"
		}
		row := []string{
			entry.Name,
			strconv.Itoa(entry.TasteRating),
			strconv.Itoa(entry.SatisfactionRating),
			strconv.Itoa(entry.FullnessRating),
			entry.Notes,
			entry.Date.UTC().Format(time.RFC3339),
			isNewFood,
		}
		lines = append(lines, strings.Join(row, ","))
	}

	return []byte(strings.Join(lines, "\n"))
}
