package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateEntry      = "food entry added successfully"
	MessageSuccessGetEntries       = "food entries retrieved successfully"
	MessageSuccessGetEntryDetail   = "food entry retrieved successfully"
	MessageSuccessDeleteEntry      = "food entry deleted successfully"
	MessageSuccessBulkDelete       = "food entries deleted successfully"
	MessageSuccessExportEntries    = "food entries exported successfully"
	MessageSuccessGenerateInsights = "food insights generated successfully"

	MessageFailedCreateEntry      = "failed to add food entry"
	MessageFailedGetEntries       = "failed to retrieve food entries"
	MessageFailedDeleteEntry      = "failed to delete food entry"
	MessageFailedBulkDelete       = "failed to delete food entries"
	MessageFailedExportEntries    = "failed to export food entries"
	MessageFailedGenerateInsights = "failed to generate food insights"

	ErrEntryNotFound            = errors.New("food entry not found")
	ErrUnauthorizedEntryAccess  = errors.New("unauthorized access to food entry")
	ErrInsightsGenerationFailed = errors.New("insights generation failed")
	ErrNoEntriesSelected        = errors.New("no entries selected")
)

type (
	CreateEntryRequest struct {
		Name               string   `json:"name" validate:"required"`
		TasteRating        int      `json:"taste_rating" validate:"required,min=1,max=5"`
		SatisfactionRating int      `json:"satisfaction_rating" validate:"required,min=1,max=5"`
		FullnessRating     int      `json:"fullness_rating" validate:"required,min=1,max=5"`
		Notes              string   `json:"notes" validate:"omitempty"`
		IsNewFood          bool     `json:"is_new_food"`
		Categories         []string `json:"categories" validate:"omitempty,dive,required"`
	}

	EntryResponse struct {
		ID                 string    `json:"id"`
		Name               string    `json:"name"`
		TasteRating        int       `json:"taste_rating"`
		SatisfactionRating int       `json:"satisfaction_rating"`
		FullnessRating     int       `json:"fullness_rating"`
		Notes              string    `json:"notes,omitempty"`
		Date               time.Time `json:"date"`
		IsNewFood          bool      `json:"is_new_food"`
		Categories         []string  `json:"categories,omitempty"`
		AiInsights         string    `json:"ai_insights,omitempty"`
		CreatedAt          time.Time `json:"created_at"`
	}

	BulkDeleteRequest struct {
		IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
	}

	AverageRatings struct {
		Taste        float64 `json:"taste"`
		Satisfaction float64 `json:"satisfaction"`
		Fullness     float64 `json:"fullness"`
	}

	CategoryCount struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	TimelinePoint struct {
		Date         string `json:"date"`
		Taste        int    `json:"taste"`
		Satisfaction int    `json:"satisfaction"`
		Fullness     int    `json:"fullness"`
	}

	EntryStatistics struct {
		AverageRatings AverageRatings  `json:"average_ratings"`
		TotalEntries   int             `json:"total_entries"`
		NewFoodsCount  int             `json:"new_foods_count"`
		CategoryStats  []CategoryCount `json:"category_stats"`
		Timeline       []TimelinePoint `json:"timeline"`
	}

	EntryListResponse struct {
		Entries []EntryResponse `json:"entries"`
		Stats   EntryStatistics `json:"stats"`
	}

	InsightsResponse struct {
		EntryID  string `json:"entry_id"`
		Name     string `json:"name"`
		Insights string `json:"insights"`
	}
)
