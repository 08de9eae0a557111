package journal

import (
	"context"
	"errors"
	"food-journal-backend/domain"
	"food-journal-backend/entities"
	"food-journal-backend/pkg/insights"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	JournalService interface {
		CreateEntry(ctx context.Context, req domain.CreateEntryRequest, userID string) (domain.EntryResponse, error)
		GetEntries(ctx context.Context, userID string, query, bucket, sortKey string) (domain.EntryListResponse, error)
		GetEntryByID(ctx context.Context, id string, userID string) (domain.EntryResponse, error)
		DeleteEntry(ctx context.Context, id string, userID string) error
		BulkDeleteEntries(ctx context.Context, req domain.BulkDeleteRequest, userID string) error
		ExportEntries(ctx context.Context, userID string, query, bucket, sortKey string) ([]byte, error)
		GenerateInsights(ctx context.Context, id string, userID string) (domain.InsightsResponse, error)
	}

	journalService struct {
		journalRepository JournalRepository
		insightsService   insights.InsightsService
	}
)

func NewJournalService(journalRepository JournalRepository, insightsService insights.InsightsService) JournalService {
	return &journalService{
		journalRepository: journalRepository,
		insightsService:   insightsService,
	}
}

// dedupeCategories drops repeated labels (case-sensitive exact match) while
// keeping the order the user typed them in.
func dedupeCategories(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	deduped := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		deduped = append(deduped, label)
	}
	return deduped
}

func entryToResponse(entry entities.FoodEntry) domain.EntryResponse {
	return domain.EntryResponse{
		ID:                 entry.ID.String(),
		Name:               entry.Name,
		TasteRating:        entry.TasteRating,
		SatisfactionRating: entry.SatisfactionRating,
		FullnessRating:     entry.FullnessRating,
		Notes:              entry.Notes,
		Date:               entry.Date,
		IsNewFood:          entry.IsNewFood,
		Categories:         entry.CategoryLabels(),
		AiInsights:         entry.AiInsights,
		CreatedAt:          entry.CreatedAt,
	}
}

func (s *journalService) CreateEntry(ctx context.Context, req domain.CreateEntryRequest, userID string) (domain.EntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.EntryResponse{}, domain.ErrParseUUID
	}

	entryID := uuid.New()
	categories := dedupeCategories(req.Categories)
	entryCategories := make([]entities.EntryCategory, 0, len(categories))
	for i, label := range categories {
		entryCategories = append(entryCategories, entities.EntryCategory{
			ID:       uuid.New(),
			EntryID:  entryID,
			Label:    label,
			Position: i,
		})
	}

	entry := &entities.FoodEntry{
		ID:                 entryID,
		UserID:             userUUID,
		Name:               req.Name,
		TasteRating:        req.TasteRating,
		SatisfactionRating: req.SatisfactionRating,
		FullnessRating:     req.FullnessRating,
		Notes:              req.Notes,
		Date:               time.Now(),
		IsNewFood:          req.IsNewFood,
		Categories:         entryCategories,
	}

	if err := s.journalRepository.CreateEntry(ctx, entry); err != nil {
		return domain.EntryResponse{}, err
	}

	return entryToResponse(*entry), nil
}

func (s *journalService) GetEntries(ctx context.Context, userID string, query, bucket, sortKey string) (domain.EntryListResponse, error) {
	foodEntries, err := s.journalRepository.GetEntriesByUser(ctx, userID)
	if err != nil {
		return domain.EntryListResponse{}, err
	}

	filtered := FilterEntries(foodEntries, query, bucket, time.Now())
	sorted := SortEntries(filtered, sortKey)
	stats := Aggregate(sorted)

	response := domain.EntryListResponse{
		Entries: make([]domain.EntryResponse, 0, len(sorted)),
		Stats:   stats,
	}
	for _, entry := range sorted {
		response.Entries = append(response.Entries, entryToResponse(entry))
	}

	return response, nil
}

func (s *journalService) getOwnedEntry(ctx context.Context, id string, userID string) (*entities.FoodEntry, error) {
	entry, err := s.journalRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	if entry.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedEntryAccess
	}

	return entry, nil
}

func (s *journalService) GetEntryByID(ctx context.Context, id string, userID string) (domain.EntryResponse, error) {
	entry, err := s.getOwnedEntry(ctx, id, userID)
	if err != nil {
		return domain.EntryResponse{}, err
	}
	return entryToResponse(*entry), nil
}

func (s *journalService) DeleteEntry(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedEntry(ctx, id, userID); err != nil {
		return err
	}
	return s.journalRepository.DeleteEntry(ctx, id)
}

func (s *journalService) BulkDeleteEntries(ctx context.Context, req domain.BulkDeleteRequest, userID string) error {
	if len(req.IDs) == 0 {
		return domain.ErrNoEntriesSelected
	}
	return s.journalRepository.DeleteEntries(ctx, userID, req.IDs)
}

func (s *journalService) ExportEntries(ctx context.Context, userID string, query, bucket, sortKey string) ([]byte, error) {
	foodEntries, err := s.journalRepository.GetEntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := FilterEntries(foodEntries, query, bucket, time.Now())
	sorted := SortEntries(filtered, sortKey)

	return ExportCSV(sorted), nil
}

func (s *journalService) GenerateInsights(ctx context.Context, id string, userID string) (domain.InsightsResponse, error) {
	entry, err := s.getOwnedEntry(ctx, id, userID)
	if err != nil {
		return domain.InsightsResponse{}, err
	}

	// Insights are generated once per entry and cached on the row.
	if entry.AiInsights == "" {
		generated, err := s.insightsService.GenerateFoodInsights(ctx, entry.Name)
		if err != nil {
			return domain.InsightsResponse{}, err
		}
		entry.AiInsights = generated
		if err := s.journalRepository.UpdateEntry(ctx, entry); err != nil {
			return domain.InsightsResponse{}, err
		}
	}

	return domain.InsightsResponse{
		EntryID:  entry.ID.String(),
		Name:     entry.Name,
		Insights: entry.AiInsights,
	}, nil
}
