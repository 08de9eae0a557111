package journal

import (
	"context"
	"testing"
	"time"

	"food-journal-backend/domain"
	"food-journal-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeJournalRepository struct {
	entries      map[string]*entities.FoodEntry
	categoryRows map[string][]entities.EntryCategory
	updated      []string
	deleted      []string
}

func newFakeJournalRepository() *fakeJournalRepository {
	return &fakeJournalRepository{
		entries:      make(map[string]*entities.FoodEntry),
		categoryRows: make(map[string][]entities.EntryCategory),
	}
}

func (r *fakeJournalRepository) CreateEntry(_ context.Context, entry *entities.FoodEntry) error {
	r.entries[entry.ID.String()] = entry
	return nil
}

func (r *fakeJournalRepository) GetEntryByID(_ context.Context, id string) (*entities.FoodEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (r *fakeJournalRepository) GetEntriesByUser(_ context.Context, userID string) ([]entities.FoodEntry, error) {
	var foodEntries []entities.FoodEntry
	for _, entry := range r.entries {
		if entry.UserID.String() == userID {
			foodEntries = append(foodEntries, *entry)
		}
	}
	return foodEntries, nil
}

func (r *fakeJournalRepository) UpdateEntry(_ context.Context, entry *entities.FoodEntry) error {
	r.entries[entry.ID.String()] = entry
	r.updated = append(r.updated, entry.ID.String())
	return nil
}

func (r *fakeJournalRepository) DeleteEntry(_ context.Context, id string) error {
	delete(r.categoryRows, id)
	delete(r.entries, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// DeleteEntries mirrors the SQL path: category rows go first, scoped to
// entries the user owns, then the entries themselves.
func (r *fakeJournalRepository) DeleteEntries(_ context.Context, userID string, ids []string) error {
	for _, id := range ids {
		entry, ok := r.entries[id]
		if !ok || entry.UserID.String() != userID {
			continue
		}
		delete(r.categoryRows, id)
		delete(r.entries, id)
		r.deleted = append(r.deleted, id)
	}
	return nil
}

type fakeInsightsService struct {
	insights string
	err      error
	calls    int
}

func (s *fakeInsightsService) GenerateFoodInsights(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.insights, s.err
}

func TestCreateEntryDedupesCategories(t *testing.T) {
	repo := newFakeJournalRepository()
	service := NewJournalService(repo, &fakeInsightsService{})
	userID := uuid.NewString()

	resp, err := service.CreateEntry(context.Background(), domain.CreateEntryRequest{
		Name:               "Mango",
		TasteRating:        5,
		SatisfactionRating: 4,
		FullnessRating:     3,
		IsNewFood:          true,
		Categories:         []string{"Fruit", "Sweet", "Fruit", "fruit"},
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, []string{"Fruit", "Sweet", "fruit"}, resp.Categories)

	stored := repo.entries[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, userID, stored.UserID.String())
	for i, category := range stored.Categories {
		assert.Equal(t, i, category.Position)
	}
}

func TestCreateEntryRejectsBadUserID(t *testing.T) {
	service := NewJournalService(newFakeJournalRepository(), &fakeInsightsService{})

	_, err := service.CreateEntry(context.Background(), domain.CreateEntryRequest{Name: "x"}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetEntriesPipeline(t *testing.T) {
	repo := newFakeJournalRepository()
	service := NewJournalService(repo, &fakeInsightsService{})
	userID := uuid.New()

	seed := func(name string, taste int, daysAgo int) {
		entry := ratedEntry(name, taste, 3, 3, time.Now().AddDate(0, 0, -daysAgo))
		entry.UserID = userID
		repo.entries[entry.ID.String()] = &entry
	}
	seed("Apple Pie", 5, 1)
	seed("Apple Juice", 2, 2)
	seed("Burger", 4, 3)

	resp, err := service.GetEntries(context.Background(), userID.String(), "apple", BucketAll, SortTaste)

	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "Apple Pie", resp.Entries[0].Name)
	assert.Equal(t, "Apple Juice", resp.Entries[1].Name)
	assert.Equal(t, 2, resp.Stats.TotalEntries)
	assert.InDelta(t, 3.5, resp.Stats.AverageRatings.Taste, 1e-9)
}

func TestGetEntryByIDOwnership(t *testing.T) {
	repo := newFakeJournalRepository()
	service := NewJournalService(repo, &fakeInsightsService{})

	owner := uuid.New()
	entry := testEntry("Apple", testNow)
	entry.UserID = owner
	repo.entries[entry.ID.String()] = &entry

	_, err := service.GetEntryByID(context.Background(), entry.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedEntryAccess)

	_, err = service.GetEntryByID(context.Background(), uuid.NewString(), owner.String())
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)

	resp, err := service.GetEntryByID(context.Background(), entry.ID.String(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, "Apple", resp.Name)
}

func TestBulkDeleteRequiresSelection(t *testing.T) {
	service := NewJournalService(newFakeJournalRepository(), &fakeInsightsService{})

	err := service.BulkDeleteEntries(context.Background(), domain.BulkDeleteRequest{}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNoEntriesSelected)
}

func TestBulkDeleteScopedToUser(t *testing.T) {
	repo := newFakeJournalRepository()
	service := NewJournalService(repo, &fakeInsightsService{})

	owner := uuid.New()
	mine := testEntry("mine", testNow)
	mine.UserID = owner
	theirs := testEntry("theirs", testNow)
	theirs.UserID = uuid.New()
	repo.entries[mine.ID.String()] = &mine
	repo.entries[theirs.ID.String()] = &theirs

	err := service.BulkDeleteEntries(context.Background(), domain.BulkDeleteRequest{
		IDs: []string{mine.ID.String(), theirs.ID.String()},
	}, owner.String())

	require.NoError(t, err)
	assert.NotContains(t, repo.entries, mine.ID.String())
	assert.Contains(t, repo.entries, theirs.ID.String())
}

func TestBulkDeleteKeepsForeignCategoryRows(t *testing.T) {
	repo := newFakeJournalRepository()
	service := NewJournalService(repo, &fakeInsightsService{})

	owner := uuid.New()
	mine := withCategories(testEntry("mine", testNow), "Lunch")
	mine.UserID = owner
	theirs := withCategories(testEntry("theirs", testNow), "Dinner")
	theirs.UserID = uuid.New()
	for _, entry := range []entities.FoodEntry{mine, theirs} {
		entry := entry
		repo.entries[entry.ID.String()] = &entry
		repo.categoryRows[entry.ID.String()] = entry.Categories
	}

	// Requesting another user's entry id must not touch its category rows.
	err := service.BulkDeleteEntries(context.Background(), domain.BulkDeleteRequest{
		IDs: []string{mine.ID.String(), theirs.ID.String()},
	}, owner.String())

	require.NoError(t, err)
	assert.NotContains(t, repo.categoryRows, mine.ID.String())
	require.Contains(t, repo.categoryRows, theirs.ID.String())
	assert.Equal(t, "Dinner", repo.categoryRows[theirs.ID.String()][0].Label)
}

func TestGenerateInsightsCachesResult(t *testing.T) {
	repo := newFakeJournalRepository()
	insightsService := &fakeInsightsService{insights: "Mangoes are rich in vitamin C."}
	service := NewJournalService(repo, insightsService)

	owner := uuid.New()
	entry := testEntry("Mango", testNow)
	entry.UserID = owner
	repo.entries[entry.ID.String()] = &entry

	first, err := service.GenerateInsights(context.Background(), entry.ID.String(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, "Mangoes are rich in vitamin C.", first.Insights)
	assert.Equal(t, 1, insightsService.calls)
	assert.Contains(t, repo.updated, entry.ID.String())

	second, err := service.GenerateInsights(context.Background(), entry.ID.String(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, first.Insights, second.Insights)
	assert.Equal(t, 1, insightsService.calls, "cached insights must not trigger another generation")
}
