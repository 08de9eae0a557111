package journal

import (
	"context"
	"food-journal-backend/entities"

	"gorm.io/gorm"
)

type (
	JournalRepository interface {
		CreateEntry(ctx context.Context, entry *entities.FoodEntry) error
		GetEntryByID(ctx context.Context, id string) (*entities.FoodEntry, error)
		GetEntriesByUser(ctx context.Context, userID string) ([]entities.FoodEntry, error)
		UpdateEntry(ctx context.Context, entry *entities.FoodEntry) error
		DeleteEntry(ctx context.Context, id string) error
		DeleteEntries(ctx context.Context, userID string, ids []string) error
	}

	journalRepository struct {
		db *gorm.DB
	}
)

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) CreateEntry(ctx context.Context, entry *entities.FoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) GetEntryByID(ctx context.Context, id string) (*entities.FoodEntry, error) {
	var entry entities.FoodEntry
	if err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) GetEntriesByUser(ctx context.Context, userID string) ([]entities.FoodEntry, error) {
	var foodEntries []entities.FoodEntry
	if err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&foodEntries).Error; err != nil {
		return nil, err
	}
	return foodEntries, nil
}

func (r *journalRepository) UpdateEntry(ctx context.Context, entry *entities.FoodEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *journalRepository) DeleteEntry(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("entry_id = ?", id).Delete(&entities.EntryCategory{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodEntry{}).Error
}

func (r *journalRepository) DeleteEntries(ctx context.Context, userID string, ids []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Category rows are removed only for entries the user owns, so ids
		// belonging to other users leave their rows untouched.
		owned := tx.Model(&entities.FoodEntry{}).Select("id").Where("user_id = ? AND id IN ?", userID, ids)
		if err := tx.Where("entry_id IN (?)", owned).Delete(&entities.EntryCategory{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND id IN ?", userID, ids).Delete(&entities.FoodEntry{}).Error
	})
}
