package meal

import (
	"MacroTrackr-Bot/domain"
	"MacroTrackr-Bot/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		CreateMealEntry(ctx context.Context, entry *entities.MealEntry) error
		SumCaloriesSince(ctx context.Context, userID int64, window domain.DayWindow) (int, error)
		DeleteEntriesSince(ctx context.Context, userID int64, window domain.DayWindow) error
		LatestMealEntry(ctx context.Context, userID int64) (*entities.MealEntry, error)
		DeleteMealEntryByID(ctx context.Context, id uint) error
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMealEntry(ctx context.Context, entry *entities.MealEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *mealRepository) SumCaloriesSince(ctx context.Context, userID int64, window domain.DayWindow) (int, error) {
	var total int

	err := r.db.WithContext(ctx).
		Model(&entities.MealEntry{}).
		Select("COALESCE(SUM(calories), 0)").
		Where("user_id = ? AND created_at >= ?", userID, window.Start).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *mealRepository) DeleteEntriesSince(ctx context.Context, userID int64, window domain.DayWindow) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, window.Start).
		Delete(&entities.MealEntry{}).Error
}

// LatestMealEntry finds the newest entry across all history, not just the
// current window. Ties on created_at are broken on the higher id so that the
// undo operation always targets exactly one row.
func (r *mealRepository) LatestMealEntry(ctx context.Context, userID int64) (*entities.MealEntry, error) {
	var entries []entities.MealEntry

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &entries[0], nil
}

func (r *mealRepository) DeleteMealEntryByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.MealEntry{}, id).Error
}
