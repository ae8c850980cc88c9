package meal

import (
	"MacroTrackr-Bot/domain"
	"MacroTrackr-Bot/entities"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Ledger operations must resolve quickly even when the database is
// unreachable; the caller always has a next action for a failed store.
const opTimeout = 5 * time.Second

type (
	// MealService is the ledger boundary the bot consumes. Persistence and
	// connection failures never escape as errors: they are logged here and
	// reported through sentinel returns (false, 0, nil) so "store
	// unavailable" and "nothing there" look the same to callers.
	MealService interface {
		Store(ctx context.Context, userID int64, userName string, calories int, analysisText, photoURL string) bool
		DailyTotal(ctx context.Context, userID int64, window domain.DayWindow) int
		ResetWindow(ctx context.Context, userID int64, window domain.DayWindow) bool
		DeleteLast(ctx context.Context, userID int64) (*entities.MealEntry, bool)
	}

	mealService struct {
		mealRepository MealRepository
	}
)

func NewMealService(mealRepository MealRepository) MealService {
	return &mealService{mealRepository: mealRepository}
}

func (s *mealService) Store(ctx context.Context, userID int64, userName string, calories int, analysisText, photoURL string) bool {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	entry := &entities.MealEntry{
		UserID:       userID,
		UserName:     userName,
		Calories:     calories,
		MealAnalysis: analysisText,
		PhotoURL:     photoURL,
	}

	if err := s.mealRepository.CreateMealEntry(ctx, entry); err != nil {
		log.Errorf("store meal entry for user %d: %v", userID, err)
		return false
	}

	log.Infof("stored %d calories for user %s", calories, userName)
	return true
}

func (s *mealService) DailyTotal(ctx context.Context, userID int64, window domain.DayWindow) int {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	total, err := s.mealRepository.SumCaloriesSince(ctx, userID, window)
	if err != nil {
		log.Errorf("get daily total for user %d: %v", userID, err)
		return 0
	}

	return total
}

func (s *mealService) ResetWindow(ctx context.Context, userID int64, window domain.DayWindow) bool {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.mealRepository.DeleteEntriesSince(ctx, userID, window); err != nil {
		log.Errorf("reset window for user %d: %v", userID, err)
		return false
	}

	log.Infof("reset meal entries for user %d since %s", userID, window.Start.Format(time.RFC3339))
	return true
}

func (s *mealService) DeleteLast(ctx context.Context, userID int64) (*entities.MealEntry, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	entry, err := s.mealRepository.LatestMealEntry(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Infof("delete last meal for user %d: no entries", userID)
		} else {
			log.Errorf("find last meal for user %d: %v", userID, err)
		}
		return nil, false
	}

	if err := s.mealRepository.DeleteMealEntryByID(ctx, entry.ID); err != nil {
		log.Errorf("delete meal entry %d for user %d: %v", entry.ID, userID, err)
		return nil, false
	}

	log.Infof("deleted meal entry %d (%d calories) for user %d", entry.ID, entry.Calories, userID)
	return entry, true
}
