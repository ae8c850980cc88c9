package progress

import (
	"MacroTrackr-Bot/domain"
	"MacroTrackr-Bot/pkg/meal"
	"context"
	"math"
	"strings"
	"time"
)

type (
	// Config carries the tracking constants. They are injected here once at
	// construction instead of being read from process globals, so tests can
	// vary targets and boundaries freely.
	Config struct {
		TargetCalories int
		BoundaryHour   int
		BarLength      int
	}

	ProgressService interface {
		Snapshot(ctx context.Context, userID int64, now time.Time) domain.ProgressSnapshot
		Reset(ctx context.Context, userID int64, now time.Time) bool
		Window(now time.Time) domain.DayWindow
		BarLength() int
	}

	progressService struct {
		mealService meal.MealService
		cfg         Config
	}
)

func NewProgressService(mealService meal.MealService, cfg Config) ProgressService {
	return &progressService{mealService: mealService, cfg: cfg}
}

// Snapshot computes the current daily progress from the ledger. Percentage is
// capped at 100 and remaining floored at 0 so over-eating never overflows the
// rendered bar.
func (s *progressService) Snapshot(ctx context.Context, userID int64, now time.Time) domain.ProgressSnapshot {
	window := domain.CurrentWindow(now, s.cfg.BoundaryHour)
	total := s.mealService.DailyTotal(ctx, userID, window)

	percentage := 0
	if s.cfg.TargetCalories > 0 {
		percentage = int(math.Round(float64(total) / float64(s.cfg.TargetCalories) * 100))
		if percentage > 100 {
			percentage = 100
		}
	}

	remaining := s.cfg.TargetCalories - total
	if remaining < 0 {
		remaining = 0
	}

	return domain.ProgressSnapshot{
		TotalCalories:     total,
		TargetCalories:    s.cfg.TargetCalories,
		Percentage:        percentage,
		RemainingCalories: remaining,
	}
}

func (s *progressService) Reset(ctx context.Context, userID int64, now time.Time) bool {
	return s.mealService.ResetWindow(ctx, userID, domain.CurrentWindow(now, s.cfg.BoundaryHour))
}

func (s *progressService) Window(now time.Time) domain.DayWindow {
	return domain.CurrentWindow(now, s.cfg.BoundaryHour)
}

func (s *progressService) BarLength() int {
	return s.cfg.BarLength
}

// Bar renders a fixed-width progress bar, filled cells first.
func Bar(percentage, length int) string {
	filled := int(math.Round(float64(length) * float64(percentage) / 100))
	if filled > length {
		filled = length
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", length-filled) + "]"
}
