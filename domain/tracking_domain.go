package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogMeal      = "meal logged successfully"
	MessageSuccessGetProgress  = "daily progress retrieved successfully"
	MessageSuccessInitDatabase = "database initialized successfully"
	MessageSuccessWebhook      = "update processed"

	MessageSuccessDeleteLast = "last meal entry deleted"
	MessageFailedDeleteLast  = "no meal entry to delete"

	MessageFailedLogMeal      = "failed to log meal"
	MessageFailedGetProgress  = "failed to retrieve daily progress"
	MessageFailedInitDatabase = "failed to initialize database"

	ErrNoCaloriesFound = errors.New("no usable calorie figure in analysis text")
	ErrStoreFailed     = errors.New("meal entry could not be stored")
)

type (
	LogMealRequest struct {
		UserID       int64  `json:"user_id" validate:"required"`
		UserName     string `json:"user_name" validate:"required"`
		AnalysisText string `json:"analysis_text" validate:"required"`
	}

	LogMealResponse struct {
		Calories int              `json:"calories"`
		Progress ProgressSnapshot `json:"progress"`
	}

	// ProgressSnapshot is computed fresh on every request, never cached.
	ProgressSnapshot struct {
		TotalCalories     int `json:"total_calories"`
		TargetCalories    int `json:"target_calories"`
		Percentage        int `json:"percentage"`
		RemainingCalories int `json:"remaining_calories"`
	}

	MealEntryResponse struct {
		ID        uint      `json:"id"`
		UserID    int64     `json:"user_id"`
		UserName  string    `json:"user_name"`
		Calories  int       `json:"calories"`
		CreatedAt time.Time `json:"created_at"`
	}

	HealthResponse struct {
		Status   string `json:"status"`
		Service  string `json:"service"`
		Database string `json:"database"`
	}
)
