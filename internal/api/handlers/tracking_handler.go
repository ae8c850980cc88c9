package handlers

import (
	"MacroTrackr-Bot/cmd/database/migrate"
	"MacroTrackr-Bot/domain"
	"MacroTrackr-Bot/internal/api/presenters"
	"MacroTrackr-Bot/pkg/calorie"
	"MacroTrackr-Bot/pkg/meal"
	"MacroTrackr-Bot/pkg/progress"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type (
	TrackingHandler interface {
		LogMeal(c *fiber.Ctx) error
		GetProgress(c *fiber.Ctx) error
		DeleteLastMeal(c *fiber.Ctx) error
		HealthCheck(c *fiber.Ctx) error
		InitDatabase(c *fiber.Ctx) error
	}

	trackingHandler struct {
		mealService     meal.MealService
		progressService progress.ProgressService
		extractor       *calorie.Extractor
		validator       *validator.Validate
		db              *gorm.DB
	}
)

func NewTrackingHandler(
	mealService meal.MealService,
	progressService progress.ProgressService,
	extractor *calorie.Extractor,
	validator *validator.Validate,
	db *gorm.DB,
) TrackingHandler {
	return &trackingHandler{
		mealService:     mealService,
		progressService: progressService,
		extractor:       extractor,
		validator:       validator,
		db:              db,
	}
}

// LogMeal records a meal from pre-analyzed text, bypassing Telegram. Useful
// for backfills and for clients that run their own analysis.
func (h *trackingHandler) LogMeal(c *fiber.Ctx) error {
	req := new(domain.LogMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogMeal, err)
	}

	calories := h.extractor.Extract(req.AnalysisText)
	if calories == 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogMeal, domain.ErrNoCaloriesFound)
	}

	if !h.mealService.Store(c.Context(), req.UserID, req.UserName, calories, req.AnalysisText, "") {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogMeal, domain.ErrStoreFailed)
	}

	res := domain.LogMealResponse{
		Calories: calories,
		Progress: h.progressService.Snapshot(c.Context(), req.UserID, time.Now()),
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogMeal)
}

func (h *trackingHandler) GetProgress(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProgress, domain.ErrParseUserID)
	}

	snap := h.progressService.Snapshot(c.Context(), userID, time.Now())

	return presenters.SuccessResponse(c, snap, fiber.StatusOK, domain.MessageSuccessGetProgress)
}

func (h *trackingHandler) DeleteLastMeal(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteLast, domain.ErrParseUserID)
	}

	entry, ok := h.mealService.DeleteLast(c.Context(), userID)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteLast, nil)
	}

	res := domain.MealEntryResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		UserName:  entry.UserName,
		Calories:  entry.Calories,
		CreatedAt: entry.CreatedAt,
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteLast)
}

func (h *trackingHandler) HealthCheck(c *fiber.Ctx) error {
	res := domain.HealthResponse{
		Status:   "healthy",
		Service:  "macrotrackr-bot",
		Database: "connected",
	}

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Context()) != nil {
		res.Status = "degraded"
		res.Database = "disconnected"
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, res.Status)
}

func (h *trackingHandler) InitDatabase(c *fiber.Ctx) error {
	if err := migration.Migrate(h.db); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedInitDatabase, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessInitDatabase)
}
