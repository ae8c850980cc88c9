package config

import (
	"MacroTrackr-Bot/internal/api/handlers"
	"MacroTrackr-Bot/internal/api/routes"
	"MacroTrackr-Bot/internal/middleware"
	"MacroTrackr-Bot/internal/utils"
	"MacroTrackr-Bot/internal/utils/storage"
	"MacroTrackr-Bot/pkg/bot"
	"MacroTrackr-Bot/pkg/calorie"
	"MacroTrackr-Bot/pkg/meal"
	"MacroTrackr-Bot/pkg/progress"
	"MacroTrackr-Bot/pkg/telegram"
	"MacroTrackr-Bot/pkg/vision"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	var s3 storage.AwsS3
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		s3 = storage.NewAwsS3()
	}

	telegramService, err := telegram.NewTelegramService(utils.GetConfig("TELEGRAM_BOT_TOKEN"))
	if err != nil {
		return nil, err
	}
	visionService := vision.NewVisionService(
		utils.GetConfig("OPENAI_API_KEY"),
		utils.GetConfig("OPENAI_MODEL"),
	)

	extractor := calorie.NewExtractor(
		utils.GetIntConfig("MIN_CALORIE_VALUE", 0),
		utils.GetIntConfig("MAX_CALORIE_VALUE", 3000),
	)

	// Repository
	mealRepository := meal.NewMealRepository(db)

	// Service
	mealService := meal.NewMealService(mealRepository)
	progressService := progress.NewProgressService(mealService, progress.Config{
		TargetCalories: utils.GetIntConfig("DAILY_CALORIE_TARGET", 1350),
		BoundaryHour:   utils.GetIntConfig("DAY_BOUNDARY_HOUR", 5),
		BarLength:      utils.GetIntConfig("PROGRESS_BAR_LENGTH", 20),
	})
	botService := bot.NewBotService(
		telegramService,
		visionService,
		extractor,
		mealService,
		progressService,
		s3,
		bot.Config{ChannelID: utils.GetConfig("CHANNEL_ID")},
	)

	// Handler
	webhookHandler := handlers.NewWebhookHandler(botService)
	trackingHandler := handlers.NewTrackingHandler(mealService, progressService, extractor, validator, db)

	// routes
	routesConfig := routes.Config{
		App:             app,
		WebhookHandler:  webhookHandler,
		TrackingHandler: trackingHandler,
		Middleware:      middlewares,
		WebhookSecret:   utils.GetConfig("TELEGRAM_WEBHOOK_SECRET"),
	}
	routesConfig.Setup()
	return app, nil
}
