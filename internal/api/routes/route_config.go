package routes

import (
	"MacroTrackr-Bot/internal/api/handlers"
	"MacroTrackr-Bot/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	WebhookHandler  handlers.WebhookHandler
	TrackingHandler handlers.TrackingHandler
	Middleware      middleware.Middleware
	WebhookSecret   string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Webhook()
	c.Meals()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) Webhook() {
	c.App.Post(
		"/webhook/telegram",
		c.Middleware.TelegramAuthMiddleware(c.WebhookSecret),
		c.WebhookHandler.TelegramWebhook,
	)
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals")
	{
		meals.Post("", c.TrackingHandler.LogMeal)
		meals.Get("/progress/:user_id", c.TrackingHandler.GetProgress)
		meals.Delete("/last/:user_id", c.TrackingHandler.DeleteLastMeal)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin", c.Middleware.TelegramAuthMiddleware(c.WebhookSecret))
	admin.Post("/init-db", c.TrackingHandler.InitDatabase)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/health", c.TrackingHandler.HealthCheck)
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
