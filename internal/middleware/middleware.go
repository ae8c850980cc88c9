package middleware

import (
	"MacroTrackr-Bot/domain"
	"MacroTrackr-Bot/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		TelegramAuthMiddleware(secret string) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// TelegramAuthMiddleware verifies the secret token Telegram echoes back on
// every webhook delivery. An empty configured secret disables the check.
func (m *middleware) TelegramAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}
		if c.Get("X-Telegram-Bot-Api-Secret-Token") != secret {
			return presenters.ErrorResponse(
				c,
				fiber.StatusUnauthorized,
				domain.MessageFailedTokenInvalid,
				domain.ErrInvalidWebhookSecret,
			)
		}
		return c.Next()
	}
}
