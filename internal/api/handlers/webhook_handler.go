package handlers

import (
	"MacroTrackr-Bot/domain"
	"MacroTrackr-Bot/internal/api/presenters"
	"MacroTrackr-Bot/pkg/bot"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
)

type (
	WebhookHandler interface {
		TelegramWebhook(c *fiber.Ctx) error
	}

	webhookHandler struct {
		botService bot.BotService
	}
)

func NewWebhookHandler(botService bot.BotService) WebhookHandler {
	return &webhookHandler{botService: botService}
}

// TelegramWebhook always acknowledges with 200 once the body parses.
// Telegram retries on any other status, which would replay the update.
func (h *webhookHandler) TelegramWebhook(c *fiber.Ctx) error {
	update := new(tgbotapi.Update)

	if err := c.BodyParser(update); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	h.botService.HandleUpdate(c.Context(), update)

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
