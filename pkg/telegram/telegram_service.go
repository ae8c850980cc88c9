package telegram

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2/log"
)

type (
	// TelegramService is the outbound transport. Send operations swallow and
	// log API failures, reporting success as a boolean, because a dropped
	// notification must never abort the flow that produced it.
	TelegramService interface {
		SendMessage(chatID string, text string) bool
		SendPhoto(chatID string, fileID string, caption string) bool
		DownloadPhoto(fileID string) ([]byte, error)
	}

	telegramService struct {
		bot        *tgbotapi.BotAPI
		token      string
		httpClient *http.Client
	}
)

func NewTelegramService(token string) (TelegramService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	log.Infof("telegram authorized as @%s", bot.Self.UserName)

	return &telegramService{
		bot:        bot,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *telegramService) SendMessage(chatID string, text string) bool {
	var msg tgbotapi.MessageConfig
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(id, text)
	} else {
		// Channel targets like "@macrotrackr" are addressed by username.
		msg = tgbotapi.NewMessageToChannel(chatID, text)
	}
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := s.bot.Send(msg); err != nil {
		log.Errorf("send telegram message to %s: %v", chatID, err)
		return false
	}
	return true
}

func (s *telegramService) SendPhoto(chatID string, fileID string, caption string) bool {
	var msg tgbotapi.PhotoConfig
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		msg = tgbotapi.NewPhoto(id, tgbotapi.FileID(fileID))
	} else {
		msg = tgbotapi.NewPhotoToChannel(chatID, tgbotapi.FileID(fileID))
	}
	msg.Caption = caption
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := s.bot.Send(msg); err != nil {
		log.Errorf("send telegram photo to %s: %v", chatID, err)
		return false
	}
	return true
}

func (s *telegramService) DownloadPhoto(fileID string) ([]byte, error) {
	file, err := s.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get telegram file: %w", err)
	}

	resp, err := s.httpClient.Get(file.Link(s.token))
	if err != nil {
		return nil, fmt.Errorf("download telegram file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download telegram file: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read telegram file body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("telegram file is empty")
	}

	return data, nil
}
