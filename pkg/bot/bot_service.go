package bot

import (
	"MacroTrackr-Bot/internal/utils/storage"
	"MacroTrackr-Bot/pkg/calorie"
	"MacroTrackr-Bot/pkg/meal"
	"MacroTrackr-Bot/pkg/progress"
	"MacroTrackr-Bot/pkg/telegram"
	"MacroTrackr-Bot/pkg/vision"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	Config struct {
		ChannelID string
	}

	// BotService wires inbound Telegram updates to the extractor, the
	// ledger and the progress calculator, and turns their sentinel results
	// into user-facing messages. The core packages never format text.
	BotService interface {
		HandleUpdate(ctx context.Context, update *tgbotapi.Update)
	}

	botService struct {
		telegramService telegram.TelegramService
		visionService   vision.VisionService
		extractor       *calorie.Extractor
		mealService     meal.MealService
		progressService progress.ProgressService
		s3              storage.AwsS3
		channelID       string
	}
)

func NewBotService(
	telegramService telegram.TelegramService,
	visionService vision.VisionService,
	extractor *calorie.Extractor,
	mealService meal.MealService,
	progressService progress.ProgressService,
	s3 storage.AwsS3,
	cfg Config,
) BotService {
	return &botService{
		telegramService: telegramService,
		visionService:   visionService,
		extractor:       extractor,
		mealService:     mealService,
		progressService: progressService,
		s3:              s3,
		channelID:       cfg.ChannelID,
	}
}

func (s *botService) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	if len(update.Message.Photo) > 0 {
		s.processMealPhoto(ctx, update.Message)
		return
	}
	s.processText(ctx, update.Message)
}

func (s *botService) processMealPhoto(ctx context.Context, msg *tgbotapi.Message) {
	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	userID, userName := senderOf(msg)

	caption := strings.TrimSpace(msg.Caption)
	if caption == "" {
		s.telegramService.SendMessage(chatID, "❌ Please include a brief description of your meal as a caption.")
		return
	}

	fileID := largestPhoto(msg.Photo).FileID
	s.telegramService.SendMessage(chatID, "🔄 Analyzing your meal...")

	imageData, err := s.telegramService.DownloadPhoto(fileID)
	if err != nil {
		log.Errorf("download meal photo for user %d: %v", userID, err)
		s.telegramService.SendMessage(chatID, "❌ Failed to download photo. Please try again.")
		return
	}

	analysis, err := s.visionService.AnalyzeMeal(ctx, imageData, caption)
	if err != nil {
		log.Errorf("analyze meal for user %d: %v", userID, err)
		s.telegramService.SendMessage(chatID, "❌ Failed to analyze meal. Please try again later.")
		return
	}

	calories := s.extractor.Extract(analysis)

	formatted := fmt.Sprintf("📊 *Meal Analysis for %s*\n\n%s", userName, analysis)
	s.telegramService.SendMessage(chatID, "✅ Analysis complete!\n\n"+formatted)

	channelOK := s.telegramService.SendPhoto(s.channelID, fileID, formatted)
	if !channelOK {
		s.telegramService.SendMessage(chatID, "⚠️ Analysis complete but failed to post to channel.")
		return
	}
	s.telegramService.SendMessage(chatID, "📤 Posted to tracking channel!")

	if calories == 0 {
		log.Warnf("no calories extracted from analysis for user %s", userName)
		return
	}

	photoURL := s.archivePhoto(imageData)
	if !s.mealService.Store(ctx, userID, userName, calories, analysis, photoURL) {
		log.Warnf("failed to store calories for user %s", userName)
		return
	}

	snap := s.progressService.Snapshot(ctx, userID, time.Now())
	s.telegramService.SendMessage(chatID, FormatProgressMessage(snap, s.progressService.BarLength()))
}

func (s *botService) processText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	userID, userName := senderOf(msg)

	switch strings.ToLower(strings.TrimSpace(msg.Text)) {
	case "/progress":
		snap := s.progressService.Snapshot(ctx, userID, time.Now())
		s.telegramService.SendMessage(chatID, FormatProgressMessage(snap, s.progressService.BarLength()))

	case "/resetprogress":
		if !s.progressService.Reset(ctx, userID, time.Now()) {
			s.telegramService.SendMessage(chatID, "❌ Failed to reset daily progress. Please try again.")
			return
		}
		snap := s.progressService.Snapshot(ctx, userID, time.Now())
		reset := fmt.Sprintf("✅ *Daily progress reset for %s*\n\n%s", userName, FormatProgressMessage(snap, s.progressService.BarLength()))
		s.telegramService.SendMessage(chatID, reset)

	case "/deletelast":
		deleted, ok := s.mealService.DeleteLast(ctx, userID)
		if !ok {
			s.telegramService.SendMessage(chatID, "ℹ️ No meal submission found to delete.")
			return
		}
		snap := s.progressService.Snapshot(ctx, userID, time.Now())
		undo := fmt.Sprintf("🗑 *Removed your last meal (%d kcal)*\n\n%s", deleted.Calories, FormatProgressMessage(snap, s.progressService.BarLength()))
		s.telegramService.SendMessage(chatID, undo)

	default:
		s.telegramService.SendMessage(chatID, HelpText())
	}
}

func (s *botService) archivePhoto(data []byte) string {
	if s.s3 == nil {
		return ""
	}

	fileName := fmt.Sprintf("meal-%s.jpg", uuid.New().String())
	objectKey, err := s.s3.UploadBytes(fileName, data, "meal-photos", "image/jpeg")
	if err != nil {
		// Best effort: the archive is auxiliary, the entry is stored anyway.
		log.Errorf("archive meal photo: %v", err)
		return ""
	}

	return s.s3.GetPublicLinkKey(objectKey)
}

func senderOf(msg *tgbotapi.Message) (int64, string) {
	if msg.From == nil {
		return 0, "Unknown"
	}
	name := msg.From.FirstName
	if name == "" {
		name = "Unknown"
	}
	return msg.From.ID, name
}

// largestPhoto picks the highest-resolution size Telegram offers.
func largestPhoto(sizes []tgbotapi.PhotoSize) tgbotapi.PhotoSize {
	best := sizes[0]
	for _, p := range sizes[1:] {
		if p.FileSize > best.FileSize {
			best = p
		}
	}
	return best
}
