package bot

import (
	"MacroTrackr-Bot/domain"
	"MacroTrackr-Bot/entities"
	"MacroTrackr-Bot/pkg/calorie"
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type stubTelegram struct {
	sent       []string
	sentTo     []string
	photosTo   []string
	photoData  []byte
	downloadOK bool
}

func (s *stubTelegram) SendMessage(chatID string, text string) bool {
	s.sentTo = append(s.sentTo, chatID)
	s.sent = append(s.sent, text)
	return true
}

func (s *stubTelegram) SendPhoto(chatID string, fileID string, caption string) bool {
	s.photosTo = append(s.photosTo, chatID)
	return true
}

func (s *stubTelegram) DownloadPhoto(fileID string) ([]byte, error) {
	if !s.downloadOK {
		return nil, context.DeadlineExceeded
	}
	return s.photoData, nil
}

type stubVision struct {
	analysis string
}

func (s *stubVision) AnalyzeMeal(ctx context.Context, imageData []byte, caption string) (string, error) {
	return s.analysis, nil
}

type stubMeal struct {
	stored  []int
	deleted *entities.MealEntry
	resetOK bool
	total   int
}

func (s *stubMeal) Store(ctx context.Context, userID int64, userName string, calories int, analysisText, photoURL string) bool {
	s.stored = append(s.stored, calories)
	return true
}

func (s *stubMeal) DailyTotal(ctx context.Context, userID int64, window domain.DayWindow) int {
	return s.total
}

func (s *stubMeal) ResetWindow(ctx context.Context, userID int64, window domain.DayWindow) bool {
	return s.resetOK
}

func (s *stubMeal) DeleteLast(ctx context.Context, userID int64) (*entities.MealEntry, bool) {
	if s.deleted == nil {
		return nil, false
	}
	return s.deleted, true
}

type stubProgress struct {
	snap domain.ProgressSnapshot
}

func (s *stubProgress) Snapshot(ctx context.Context, userID int64, now time.Time) domain.ProgressSnapshot {
	return s.snap
}

func (s *stubProgress) Reset(ctx context.Context, userID int64, now time.Time) bool {
	return true
}

func (s *stubProgress) Window(now time.Time) domain.DayWindow {
	return domain.CurrentWindow(now, 5)
}

func (s *stubProgress) BarLength() int { return 20 }

func photoMessage(caption string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat:    &tgbotapi.Chat{ID: 42},
		From:    &tgbotapi.User{ID: 7, FirstName: "Dana"},
		Caption: caption,
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small", FileSize: 100},
			{FileID: "large", FileSize: 900},
		},
	}
}

func textMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 42},
		From: &tgbotapi.User{ID: 7, FirstName: "Dana"},
		Text: text,
	}
}

func testExtractor() *calorie.Extractor {
	return calorie.NewExtractor(0, 3000)
}

func newTestBot(tg *stubTelegram, ms *stubMeal, analysis string) BotService {
	return NewBotService(
		tg,
		&stubVision{analysis: analysis},
		testExtractor(),
		ms,
		&stubProgress{snap: domain.ProgressSnapshot{
			TotalCalories:     450,
			TargetCalories:    1350,
			Percentage:        33,
			RemainingCalories: 900,
		}},
		nil,
		Config{ChannelID: "@macrotracker"},
	)
}

func TestHandleUpdatePhotoStoresCaloriesAndReportsProgress(t *testing.T) {
	tg := &stubTelegram{downloadOK: true, photoData: []byte("jpeg")}
	ms := &stubMeal{}
	svc := newTestBot(tg, ms, "*Total:* 450 kcal | P 30g | C 40g | F 10g")

	svc.HandleUpdate(context.Background(), &tgbotapi.Update{Message: photoMessage("grilled chicken")})

	if len(ms.stored) != 1 || ms.stored[0] != 450 {
		t.Fatalf("stored = %v, want [450]", ms.stored)
	}
	if len(tg.photosTo) != 1 || tg.photosTo[0] != "@macrotracker" {
		t.Errorf("photo posted to %v, want channel", tg.photosTo)
	}
	last := tg.sent[len(tg.sent)-1]
	if !strings.Contains(last, "Daily Calorie Progress") {
		t.Errorf("final message %q should report progress", last)
	}
}

func TestHandleUpdatePhotoWithoutCaption(t *testing.T) {
	tg := &stubTelegram{downloadOK: true}
	ms := &stubMeal{}
	svc := newTestBot(tg, ms, "")

	svc.HandleUpdate(context.Background(), &tgbotapi.Update{Message: photoMessage("")})

	if len(ms.stored) != 0 {
		t.Fatalf("stored %v entries for uncaptioned photo", ms.stored)
	}
	if len(tg.sent) != 1 || !strings.Contains(tg.sent[0], "caption") {
		t.Errorf("sent = %v, want caption prompt", tg.sent)
	}
}

func TestHandleUpdatePhotoNoExtractableCalories(t *testing.T) {
	tg := &stubTelegram{downloadOK: true, photoData: []byte("jpeg")}
	ms := &stubMeal{}
	svc := newTestBot(tg, ms, "looks delicious but no numbers here")

	svc.HandleUpdate(context.Background(), &tgbotapi.Update{Message: photoMessage("mystery soup")})

	if len(ms.stored) != 0 {
		t.Fatalf("stored %v entries without a calorie figure", ms.stored)
	}
	// Analysis is still delivered and posted to the channel.
	if len(tg.photosTo) != 1 {
		t.Errorf("photo should still reach the channel, got %v", tg.photosTo)
	}
}

func TestHandleUpdateProgressCommand(t *testing.T) {
	tg := &stubTelegram{}
	svc := newTestBot(tg, &stubMeal{}, "")

	svc.HandleUpdate(context.Background(), &tgbotapi.Update{Message: textMessage("/progress")})

	if len(tg.sent) != 1 || !strings.Contains(tg.sent[0], "450 / 1350 kcal (33%)") {
		t.Errorf("sent = %v, want progress card", tg.sent)
	}
}

func TestHandleUpdateDeleteLastEmpty(t *testing.T) {
	tg := &stubTelegram{}
	svc := newTestBot(tg, &stubMeal{}, "")

	svc.HandleUpdate(context.Background(), &tgbotapi.Update{Message: textMessage("/deletelast")})

	if len(tg.sent) != 1 || !strings.Contains(tg.sent[0], "No meal submission") {
		t.Errorf("sent = %v, want empty-ledger notice", tg.sent)
	}
}

func TestHandleUpdateDeleteLastReportsRemovedCalories(t *testing.T) {
	tg := &stubTelegram{}
	ms := &stubMeal{deleted: &entities.MealEntry{ID: 3, Calories: 320}}
	svc := newTestBot(tg, ms, "")

	svc.HandleUpdate(context.Background(), &tgbotapi.Update{Message: textMessage("/deletelast")})

	if len(tg.sent) != 1 || !strings.Contains(tg.sent[0], "320 kcal") {
		t.Errorf("sent = %v, want removed calories", tg.sent)
	}
}

func TestHandleUpdateUnknownTextSendsHelp(t *testing.T) {
	tg := &stubTelegram{}
	svc := newTestBot(tg, &stubMeal{}, "")

	svc.HandleUpdate(context.Background(), &tgbotapi.Update{Message: textMessage("hello there")})

	if len(tg.sent) != 1 || !strings.Contains(tg.sent[0], "/progress") {
		t.Errorf("sent = %v, want help text", tg.sent)
	}
}

func TestHandleUpdateIgnoresNonMessageUpdates(t *testing.T) {
	tg := &stubTelegram{}
	svc := newTestBot(tg, &stubMeal{}, "")

	svc.HandleUpdate(context.Background(), &tgbotapi.Update{})

	if len(tg.sent) != 0 {
		t.Errorf("sent = %v, want nothing", tg.sent)
	}
}
