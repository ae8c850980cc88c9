package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const defaultModel = "gpt-4o-mini"

// The breakdown format is load-bearing: the calorie extractor keys off the
// *Total:* line this prompt asks for.
const analysisPrompt = `Analyze this meal photo and description: "%s"

Provide a detailed calorie and macro breakdown in this exact format:

*Meal:* [brief summary of the meal]
*Breakdown:*
• [food item 1]: [calories] kcal | P [protein]g | C [carbs]g | F [fat]g
• [food item 2]: [calories] kcal | P [protein]g | C [carbs]g | F [fat]g
[continue for all visible items]
*Total:* [total calories] kcal | P [total protein]g | C [total carbs]g | F [total fat]g`

type (
	VisionService interface {
		AnalyzeMeal(ctx context.Context, imageData []byte, caption string) (string, error)
	}

	visionService struct {
		client openai.Client
		model  string
	}
)

func NewVisionService(apiKey, model string) VisionService {
	if model == "" {
		model = defaultModel
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)

	return &visionService{client: client, model: model}
}

func (s *visionService) AnalyzeMeal(ctx context.Context, imageData []byte, caption string) (string, error) {
	imageURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageData)

	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(fmt.Sprintf(analysisPrompt, caption)),
		openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: imageURL}),
	}

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               shared.ChatModel(s.model),
		Messages:            []openai.ChatCompletionMessageParamUnion{openai.UserMessage(parts)},
		MaxCompletionTokens: openai.Int(700),
	})
	if err != nil {
		return "", fmt.Errorf("openai meal analysis: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai meal analysis: empty response")
	}

	log.Infof("openai token usage: input %d, output %d, total %d",
		completion.Usage.PromptTokens, completion.Usage.CompletionTokens, completion.Usage.TotalTokens)

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
