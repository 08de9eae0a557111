package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"food-journal-backend/domain"
	"food-journal-backend/internal/utils"
	"io"
	"net/http"
	"strings"
	"time"
)

const insightsSystemPrompt = "You are a positive and encouraging nutritionist. " +
	"Focus only on the beneficial aspects and positive nutritional value of foods. " +
	"Keep responses under 100 words and highlight only the good qualities and health benefits. " +
	"Do not mention calories, macronutrients, or any numerical measurements. " +
	"Do not mention any drawbacks, warnings, or negative aspects. " +
	"Focus on nutrients, vitamins, minerals, and general well-being benefits."

type (
	InsightsService interface {
		GenerateFoodInsights(ctx context.Context, foodName string) (string, error)
	}

	insightsService struct{}
)

func NewInsightsService() InsightsService {
	return &insightsService{}
}

func (s *insightsService) GenerateFoodInsights(ctx context.Context, foodName string) (string, error) {
	apiKey := utils.GetConfig("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	model := utils.GetConfig("OPENAI_MODEL")
	if model == "" {
		model = "gpt-3.5-turbo"
	}

	requestBody := map[string]interface{}{
		"model": model,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": insightsSystemPrompt,
			},
			{
				"role":    "user",
				"content": fmt.Sprintf("What are the key nutritional benefits and positive qualities of %s?", foodName),
			},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(apiKey))

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var openAIResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", domain.ErrInsightsGenerationFailed
	}

	insightsText := strings.TrimSpace(openAIResp.Choices[0].Message.Content)
	if insightsText == "" {
		return "", domain.ErrInsightsGenerationFailed
	}

	return insightsText, nil
}
