package utils

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"gabojago/internal/models/request_models"
	"gabojago/internal/models/response_models"
)

// OpenAIScheduleClient is the drop-in alternative generator for
// deployments without a Gemini key.
type OpenAIScheduleClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIScheduleClient(apiKey, model string) ScheduleGeneratorInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIScheduleClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIScheduleClient) GenerateSchedule(ctx context.Context, req request_models.GenerateScheduleRequest) (*response_models.AISchedule, error) {
	if req.Destination == "" {
		return nil, fmt.Errorf("destination cannot be empty")
	}
	if req.StartDate == "" || req.EndDate == "" {
		return nil, fmt.Errorf("trip dates are required")
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a detailed travel scheduler AI. Respond with JSON only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildSchedulePrompt(req),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no content generated")
	}

	return ParseAISchedule(resp.Choices[0].Message.Content)
}
