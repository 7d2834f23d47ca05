package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"gabojago/internal/models/request_models"
	"gabojago/internal/models/response_models"
)

type ScheduleGeneratorInterface interface {
	GenerateSchedule(ctx context.Context, req request_models.GenerateScheduleRequest) (*response_models.AISchedule, error)
}

// GeminiScheduleClient implements ScheduleGeneratorInterface using Google's
// Gemini models.
type GeminiScheduleClient struct {
	client *genai.Client
	model  string
}

func NewGeminiScheduleClient(apiKey, model string) (ScheduleGeneratorInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiScheduleClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiScheduleClient) GenerateSchedule(ctx context.Context, req request_models.GenerateScheduleRequest) (*response_models.AISchedule, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, fmt.Errorf("destination cannot be empty")
	}
	if req.StartDate == "" || req.EndDate == "" {
		return nil, fmt.Errorf("trip dates are required")
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so no brace-matching is needed afterwards.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(8000)

	prompt := BuildSchedulePrompt(req)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content generated")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return ParseAISchedule(content)
}

// ParseAISchedule decodes the model output into the tagged schedule schema
// and runs the single boundary normalization pass.
func ParseAISchedule(raw string) (*response_models.AISchedule, error) {
	raw = CleanJSONResponse(raw)

	var schedule response_models.AISchedule
	if err := json.Unmarshal([]byte(raw), &schedule); err != nil {
		return nil, fmt.Errorf("invalid schedule JSON: %w", err)
	}
	if len(schedule.DaySchedules) == 0 {
		return nil, fmt.Errorf("no day_schedules in response")
	}

	schedule.Normalize()
	return &schedule, nil
}

// CleanJSONResponse strips Markdown fences some models wrap around JSON.
func CleanJSONResponse(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// BuildSchedulePrompt renders the generation instruction for one trip. The
// rules that matter downstream: place names must carry the trip region as a
// prefix (the search side strips it again), category codes only from the
// fixed Kakao set and left empty when unsure, every timestamp in
// "YYYY-MM-DD HH:MM:SS", no same-day duplicate places.
func BuildSchedulePrompt(req request_models.GenerateScheduleRequest) string {
	var prompt strings.Builder

	prompt.WriteString("You are a detailed travel scheduler AI. Return JSON only, matching this schema exactly:\n")
	prompt.WriteString(`{"day_schedules":[{"day":1,"activities":[{"place_name":"...","category_group_code":"","dtSchedule":"YYYY-MM-DD HH:MM:SS","strMemo":"..."}]}]}`)
	prompt.WriteString("\n\nRules:\n")
	prompt.WriteString("1. Fill every day of the period, morning of the first day through afternoon of the last.\n")
	prompt.WriteString("2. place_name MUST be '<destination region> <official place name>', e.g. not '애월 카페' but '제주 몽상드애월', not '가야밀면' but '부산 가야밀면'. This is critical for map search.\n")
	prompt.WriteString("3. category_group_code: use FD6 for restaurants, CE7 for cafes, AD5 for lodging. For ambiguous sights (markets, beaches, parks, theme parks) leave it as an empty string — a wrong code makes the map search return nothing. Other allowed codes: MT1, CS2, PS3, SC4, AC5, PK6, OL7, SW8, BK9, CT1, AG2, PO3, AT4, HP8, PM9.\n")
	prompt.WriteString("4. dtSchedule must include the date of its day, formatted YYYY-MM-DD HH:MM:SS.\n")
	prompt.WriteString("5. strMemo: what to do or order there, about 15 characters, Korean.\n")
	prompt.WriteString("6. Include at least one lodging (AD5) at the start or end of each day's plan.\n")
	prompt.WriteString("7. Never visit the same place_name twice on the same day.\n")
	prompt.WriteString("8. Group each day's places by neighborhood so the route is realistic for the given transport.\n")
	prompt.WriteString("9. Start the first day and end the last day at the region's main transport hub (e.g. 부산역, 제주국제공항).\n")
	prompt.WriteString("10. All text output in Korean.\n\n")

	fmt.Fprintf(&prompt, "Trip: destination %s, period %s ~ %s, companions %s, transport %s, theme %s, %d people, total budget %d KRW (transport %d%%, lodging %d%%, food %d%%).\n",
		req.Destination, req.StartDate, req.EndDate, req.WithWho, req.Transport,
		req.TripStyle, req.TotalPeople, req.TotalBudget,
		req.TransportRatio, req.LodgingRatio, req.FoodRatio)

	return prompt.String()
}
