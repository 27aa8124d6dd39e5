package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

// NewOpenAI builds a client for any OpenAI-compatible chat-completions
// endpoint. The per-call deadline comes from the caller's context.
func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *openAI) GeneratePlan(ctx context.Context, req PlanRequest) (*PlanResponse, error) {
	type chatReq struct {
		Model       string              `json:"model"`
		Messages    []map[string]string `json:"messages"`
		Temperature float64             `json:"temperature"`
	}
	body := chatReq{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": "You are an agronomist for smallholder farmers in Bangladesh. Reply ONLY valid JSON."},
			{"role": "user", "content": renderPlanPrompt(req)},
		},
		Temperature: 0.2,
	}

	b, _ := json.Marshal(body)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.key)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("plan service: status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("plan service: decode: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("plan service: no choices")
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var plan PlanResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &plan); err != nil {
		return nil, fmt.Errorf("plan service: parse plan: %w", err)
	}
	if len(plan.Title) == 0 || len(plan.Overview) == 0 {
		return nil, fmt.Errorf("plan service: response missing title or overview")
	}
	return &plan, nil
}

func renderPlanPrompt(req PlanRequest) string {
	harvest := req.HarvestDate
	if harvest == "" {
		harvest = "infer a realistic date from the crop's maturity"
	}
	return fmt.Sprintf(`Build a complete farming task schedule for one planting cycle.

CROP: %s (%s), AREA: %.2f, COUNTRY: %s
PLANTING DATE: %s
HARVEST DATE: %s

Day offsets in rules are relative to the planting date, ranges inclusive.
Localized strings carry "en" and "bn" entries.
Reply ONLY JSON of this exact shape:
{
  "title": {"en": "...", "bn": "..."},
  "overview": {"en": "...", "bn": "..."},
  "harvest_date": "YYYY-MM-DD",
  "watering": [{"start_day": 0, "end_day": 30, "every_days": 1,
    "time_of_day": "morning",
    "title": {"key": "...", "localized": {"en": "...", "bn": "..."}},
    "notes": {"key": "...", "localized": {"en": "...", "bn": "..."}}}],
  "recurring": [{"category": "watering|fertilizer|pest|disease|field|harvest|general",
    "start_day": 0, "end_day": 30, "every_days": 7,
    "title": {...}, "notes": {...}}],
  "one_offs": [{"category": "...", "due_date": "YYYY-MM-DD",
    "time_of_day": "...", "title": {...}, "notes": {...}}]
}`,
		req.CropName, req.CropType, req.Area, req.Country, req.PlantingDate, harvest)
}
