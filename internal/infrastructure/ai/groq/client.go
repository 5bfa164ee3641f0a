// Package groq implements the AI planning boundary against the Groq
// OpenAI-compatible chat completions API.
package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/infrastructure/config"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

// Client talks to the Groq chat completions endpoint and asks for
// structured JSON answers.
type Client struct {
	client      *resty.Client
	model       string
	temperature float64
	maxTokens   int
	logger      *zap.Logger
}

// NewClient creates a Groq client from configuration.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.AI.BaseURL).
		SetAuthToken(cfg.AI.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.AI.RequestTimeout).
		SetRetryCount(cfg.AI.RetryCount)

	return &Client{
		client:      client,
		model:       cfg.AI.Model,
		temperature: cfg.AI.Temperature,
		maxTokens:   cfg.AI.MaxTokens,
		logger:      logger.Named("groq-client"),
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// SuggestWeekPlan asks for a full week of meal suggestions.
func (c *Client) SuggestWeekPlan(ctx context.Context, req outbound.WeekPlanRequest) (*outbound.WeekPlanResponse, error) {
	system := "You are a meal planning assistant. Respond with a JSON object of the form " +
		`{"suggestions":[{"dayOfWeek":0,"slot":"BREAKFAST","recipeSlug":"...","rationale":"..."}]}. ` +
		"dayOfWeek is 0 (Monday) through 6 (Sunday); slot is BREAKFAST, LUNCH, or DINNER. " +
		"Only use recipeSlug values from the provided recipe list."

	user, err := buildWeekPrompt(req)
	if err != nil {
		return nil, err
	}

	var resp outbound.WeekPlanResponse
	if err := c.chatJSON(ctx, system, user, &resp); err != nil {
		return nil, err
	}
	if resp.Suggestions == nil {
		return nil, errors.NewAIResponseInvalidError("missing suggestions array")
	}
	return &resp, nil
}

// SuggestSlot asks for a single replacement for one slot.
func (c *Client) SuggestSlot(ctx context.Context, req outbound.SlotRegenRequest) (*outbound.PlanSuggestion, error) {
	system := "You are a meal planning assistant. Respond with a JSON object of the form " +
		`{"dayOfWeek":0,"slot":"BREAKFAST","recipeSlug":"...","rationale":"..."}. ` +
		"Only use recipeSlug values from the provided recipe list and never suggest an excluded slug."

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode slot request: %w", err)
	}
	user := fmt.Sprintf(
		"Suggest one different meal for day %d, slot %s of week %s.\nContext:\n%s",
		req.DayOfWeek, req.Slot, req.WeekKey, payload,
	)

	var suggestion outbound.PlanSuggestion
	if err := c.chatJSON(ctx, system, user, &suggestion); err != nil {
		return nil, err
	}
	if suggestion.RecipeSlug == "" {
		return nil, errors.NewAIResponseInvalidError("missing recipeSlug")
	}
	return &suggestion, nil
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// chatJSON sends one completion request in JSON mode and unmarshals the
// model's answer into out.
func (c *Client) chatJSON(ctx context.Context, system, user string, out interface{}) error {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    c.temperature,
		MaxTokens:      c.maxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return errors.NewExternalServiceError("groq", err)
	}
	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn("Groq returned non-200 status",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", truncate(resp.String(), 500)),
		)
		return errors.NewExternalServiceError("groq", fmt.Errorf("status %d", resp.StatusCode()))
	}

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return errors.NewAIResponseInvalidError("unparseable completion envelope")
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return errors.NewAIResponseInvalidError("empty completion")
	}

	content := parsed.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		c.logger.Warn("Groq answered with invalid JSON",
			zap.String("content", truncate(content, 500)),
		)
		return errors.NewAIResponseInvalidError("completion is not valid JSON")
	}
	return nil
}

func buildWeekPrompt(req outbound.WeekPlanRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode week request: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Plan meals for week %s.\n", req.WeekKey)
	b.WriteString("Prefer recipes using pantry ingredients and respect the household's preferences, allergies, and time limits.\n")
	b.WriteString("Context:\n")
	b.Write(payload)
	return b.String(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

var _ outbound.AIService = (*Client)(nil)
