package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/infrastructure/config"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

// completionServer answers every chat request with the given message
// content, or the given status when non-200.
func completionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])
		format, _ := req["response_format"].(map[string]interface{})
		assert.Equal(t, "json_object", format["type"])

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		envelope := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(envelope))
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient(&config.Config{
		AI: config.AIConfig{
			BaseURL:        baseURL,
			APIKey:         "test-key",
			Model:          "test-model",
			Temperature:    0.4,
			MaxTokens:      1024,
			RequestTimeout: 5 * time.Second,
		},
	}, zap.NewNop())
}

func TestSuggestWeekPlan(t *testing.T) {
	content := `{"suggestions":[{"dayOfWeek":1,"slot":"DINNER","recipeSlug":"beef-tacos","rationale":"fast"}]}`
	server := completionServer(t, http.StatusOK, content)
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.SuggestWeekPlan(context.Background(), outbound.WeekPlanRequest{WeekKey: "2026-W09"})
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "beef-tacos", resp.Suggestions[0].RecipeSlug)
	assert.Equal(t, 1, resp.Suggestions[0].DayOfWeek)
}

func TestSuggestWeekPlanMissingSuggestions(t *testing.T) {
	server := completionServer(t, http.StatusOK, `{"something":"else"}`)
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SuggestWeekPlan(context.Background(), outbound.WeekPlanRequest{WeekKey: "2026-W09"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeAIResponseInvalid, errors.GetCode(err))
}

func TestSuggestWeekPlanInvalidJSONContent(t *testing.T) {
	server := completionServer(t, http.StatusOK, "Here is your meal plan: tacos on Tuesday!")
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SuggestWeekPlan(context.Background(), outbound.WeekPlanRequest{WeekKey: "2026-W09"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeAIResponseInvalid, errors.GetCode(err))
}

func TestSuggestWeekPlanProviderError(t *testing.T) {
	server := completionServer(t, http.StatusTooManyRequests, "")
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SuggestWeekPlan(context.Background(), outbound.WeekPlanRequest{WeekKey: "2026-W09"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeExternalServiceError, errors.GetCode(err))
}

func TestSuggestSlot(t *testing.T) {
	content := `{"dayOfWeek":2,"slot":"DINNER","recipeSlug":"chickpea-curry","rationale":"meat-free"}`
	server := completionServer(t, http.StatusOK, content)
	defer server.Close()

	client := newTestClient(server.URL)
	suggestion, err := client.SuggestSlot(context.Background(), outbound.SlotRegenRequest{
		WeekKey:      "2026-W09",
		DayOfWeek:    2,
		Slot:         "DINNER",
		ExcludeSlugs: []string{"beef-tacos"},
	})
	require.NoError(t, err)
	assert.Equal(t, "chickpea-curry", suggestion.RecipeSlug)
	assert.Equal(t, "meat-free", suggestion.Rationale)
}

func TestSuggestSlotMissingSlug(t *testing.T) {
	server := completionServer(t, http.StatusOK, `{"dayOfWeek":2,"slot":"DINNER"}`)
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SuggestSlot(context.Background(), outbound.SlotRegenRequest{WeekKey: "2026-W09"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeAIResponseInvalid, errors.GetCode(err))
}

func TestModel(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	assert.Equal(t, "test-model", client.Model())
}
