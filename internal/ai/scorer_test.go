package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workhub_backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	reply    string
	err      error
	messages []Message
}

func (f *fakeCompleter) Complete(_ context.Context, messages []Message) (string, error) {
	f.messages = messages
	return f.reply, f.err
}

func testProfile() *models.WorkerProfile {
	p := &models.WorkerProfile{
		UserID:        "worker-1",
		HourlyRate:    decimal.NewFromInt(20),
		City:          "Almaty",
		District:      "Medeu",
		Availability:  models.AvailabilityAvailable,
		RatingAverage: 4.8,
		RatingCount:   12,
	}
	p.SetSkills([]string{"plumbing", "Electrics"})
	return p
}

func testTask() *models.Task {
	task := &models.Task{
		BaseModel:   models.BaseModel{ID: "task-1"},
		Title:       "Fix kitchen sink",
		Description: "The kitchen sink is leaking under the cabinet.",
		Category:    models.CategoryRepair,
		Budget:      decimal.NewFromInt(100),
		Currency:    "USD",
		Location:    models.Location{Address: "1 Main St", City: "Almaty", District: "Medeu"},
	}
	task.SetRequiredSkills([]string{"plumbing"})
	return task
}

func TestLLMScorerParsesReply(t *testing.T) {
	fc := &fakeCompleter{reply: "```json\n{\"score\": 91, \"reasons\": [\"Exact skill match\"]}\n```"}
	result := NewLLMScorer(fc).Score(context.Background(), testProfile(), testTask())

	assert.Equal(t, 91, result.Score)
	assert.Equal(t, []string{"Exact skill match"}, result.Reasons)
	assert.Equal(t, "worker-1", result.WorkerID)
	assert.Equal(t, "task-1", result.TaskID)

	require.Len(t, fc.messages, 2)
	assert.Equal(t, RoleSystem, fc.messages[0].Role)
	assert.Contains(t, fc.messages[1].Content, `"requiredSkills":["plumbing"]`)
}

func TestLLMScorerFallsBackOnFailure(t *testing.T) {
	for name, fc := range map[string]*fakeCompleter{
		"transport error": {err: errors.New("connection refused")},
		"garbage reply":   {reply: "no idea"},
	} {
		t.Run(name, func(t *testing.T) {
			result := NewLLMScorer(fc).Score(context.Background(), testProfile(), testTask())
			assert.Equal(t, DefaultScore, result.Score)
			assert.NotEmpty(t, result.Reasons)
		})
	}
}

func TestLLMScorerWithUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewOpenAIClient(ClientConfig{APIKey: "test", BaseURL: url, Timeout: time.Second})
	result := NewLLMScorer(client).Score(context.Background(), testProfile(), testTask())

	assert.Equal(t, DefaultScore, result.Score)
	assert.NotEmpty(t, result.Reasons)
}

func TestLLMScorerWithFailingService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "boom"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(ClientConfig{APIKey: "test", BaseURL: srv.URL, Timeout: time.Second})
	result := NewLLMScorer(client).Score(context.Background(), testProfile(), testTask())

	assert.Equal(t, DefaultScore, result.Score)
	assert.NotEmpty(t, result.Reasons)
}

func TestOpenAIClientComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"score\": 77, \"reasons\": [\"ok\"]}"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(ClientConfig{APIKey: "test", BaseURL: srv.URL, Model: "test-model", Timeout: time.Second})
	result := NewLLMScorer(client).Score(context.Background(), testProfile(), testTask())

	assert.Equal(t, 77, result.Score)
	assert.Equal(t, []string{"ok"}, result.Reasons)
}
