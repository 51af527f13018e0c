package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/visualgenius/server/internal/domain"
)

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected authorization header: %q", auth)
		}
		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			ID:      "cmpl-1",
			Choices: []Choice{{Message: &ChatMessage{Role: "assistant", Content: content}}},
		})
	}))
}

func TestGenerateCardIdeas(t *testing.T) {
	srv := completionServer(t, `{"cards":[{"title":"Eat Breakfast","description":"Time to eat","category":"action"}]}`)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "gpt-4o-mini", 5*time.Second)
	ideas, err := c.GenerateCardIdeas(context.Background(), "breakfast")
	if err != nil {
		t.Fatalf("GenerateCardIdeas failed: %v", err)
	}
	if len(ideas) != 1 || ideas[0].Title != "Eat Breakfast" || ideas[0].Category != domain.CardCategoryAction {
		t.Fatalf("unexpected ideas: %+v", ideas)
	}
}

func TestGenerateCardIdeasStripsCodeFence(t *testing.T) {
	srv := completionServer(t, "```json\n{\"cards\":[{\"title\":\"Happy\",\"category\":\"emotion\"}]}\n```")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "gpt-4o-mini", 5*time.Second)
	ideas, err := c.GenerateCardIdeas(context.Background(), "feelings")
	if err != nil {
		t.Fatalf("GenerateCardIdeas failed: %v", err)
	}
	if len(ideas) != 1 || ideas[0].Title != "Happy" {
		t.Fatalf("unexpected ideas: %+v", ideas)
	}
}

func TestGenerateCardIdeasMalformedContent(t *testing.T) {
	srv := completionServer(t, "sorry, I cannot produce JSON today")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "gpt-4o-mini", 5*time.Second)
	_, err := c.GenerateCardIdeas(context.Background(), "breakfast")
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestGenerateCardIdeasUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "gpt-4o-mini", 5*time.Second)
	_, err := c.GenerateCardIdeas(context.Background(), "breakfast")
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestGenerateCardIdeasUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "test-key", "gpt-4o-mini", time.Second)
	_, err := c.GenerateCardIdeas(context.Background(), "breakfast")
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`{"cards":[]}`, `{"cards":[]}`},
		{"```json\n{\"cards\":[]}\n```", `{"cards":[]}`},
		{"```\n{\"cards\":[]}\n```", `{"cards":[]}`},
	}
	for _, tc := range cases {
		if got := stripCodeFence(tc.in); got != tc.want {
			t.Fatalf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMockClientIsDeterministic(t *testing.T) {
	c := NewMockClient()
	first, err := c.GenerateCardIdeas(context.Background(), "breakfast")
	if err != nil {
		t.Fatalf("GenerateCardIdeas failed: %v", err)
	}
	second, err := c.GenerateCardIdeas(context.Background(), "breakfast")
	if err != nil {
		t.Fatalf("GenerateCardIdeas failed: %v", err)
	}
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("unexpected ideas: %+v vs %+v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("ideas differ at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestNewIdeaGeneratorFactory(t *testing.T) {
	t.Setenv(EnvMode, ModeMock)
	if _, ok := NewIdeaGenerator("http://localhost", "", "gpt-4o-mini", time.Second).(*MockClient); !ok {
		t.Fatal("expected mock client in mock mode")
	}

	t.Setenv(EnvMode, "")
	if _, ok := NewIdeaGenerator("http://localhost", "", "gpt-4o-mini", time.Second).(*Client); !ok {
		t.Fatal("expected real client by default")
	}
}
