package service

import (
	"context"
	"encoding/json"
	"mindmate_backend/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func coachConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Model:          "test-model",
		RequestTimeout: 2 * time.Second,
	}
}

func TestCoachChatSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("expected system prompt as first message, got %+v", req.Messages)
		}
		if req.Messages[1].Content != "今天好累" {
			t.Errorf("unexpected user message %q", req.Messages[1].Content)
		}

		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []struct {
				Message CoachChatMessage `json:"message"`
			}{
				{Message: CoachChatMessage{Role: "assistant", Content: "你已经很棒了"}},
			},
		})
	}))
	defer server.Close()

	svc := NewCoachService(coachConfig(server.URL))
	reply, err := svc.Chat(context.Background(), "今天好累")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "你已经很棒了" {
		t.Errorf("unexpected reply %q", reply)
	}
}

func TestCoachChatUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer server.Close()

	svc := NewCoachService(coachConfig(server.URL))
	if _, err := svc.Chat(context.Background(), "hi"); err == nil {
		t.Fatal("expected error on upstream 500")
	}
}

func TestCoachChatNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	svc := NewCoachService(coachConfig(server.URL))
	if _, err := svc.Chat(context.Background(), "hi"); err == nil {
		t.Fatal("expected error when no choices returned")
	}
}

func TestCoachChatTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	cfg := coachConfig(server.URL)
	cfg.RequestTimeout = 50 * time.Millisecond
	svc := NewCoachService(cfg)
	if _, err := svc.Chat(context.Background(), "hi"); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestCoachUpdateConfig(t *testing.T) {
	svc := NewCoachService(coachConfig("http://old.example"))
	newCfg := coachConfig("http://new.example")
	newCfg.Model = "other-model"
	svc.UpdateConfig(newCfg)

	svc.mu.RLock()
	defer svc.mu.RUnlock()
	if svc.config.Model != "other-model" {
		t.Errorf("config not updated, model = %q", svc.config.Model)
	}
}
