package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mindmate_backend/internal/config"
	"net/http"
	"sync"
)

// 教练人设固定，不随请求变化
const coachSystemPrompt = "你是一位友好、积极的私人激励教练。" +
	"倾听用户的感受，用温暖、具体、不说教的语言鼓励他们，" +
	"回答保持简短（三句话以内），必要时给出一个可以立刻行动的小建议。"

// CoachService 调用 OpenAI 兼容的 chat-completions 接口。
// 请求受超时约束，失败不重试，由调用方决定兜底话术。
type CoachService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewCoachService(cfg config.AIConfig) *CoachService {
	return &CoachService{
		config: cfg,
		client: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// UpdateConfig 配置热更新回调，允许运行期切换模型或上游地址
func (s *CoachService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client = &http.Client{Timeout: cfg.RequestTimeout}
}

type CoachChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string             `json:"model"`
	Messages []CoachChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message CoachChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat 转发一条用户消息并返回教练回复
func (s *CoachService) Chat(ctx context.Context, message string) (string, error) {
	s.mu.RLock()
	cfg := s.config
	client := s.client
	s.mu.RUnlock()

	reqBody := ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []CoachChatMessage{
			{Role: "system", Content: coachSystemPrompt},
			{Role: "user", Content: message},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}
