package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jobtimizer/jobtimizer/internal/config"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// CompletionProvider abstracts a chat-completion backend.
type CompletionProvider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
	Configured() bool
}

// OpenAIService talks to any OpenAI-compatible chat completions API.
type OpenAIService struct {
	client    *resty.Client
	apiKey    string
	baseURL   string
	chatModel string
	log       *zap.Logger
}

func NewOpenAIService(log *zap.Logger) *OpenAIService {
	cfg := config.LoadOpenAIConfig()
	return &OpenAIService{
		client:    resty.New().SetTimeout(90 * time.Second),
		apiKey:    cfg.APIKey,
		baseURL:   cfg.BaseURL,
		chatModel: cfg.ChatModel,
		log:       log,
	}
}

func (s *OpenAIService) Configured() bool {
	return s.apiKey != ""
}

// Complete sends one system+user prompt pair and returns the raw model
// reply. No retries here: scoring falls back per dimension instead.
func (s *OpenAIService) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.chatModel,
			"messages": []map[string]string{
				{"role": "system", "content": systemPrompt},
				{"role": "user", "content": userPrompt},
			},
			"max_completion_tokens": maxTokens,
		}).
		Post(s.baseURL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if resp.IsError() {
		s.log.Error("chat completion returned error status",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()))
		return "", fmt.Errorf("chat completion failed with status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
