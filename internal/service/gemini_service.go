package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jobtimizer/jobtimizer/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// EmbeddingProvider abstracts embedding generation for vector search.
type EmbeddingProvider interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// GeminiService backs the expert rubric and the occupation vector
// search. Unlike the per-dimension scoring layer, the transport itself
// retries transient failures and opens a circuit breaker after too many
// consecutive errors. The error counter is atomic: the rubric fans out
// one goroutine per dimension against this single instance.
type GeminiService struct {
	client            *genai.Client
	chatModel         string
	maxRetries        int
	baseDelay         time.Duration
	maxDelay          time.Duration
	requestTimeout    time.Duration
	consecutiveErrors atomic.Int32
	circuitBreakerMax int32
	log               *zap.Logger
}

func NewGeminiService(ctx context.Context, log *zap.Logger) (*GeminiService, error) {
	cfg := config.LoadGeminiConfig()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiService{
		client:            client,
		chatModel:         cfg.ChatModel,
		maxRetries:        3,
		baseDelay:         time.Second,
		maxDelay:          90 * time.Second,
		requestTimeout:    90 * time.Second,
		circuitBreakerMax: 5,
		log:               log,
	}, nil
}

func (s *GeminiService) Configured() bool {
	return true
}

// Complete satisfies the chat-completion contract with the configured
// Gemini model.
func (s *GeminiService) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(0.1)),
		MaxOutputTokens:   int32(maxTokens),
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	result, err := s.generateContent(ctx, userPrompt, genConfig)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

func (s *GeminiService) generateContent(ctx context.Context, prompt string, genConfig *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if failures := s.consecutiveErrors.Load(); failures >= s.circuitBreakerMax {
		return nil, fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", failures)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.log.Warn("retrying generate content",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", s.maxRetries),
				zap.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return nil, fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := s.client.Models.GenerateContent(
			timeoutCtx,
			s.chatModel,
			genai.Text(prompt),
			genConfig,
		)

		if err == nil {
			s.consecutiveErrors.Store(0)
			if err := s.validateGenerateResponse(result); err != nil {
				return nil, fmt.Errorf("invalid response: %w", err)
			}
			return result, nil
		}

		lastErr = err

		if !s.isRetryableError(err) {
			s.consecutiveErrors.Add(1)
			return nil, fmt.Errorf("generate content failed: %w", err)
		}
	}

	s.consecutiveErrors.Add(1)
	return nil, fmt.Errorf("max retries (%d) exceeded for generate content: %w", s.maxRetries, lastErr)
}

func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, fmt.Errorf("text for embedding cannot be empty")
	}

	if len(trimmedText) > 10000 {
		s.log.Warn("embedding text exceeds recommended limit, truncating",
			zap.Int("length", len(trimmedText)))
		trimmedText = trimmedText[:10000]
	}

	if failures := s.consecutiveErrors.Load(); failures >= s.circuitBreakerMax {
		return nil, fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", failures)
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	content := []*genai.Content{genai.NewContentFromText(trimmedText, genai.RoleUser)}

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.log.Warn("retrying embedding",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", s.maxRetries),
				zap.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return nil, fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := s.client.Models.EmbedContent(
			timeoutCtx,
			"gemini-embedding-001",
			content,
			nil,
		)

		if err == nil {
			s.consecutiveErrors.Store(0)
			embeddings, err := s.validateEmbeddingResponse(result)
			if err != nil {
				return nil, fmt.Errorf("invalid embedding response: %w", err)
			}
			return embeddings, nil
		}

		lastErr = err

		if !s.isRetryableError(err) {
			s.consecutiveErrors.Add(1)
			return nil, fmt.Errorf("generate embedding failed: %w", err)
		}
	}

	s.consecutiveErrors.Add(1)
	return nil, fmt.Errorf("max retries (%d) exceeded for embedding: %w", s.maxRetries, lastErr)
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.baseDelay * time.Duration(math.Pow(2, float64(attempt-1)))

	if delay > s.maxDelay {
		delay = s.maxDelay
	}

	jitter := time.Duration(float64(delay) * 0.25)
	delay = delay - jitter/2 + time.Duration(float64(jitter)*0.5)

	return delay
}

func (s *GeminiService) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "context canceled") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return false
	}
	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 429:
			return true
		case 500, 502, 503, 504:
			return true
		case 400, 401, 403, 404:
			return false
		}
	}

	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF") {
		return true
	}

	return false
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}

func (s *GeminiService) validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}

	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embeddings := resp.Embeddings[0].Values

	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}

	for i, val := range embeddings {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}

	return embeddings, nil
}
