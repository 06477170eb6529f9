package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// newFailingGeminiService wires the client against a local backend that
// rejects every request with 503.
func newFailingGeminiService(t *testing.T, requests *atomic.Int32, breakerMax int32) *GeminiService {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.Error(w, `{"error": {"code": 503, "status": "UNAVAILABLE", "message": "unavailable"}}`, http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: server.URL},
	})
	require.NoError(t, err)

	return &GeminiService{
		client:            client,
		chatModel:         "gemini-2.5-flash",
		maxRetries:        0,
		baseDelay:         time.Millisecond,
		maxDelay:          time.Millisecond,
		requestTimeout:    5 * time.Second,
		circuitBreakerMax: breakerMax,
		log:               zap.NewNop(),
	}
}

// Mirrors the expert rubric fan-out: four goroutines share one service
// instance, every failure ticks the breaker counter exactly once.
func TestGeminiServiceConcurrentFailureCounting(t *testing.T) {
	var requests atomic.Int32
	svc := newFailingGeminiService(t, &requests, 100)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Complete(context.Background(), "Bewerte.", "Anzeigentext", 400)
			assert.Error(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(4), svc.consecutiveErrors.Load())
}

func TestGeminiServiceCircuitBreakerOpens(t *testing.T) {
	var requests atomic.Int32
	svc := newFailingGeminiService(t, &requests, 2)

	for i := 0; i < 2; i++ {
		_, err := svc.Complete(context.Background(), "Bewerte.", "Anzeigentext", 400)
		assert.Error(t, err)
	}
	served := requests.Load()

	_, err := svc.Complete(context.Background(), "Bewerte.", "Anzeigentext", 400)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")
	assert.Equal(t, served, requests.Load(), "an open breaker must not reach the backend")
}

func TestGeminiServiceEmbeddingRespectsBreaker(t *testing.T) {
	var requests atomic.Int32
	svc := newFailingGeminiService(t, &requests, 1)
	svc.consecutiveErrors.Store(1)

	_, err := svc.GenerateEmbedding(context.Background(), "Softwareentwickler")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")
	assert.Zero(t, requests.Load())
}
