package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey    string
	ChatModel string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		chatModel := os.Getenv("GEMINI_CHAT_MODEL")
		if chatModel == "" {
			chatModel = "gemini-2.5-flash"
		}
		geminiConfig = &GeminiConfig{
			APIKey:    os.Getenv("GEMINI_API_KEY"),
			ChatModel: chatModel,
		}
	})
	return geminiConfig
}
