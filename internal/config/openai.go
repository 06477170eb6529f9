package config

import (
	"os"
	"sync"
)

type OpenAIConfig struct {
	APIKey    string
	BaseURL   string
	ChatModel string
}

var (
	openAIConfig *OpenAIConfig
	openAIOnce   sync.Once
)

func LoadOpenAIConfig() *OpenAIConfig {
	openAIOnce.Do(func() {
		baseURL := os.Getenv("OPENAI_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		chatModel := os.Getenv("OPENAI_CHAT_MODEL")
		if chatModel == "" {
			chatModel = "gpt-5-mini"
		}
		openAIConfig = &OpenAIConfig{
			APIKey:    os.Getenv("OPENAI_API_KEY"),
			BaseURL:   baseURL,
			ChatModel: chatModel,
		}
	})
	return openAIConfig
}
