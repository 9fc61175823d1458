package ai

import (
	openai "github.com/sashabaranov/go-openai"
)

// Generation parameters for the analysis call, matching the completion
// service's expectations for short structured replies.
const (
	analysisTemperature = 0.7
	analysisMaxTokens   = 2000
)

// Generator performs chat-completion calls against an OpenAI-compatible
// endpoint. Groq's chat API speaks the OpenAI wire format, so the same client
// serves both providers; baseURL selects which one.
type Generator struct {
	client  *openai.Client
	modelID string
}

// NewGenerator builds the completion client. An empty baseURL keeps the
// client's default endpoint, which is useful in tests that point it at a
// local fake.
func NewGenerator(apiKey, baseURL, modelID string) *Generator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Generator{
		client:  openai.NewClientWithConfig(cfg),
		modelID: modelID,
	}
}
