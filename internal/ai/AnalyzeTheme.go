package ai

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

// AnalyzeTheme sends one completion request and returns the raw text of the
// top choice. It performs no retries; callers translate any failure into
// their own result envelope.
func (g *Generator) AnalyzeTheme(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.modelID,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: analysisTemperature,
			MaxTokens:   analysisMaxTokens,
		},
	)
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("Completion usage for empty response: %+v", resp.Usage)
		return "", fmt.Errorf("%w: no completion choices returned", ErrMalformedResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
