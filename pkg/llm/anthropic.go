package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicWriter struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicWriter(apiKey string) *AnthropicWriter {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicWriter{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (w *AnthropicWriter) ModelName() string {
	return w.modelName
}

func (w *AnthropicWriter) Compose(ctx context.Context, input BriefingInput) (string, error) {
	resp, err := w.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     w.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildUserPrompt(input))),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	briefing := strings.TrimSpace(resp.Content[0].Text)
	if briefing == "" {
		return "", fmt.Errorf("empty response from anthropic")
	}

	return briefing, nil
}
