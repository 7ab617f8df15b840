package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIWriter struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIWriter(apiKey string) *OpenAIWriter {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIWriter{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (w *OpenAIWriter) ModelName() string {
	return w.modelName
}

func (w *OpenAIWriter) Compose(ctx context.Context, input BriefingInput) (string, error) {
	resp, err := w.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: w.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildUserPrompt(input)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	briefing := strings.TrimSpace(resp.Choices[0].Message.Content)
	if briefing == "" {
		return "", fmt.Errorf("empty response from openai")
	}

	return briefing, nil
}
