// Package models wraps the external generation backends that turn a
// content idea into post media. The behavior engine treats them as opaque.
package models

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const xaiBaseURL = "https://api.x.ai/v1"

// CaptionGenerator produces post captions through an OpenAI-compatible
// chat endpoint.
type CaptionGenerator struct {
	client             *openai.Client
	model              string
	versionHeaderValue string
}

// NewCaptionGenerator creates a caption generator against the xAI endpoint.
func NewCaptionGenerator(apiKey, modelName string) (*CaptionGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(xaiBaseURL),
	)

	// Build the UA header once, when the generator is created.
	headerValue := fmt.Sprintf("influencer-sim/%s go/%s",
		"1.0.0", strings.TrimPrefix(runtime.Version(), "go"))

	return &CaptionGenerator{
		client:             &client,
		model:              modelName,
		versionHeaderValue: headerValue,
	}, nil
}

// Generate returns the caption text for a rendered prompt.
func (g *CaptionGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", fmt.Errorf("caption generator not configured")
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := g.client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Model: openai.ChatModel(g.model),
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
		},
		option.WithHeader("user-agent", g.versionHeaderValue),
	)
	if err != nil {
		return "", fmt.Errorf("failed to call caption API: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty caption response")
	}

	caption := strings.TrimSpace(resp.Choices[0].Message.Content)
	if caption == "" {
		return "", fmt.Errorf("caption text missing in response")
	}
	return caption, nil
}
