package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/config"
	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/retry"
)

// ErrEmptyCompletion is returned when the model answers with no choices or no content
var ErrEmptyCompletion = errors.New("empty completion from openai")

// ChatClient sends chat completions to an OpenAI-compatible endpoint
type ChatClient struct {
	client *openai.Client
	model  string
}

// NewChatClient creates a chat client using values from the provided config
func NewChatClient(cfg *config.OpenAIConfig) *ChatClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &ChatClient{
		client: openai.NewClientWithConfig(oc),
		model:  cfg.FeedbackModel,
	}
}

// Model returns the default model used when a request leaves it empty
func (c *ChatClient) Model() string {
	return c.model
}

// CompleteJSON asks the model for a JSON object reply and returns the raw content.
// Upstream HTTP failures are returned as *retry.StatusError so callers can
// decide whether to retry.
func (c *ChatClient) CompleteJSON(ctx context.Context, model, system, user string) (string, error) {
	if model == "" {
		model = c.model
	}

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// classify converts go-openai errors into StatusError values carrying the HTTP status
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0 {
		return fmt.Errorf("chat completion failed: %w", &retry.StatusError{
			Service:    "openai",
			StatusCode: apiErr.HTTPStatusCode,
			Body:       apiErr.Message,
		})
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0 {
		return fmt.Errorf("chat completion failed: %w", &retry.StatusError{
			Service:    "openai",
			StatusCode: reqErr.HTTPStatusCode,
		})
	}
	return fmt.Errorf("chat completion failed: %w", err)
}
