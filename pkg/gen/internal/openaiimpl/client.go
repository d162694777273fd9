// Package openaiimpl provides OpenAI-compatible client implementations using
// the official OpenAI Go package. Perplexity exposes an OpenAI-compatible API
// and reuses this client with a custom base URL.
package openaiimpl

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"blogsmith/pkg/gen/generr"
	"blogsmith/pkg/gen/llm"
)

// Client wraps the official OpenAI Go client to implement llm.Client.
type Client struct {
	client   openai.Client
	provider string
	model    string
}

// New creates an OpenAI client for the given model.
func New(apiKey, model string) llm.Client {
	return &Client{
		client:   openai.NewClient(option.WithAPIKey(apiKey)),
		provider: "openai",
		model:    model,
	}
}

// NewWithBaseURL creates a client against an OpenAI-compatible endpoint,
// reported under the given provider name in errors.
func NewWithBaseURL(provider, apiKey, baseURL, model string) llm.Client {
	return &Client{
		client:   openai.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(baseURL)),
		provider: provider,
		model:    model,
	}
}

// Complete implements the llm.Client interface using the chat completions API.
func (c *Client) Complete(ctx context.Context, in llm.Request) (llm.Response, error) {
	if err := in.Validate(); err != nil {
		return llm.Response{}, generr.Wrap(generr.ErrorTypeBadPrompt, c.provider, err, "invalid request")
	}

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(in.Messages))
	for i := range in.Messages {
		msg := &in.Messages[i]
		switch msg.Role {
		case llm.RoleSystem:
			msgs = append(msgs, openai.SystemMessage(msg.Content))
		case llm.RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(msg.Content))
		default:
			msgs = append(msgs, openai.UserMessage(msg.Content))
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    msgs,
		MaxTokens:   openai.Int(int64(in.MaxTokens)),
		Temperature: openai.Float(float64(in.Temperature)),
	})
	if err != nil {
		return llm.Response{}, generr.Wrap(generr.ErrorTypeTransport, c.provider, err, fmt.Sprintf("chat completion failed (model %s)", c.model))
	}

	if resp == nil || len(resp.Choices) == 0 {
		return llm.Response{}, generr.New(generr.ErrorTypeEmptyResponse, c.provider, "no choices in response")
	}

	choice := resp.Choices[0]
	if choice.Message.Content == "" {
		return llm.Response{}, generr.New(generr.ErrorTypeEmptyResponse, c.provider, "empty message content")
	}

	return llm.Response{
		Content:    choice.Message.Content,
		StopReason: string(choice.FinishReason),
	}, nil
}

// ModelName returns the model name for this client.
func (c *Client) ModelName() string {
	return c.model
}
