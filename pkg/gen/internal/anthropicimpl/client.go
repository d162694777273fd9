// Package anthropicimpl provides the Anthropic Claude client implementation
// for the llm.Client interface.
package anthropicimpl

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"blogsmith/pkg/gen/generr"
	"blogsmith/pkg/gen/llm"
)

const provider = "claude"

// Client wraps the Anthropic API client to implement llm.Client.
type Client struct {
	client anthropic.Client
	model  anthropic.Model
}

// New creates a new Claude client for the given model.
func New(apiKey, model string) llm.Client {
	return &Client{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}
}

// Complete implements the llm.Client interface.
//
// The Anthropic API takes the system instruction as a top-level parameter and
// requires the messages array to contain only user/assistant turns.
func (c *Client) Complete(ctx context.Context, in llm.Request) (llm.Response, error) {
	if err := in.Validate(); err != nil {
		return llm.Response{}, generr.Wrap(generr.ErrorTypeBadPrompt, provider, err, "invalid request")
	}

	system, rest := llm.SplitSystem(in.Messages)
	if len(rest) == 0 {
		return llm.Response{}, generr.New(generr.ErrorTypeBadPrompt, provider, "must have at least one non-system message")
	}

	msgs := make([]anthropic.MessageParam, 0, len(rest))
	for i := range rest {
		msg := &rest[i]
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == llm.RoleAssistant {
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		} else {
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}

	params := anthropic.MessageNewParams{
		Model:       c.model,
		Messages:    msgs,
		MaxTokens:   int64(in.MaxTokens),
		Temperature: anthropic.Float(float64(in.Temperature)),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return llm.Response{}, generr.Wrap(generr.ErrorTypeTransport, provider, err, fmt.Sprintf("message creation failed (model %s)", c.model))
	}

	if resp == nil || len(resp.Content) == 0 {
		return llm.Response{}, generr.New(generr.ErrorTypeEmptyResponse, provider, "no content blocks in response")
	}

	var text string
	for i := range resp.Content {
		block := &resp.Content[i]
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return llm.Response{}, generr.New(generr.ErrorTypeEmptyResponse, provider, "no text content in response")
	}

	return llm.Response{
		Content:    text,
		StopReason: string(resp.StopReason),
	}, nil
}

// ModelName returns the model name for this client.
func (c *Client) ModelName() string {
	return string(c.model)
}
