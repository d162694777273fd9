// Package googleimpl provides the Google Gemini client implementation for the
// llm.Client interface.
package googleimpl

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"blogsmith/pkg/gen/generr"
	"blogsmith/pkg/gen/llm"
)

const provider = "gemini"

// Client wraps the Google GenAI client to implement llm.Client.
type Client struct {
	client *genai.Client
	apiKey string
	model  string
}

// New creates a new Gemini client for the given model.
// Client creation requires a context, so it is deferred to the first Complete.
func New(apiKey, model string) llm.Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
	}
}

// Complete implements the llm.Client interface.
func (c *Client) Complete(ctx context.Context, in llm.Request) (llm.Response, error) {
	if err := in.Validate(); err != nil {
		return llm.Response{}, generr.Wrap(generr.ErrorTypeBadPrompt, provider, err, "invalid request")
	}

	if c.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return llm.Response{}, generr.Wrap(generr.ErrorTypeTransport, provider, err, "failed to create Gemini client")
		}
		c.client = client
	}

	system, rest := llm.SplitSystem(in.Messages)
	if len(rest) == 0 {
		return llm.Response{}, generr.New(generr.ErrorTypeBadPrompt, provider, "must have at least one non-system message")
	}

	contents := make([]*genai.Content, 0, len(rest))
	for i := range rest {
		msg := &rest[i]
		role := genai.RoleUser
		if msg.Role == llm.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}

	//nolint:gosec // MaxTokens validated above, bounded well below int32 range
	maxTokens := int32(in.MaxTokens)
	config := &genai.GenerateContentConfig{
		Temperature:     &in.Temperature,
		MaxOutputTokens: maxTokens,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return llm.Response{}, generr.Wrap(generr.ErrorTypeTransport, provider, err, fmt.Sprintf("generate content failed (model %s)", c.model))
	}
	if result == nil {
		return llm.Response{}, generr.New(generr.ErrorTypeEmptyResponse, provider, "nil response from Gemini API")
	}

	text := result.Text()
	if text == "" {
		return llm.Response{}, generr.New(generr.ErrorTypeEmptyResponse, provider, "no text in Gemini response")
	}

	return llm.Response{
		Content:    text,
		StopReason: stopReason(result),
	}, nil
}

func stopReason(result *genai.GenerateContentResponse) string {
	if len(result.Candidates) == 0 {
		return ""
	}
	return string(result.Candidates[0].FinishReason)
}

// ModelName returns the model name for this client.
func (c *Client) ModelName() string {
	return c.model
}
