// Package ollamaimpl provides the Ollama client implementation for the
// llm.Client interface. Ollama is a local LLM runtime for open-source models.
package ollamaimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"

	"blogsmith/pkg/gen/generr"
	"blogsmith/pkg/gen/llm"
)

const provider = "ollama"

// DefaultHost is the standard local Ollama server address.
const DefaultHost = "http://localhost:11434"

// Client wraps the Ollama API client to implement llm.Client.
type Client struct {
	client *api.Client
	model  string
}

// New creates a new Ollama client for the given model.
// hostURL should be the Ollama server URL; empty or invalid falls back to DefaultHost.
func New(hostURL, model string) llm.Client {
	if hostURL == "" {
		hostURL = DefaultHost
	}
	parsedURL, err := url.Parse(hostURL)
	if err != nil {
		parsedURL, _ = url.Parse(DefaultHost)
	}

	return &Client{
		client: api.NewClient(parsedURL, http.DefaultClient),
		model:  model,
	}
}

// Complete implements the llm.Client interface.
func (c *Client) Complete(ctx context.Context, in llm.Request) (llm.Response, error) {
	if err := in.Validate(); err != nil {
		return llm.Response{}, generr.Wrap(generr.ErrorTypeBadPrompt, provider, err, "invalid request")
	}

	messages := make([]api.Message, 0, len(in.Messages))
	for i := range in.Messages {
		msg := &in.Messages[i]
		messages = append(messages, api.Message{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	stream := false
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": in.Temperature,
			"num_predict": in.MaxTokens,
		},
	}

	var response api.ChatResponse
	err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		response = resp
		return nil
	})
	if err != nil {
		return llm.Response{}, generr.Wrap(generr.ErrorTypeTransport, provider, err, fmt.Sprintf("chat failed (model %s)", c.model))
	}

	if response.Message.Content == "" {
		return llm.Response{}, generr.New(generr.ErrorTypeEmptyResponse, provider, "empty message content")
	}

	return llm.Response{
		Content:    response.Message.Content,
		StopReason: response.DoneReason,
	}, nil
}

// ModelName returns the model name for this client.
func (c *Client) ModelName() string {
	return c.model
}
