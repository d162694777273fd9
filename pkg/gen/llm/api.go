// Package llm provides interfaces and types for text-generation client
// implementations.
package llm

import (
	"context"
	"fmt"
)

// Role represents the role of a message in a conversation.
type Role string

const (
	// RoleSystem indicates a system message that provides instructions or context.
	RoleSystem Role = "system"
	// RoleUser indicates a message from the human user.
	RoleUser Role = "user"
	// RoleAssistant indicates a message from the model.
	RoleAssistant Role = "assistant"
)

const (
	// DefaultMaxTokens bounds a single generation response.
	DefaultMaxTokens = 4000

	// DefaultTemperature favors varied phrasing; the point of the pipeline is
	// text that does not read machine-flat.
	DefaultTemperature = 0.8
)

// Message represents a message in a completion request.
type Message struct {
	Content string
	Role    Role
}

// Request represents a request to generate a completion.
type Request struct {
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// Response represents a response from a completion request.
type Response struct {
	Content    string // Main response text
	StopReason string // Why the response stopped, provider-dependent
}

// Client defines the interface for text-generation model interactions.
type Client interface {
	// Complete generates a completion synchronously.
	Complete(ctx context.Context, in Request) (Response, error)

	// ModelName returns the model name for this client.
	ModelName() string
}

// NewRequest creates a completion request with default values.
func NewRequest(messages []Message) Request {
	return Request{
		Messages:    messages,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}

// NewSystemMessage creates a new system message.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// SplitSystem extracts system content from a message list, returning the
// joined system text and the remaining non-system messages in order.
// Several providers take the system instruction as a separate parameter.
func SplitSystem(messages []Message) (system string, rest []Message) {
	for i := range messages {
		msg := &messages[i]
		if msg.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += msg.Content
			continue
		}
		rest = append(rest, *msg)
	}
	return system, rest
}

// Validate checks a request for the constraints shared by all providers.
func (r *Request) Validate() error {
	if len(r.Messages) == 0 {
		return fmt.Errorf("message list cannot be empty")
	}
	if r.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive")
	}
	if r.Temperature < 0.0 || r.Temperature > 2.0 {
		return fmt.Errorf("temperature must be between 0.0 and 2.0")
	}
	return nil
}
