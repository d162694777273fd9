package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest_Defaults(t *testing.T) {
	req := NewRequest([]Message{NewUserMessage("hello")})
	assert.Equal(t, DefaultMaxTokens, req.MaxTokens)
	assert.InDelta(t, DefaultTemperature, req.Temperature, 0.001)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, RoleUser, req.Messages[0].Role)
}

func TestSplitSystem(t *testing.T) {
	system, rest := SplitSystem([]Message{
		NewSystemMessage("first instruction"),
		NewUserMessage("question"),
		NewSystemMessage("second instruction"),
	})
	assert.Equal(t, "first instruction\n\nsecond instruction", system)
	require.Len(t, rest, 1)
	assert.Equal(t, "question", rest[0].Content)
}

func TestSplitSystem_NoSystemMessages(t *testing.T) {
	system, rest := SplitSystem([]Message{NewUserMessage("question")})
	assert.Empty(t, system)
	assert.Len(t, rest, 1)
}

func TestRequestValidate(t *testing.T) {
	valid := NewRequest([]Message{NewUserMessage("hello")})
	assert.NoError(t, valid.Validate())

	empty := NewRequest(nil)
	assert.Error(t, empty.Validate())

	badTokens := NewRequest([]Message{NewUserMessage("hello")})
	badTokens.MaxTokens = 0
	assert.Error(t, badTokens.Validate())

	badTemp := NewRequest([]Message{NewUserMessage("hello")})
	badTemp.Temperature = 2.5
	assert.Error(t, badTemp.Validate())
}

func TestChain_OrderAndPassthrough(t *testing.T) {
	var order []string

	base := WrapClient(
		func(_ context.Context, _ Request) (Response, error) {
			order = append(order, "base")
			return Response{Content: "done"}, nil
		},
		func() string { return "model-x" },
	)

	tag := func(name string) Middleware {
		return func(next Client) Client {
			return WrapClient(
				func(ctx context.Context, req Request) (Response, error) {
					order = append(order, name)
					return next.Complete(ctx, req)
				},
				next.ModelName,
			)
		}
	}

	client := Chain(base, tag("outer"), tag("inner"))
	resp, err := client.Complete(context.Background(), NewRequest([]Message{NewUserMessage("hi")}))
	require.NoError(t, err)

	assert.Equal(t, "done", resp.Content)
	assert.Equal(t, []string{"outer", "inner", "base"}, order)
	assert.Equal(t, "model-x", client.ModelName())
}
