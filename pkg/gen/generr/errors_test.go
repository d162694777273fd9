package generr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageFormatting(t *testing.T) {
	err := New(ErrorTypeProviderUnavailable, "gemini", "no API key configured")
	assert.Equal(t, "gemini error (provider_unavailable): no API key configured", err.Error())
}

func TestError_FallsBackToCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(ErrorTypeTransport, "openai", cause, "")
	assert.Contains(t, err.Error(), "transport")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestIs_MatchesThroughWrapping(t *testing.T) {
	inner := New(ErrorTypeTransport, "claude", "timeout")
	wrapped := fmt.Errorf("draft stage: %w", inner)

	assert.True(t, Is(wrapped, ErrorTypeTransport))
	assert.False(t, Is(wrapped, ErrorTypeProviderUnavailable))
}

func TestTypeOf_UnclassifiedIsUnknown(t *testing.T) {
	assert.Equal(t, ErrorTypeUnknown, TypeOf(errors.New("plain")))
}

func TestIsProviderUnavailable(t *testing.T) {
	err := fmt.Errorf("ideation: %w", New(ErrorTypeProviderUnavailable, "perplexity", "missing key"))
	assert.True(t, IsProviderUnavailable(err))
	assert.False(t, IsProviderUnavailable(New(ErrorTypeAuth, "perplexity", "bad key")))
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "provider_unavailable", ErrorTypeProviderUnavailable.String())
	assert.Equal(t, "transport", ErrorTypeTransport.String())
	assert.Equal(t, "empty_response", ErrorTypeEmptyResponse.String())
	assert.Equal(t, "invalid", ErrorType(99).String())
}
