package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsmith/pkg/gen"
)

func TestParseArgs_NoArgument(t *testing.T) {
	_, errResult := parseArgs(nil)
	require.NotNil(t, errResult)
	assert.Equal(t, "No input provided.", errResult.Error)
}

func TestParseArgs_InvalidJSON(t *testing.T) {
	_, errResult := parseArgs([]string{"{not json"})
	require.NotNil(t, errResult)
	assert.Contains(t, errResult.Error, "Invalid JSON input:")
}

func TestParseArgs_MissingPrompt(t *testing.T) {
	_, errResult := parseArgs([]string{`{"apiKeys":{"openai":"sk-test"}}`})
	require.NotNil(t, errResult)
	assert.Equal(t, "Prompt is required", errResult.Error)

	data, err := json.Marshal(errResult)
	require.NoError(t, err)
	assert.Equal(t, `{"error":"Prompt is required"}`, string(data))
}

func TestParseArgs_EmptyAPIKeys(t *testing.T) {
	for _, arg := range []string{
		`{"prompt":"주제: 제주도 여행"}`,
		`{"prompt":"주제: 제주도 여행","apiKeys":{}}`,
	} {
		_, errResult := parseArgs([]string{arg})
		require.NotNil(t, errResult, "input %s", arg)

		data, err := json.Marshal(errResult)
		require.NoError(t, err)
		assert.Equal(t,
			`{"error":"API keys are required. Please add your AI API keys in settings."}`,
			string(data))
	}
}

func TestParseArgs_ValidInput(t *testing.T) {
	arg := `{
		"prompt": "주제: 제주도 여행\n키워드: 제주도, 여행 코스",
		"title": "제주도 여행",
		"locale": "ko",
		"tags": ["여행"],
		"aiAgents": {"writer": "claude"},
		"apiKeys": {"openai": "sk-test", "claude": "sk-ant"},
		"layout": {"instruction": "1부: 배경"},
		"testMode": true,
		"writingSamples": [{"content": "샘플 글"}]
	}`

	in, errResult := parseArgs([]string{arg})
	require.Nil(t, errResult)

	assert.Equal(t, "주제: 제주도 여행\n키워드: 제주도, 여행 코스", in.Prompt)
	assert.Equal(t, "제주도 여행", in.Title)
	assert.Equal(t, "ko", in.Locale)
	assert.Equal(t, []string{"여행"}, in.Tags)
	require.NotNil(t, in.AIAgents)
	assert.Equal(t, gen.ProviderClaude, in.AIAgents.Writer)
	assert.True(t, in.TestMode)
	require.NotNil(t, in.Layout)
	assert.Equal(t, "1부: 배경", in.Layout.Instruction)
	require.Len(t, in.WritingSamples, 1)
	assert.Equal(t, "샘플 글", in.WritingSamples[0].Content)
}
