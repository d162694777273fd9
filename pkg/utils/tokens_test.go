package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountTokens_NonEmptyText(t *testing.T) {
	tc, err := NewTokenCounter()
	require.NoError(t, err)

	count := tc.CountTokens("The quick brown fox jumps over the lazy dog.")
	assert.Greater(t, count, 0)
	assert.Less(t, count, 20, "short sentence should be a handful of tokens")
}

func TestCountTokens_EmptyText(t *testing.T) {
	tc, err := NewTokenCounter()
	require.NoError(t, err)

	assert.Equal(t, 0, tc.CountTokens(""))
}

func TestTruncateToTokenLimit_ShortTextUnchanged(t *testing.T) {
	tc, err := NewTokenCounter()
	require.NoError(t, err)

	text := "short text"
	assert.Equal(t, text, tc.TruncateToTokenLimit(text, 100))
}

func TestTruncateToTokenLimit_LongTextShrinks(t *testing.T) {
	tc, err := NewTokenCounter()
	require.NoError(t, err)

	text := strings.Repeat("research notes with many findings ", 200)
	truncated := tc.TruncateToTokenLimit(text, 50)

	assert.Less(t, len(truncated), len(text))
	assert.True(t, strings.HasSuffix(truncated, "..."))
	assert.LessOrEqual(t, tc.CountTokens(truncated), 60, "allow slack for the rough character cut")
}

func TestTruncateToTokenLimit_KoreanCutsOnRuneBoundary(t *testing.T) {
	tc, err := NewTokenCounter()
	require.NoError(t, err)

	text := strings.Repeat("제주도 여행 준비물과 일정 정리. 렌터카 예약은 미리 하는 편이 좋다. ", 120)
	truncated := tc.TruncateToTokenLimit(text, 50)

	assert.Less(t, len(truncated), len(text))
	assert.True(t, strings.HasSuffix(truncated, "..."))
	assert.True(t, utf8.ValidString(truncated), "truncation must not split a rune: %q", truncated[max(0, len(truncated)-12):])
}

func TestCountTokensSimple(t *testing.T) {
	assert.Greater(t, CountTokensSimple("hello world"), 0)
}
