package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"blogsmith/pkg/brief"
)

func TestReadingTime_FlooredAtOneMinute(t *testing.T) {
	assert.Equal(t, 1, ReadingTime("짧은 글", brief.LocaleKorean))
	assert.Equal(t, 1, ReadingTime("", brief.LocaleKorean))
}

func TestReadingTime_KoreanRate(t *testing.T) {
	// 800 characters at 400 chars/min is 2 minutes; whitespace is stripped first.
	content := strings.Repeat("가나다라 ", 200)
	assert.Equal(t, 2, ReadingTime(content, brief.LocaleKorean))
}

func TestReadingTime_EnglishRateIsFaster(t *testing.T) {
	content := strings.Repeat("word ", 500) // 2000 non-space chars
	ko := ReadingTime(content, brief.LocaleKorean)
	en := ReadingTime(content, brief.LocaleEnglish)
	assert.Greater(t, ko, en)
	assert.Equal(t, 2, en)
}
