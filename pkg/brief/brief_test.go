package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_KoreanLabels(t *testing.T) {
	text := "주제: 재택근무 생산성\n톤: casual\n키워드: 재택근무, 생산성, 홈오피스\n목표 길이: 2000자"

	req := Parse(text, "", nil, LocaleKorean)

	assert.Equal(t, "재택근무 생산성", req.Topic)
	assert.Equal(t, ToneCasual, req.Tone)
	assert.Equal(t, []string{"재택근무", "생산성", "홈오피스"}, req.Keywords)
	assert.Equal(t, 2000, req.TargetLength)
	assert.Equal(t, LocaleKorean, req.Locale)
}

func TestParse_EnglishLabels(t *testing.T) {
	text := "Topic: Remote work productivity\nTone: professional\nKeywords: remote work, focus\nLength: 1800"

	req := Parse(text, "", nil, LocaleEnglish)

	assert.Equal(t, "Remote work productivity", req.Topic)
	assert.Equal(t, ToneProfessional, req.Tone)
	assert.Equal(t, []string{"remote work", "focus"}, req.Keywords)
	assert.Equal(t, 1800, req.TargetLength)
}

func TestParse_NeverFails(t *testing.T) {
	for _, text := range []string{
		"",
		"no separators here",
		":::",
		"길이: not a number",
		"keywords:",
		"\n\n\n",
	} {
		req := Parse(text, "", nil, LocaleKorean)
		assert.Equal(t, DefaultTargetLength, req.TargetLength, "input %q", text)
		assert.NotNil(t, req.Keywords, "input %q", text)
		assert.NotEmpty(t, req.Topic, "input %q", text)
	}
}

func TestParse_TopicFallbackChain(t *testing.T) {
	assert.Equal(t, "My Title", Parse("tone: casual", "My Title", nil, LocaleKorean).Topic)
	assert.Equal(t, PlaceholderTopic, Parse("tone: casual", "", nil, LocaleKorean).Topic)
}

func TestParse_KeywordsFallBackToTags(t *testing.T) {
	req := Parse("주제: 커피", "", []string{"카페", "원두"}, LocaleKorean)
	assert.Equal(t, []string{"카페", "원두"}, req.Keywords)

	// Brief keywords win over tags.
	req = Parse("주제: 커피\n키워드: 에스프레소", "", []string{"카페"}, LocaleKorean)
	assert.Equal(t, []string{"에스프레소"}, req.Keywords)
}

func TestParse_FirstDigitRunWins(t *testing.T) {
	req := Parse("length: about 1500 to 2000 chars", "", nil, LocaleEnglish)
	assert.Equal(t, 1500, req.TargetLength)
}

func TestParse_UnmatchedLinesIgnored(t *testing.T) {
	text := "주제: 등산\nnote: ignore me\nrandom line"
	req := Parse(text, "", nil, LocaleKorean)
	assert.Equal(t, "등산", req.Topic)
}

func TestToneInstruction_UnknownDefaultsToProfessional(t *testing.T) {
	assert.Equal(t, ToneProfessional.ToneInstruction(), Tone("whimsical").ToneInstruction())
	assert.NotEqual(t, ToneCasual.ToneInstruction(), ToneProfessional.ToneInstruction())
}
