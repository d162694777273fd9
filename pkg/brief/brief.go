// Package brief converts a free-text content brief into a structured
// generation request.
//
// The parser is best-effort and never fails: unmatched lines are ignored and
// missing fields degrade to documented defaults.
package brief

import (
	"regexp"
	"strconv"
	"strings"
)

// Tone classifies the requested writing voice.
type Tone string

const (
	ToneProfessional   Tone = "professional"
	ToneCasual         Tone = "casual"
	ToneEducational    Tone = "educational"
	ToneConversational Tone = "conversational"
)

// Locale identifies the content language.
type Locale string

const (
	LocaleKorean  Locale = "ko"
	LocaleEnglish Locale = "en"
)

// DefaultTargetLength is used when the brief names no usable length.
const DefaultTargetLength = 1500

// PlaceholderTopic is the last-resort topic when neither the brief nor the
// caller supplies one.
const PlaceholderTopic = "Untitled"

// Request is the parsed, immutable generation request.
type Request struct {
	Topic        string
	Tone         Tone
	Keywords     []string
	TargetLength int
	Locale       Locale
}

// Field label synonyms, Korean and English. Matched by substring against the
// lowercased label part of a "label: value" line.
var (
	topicLabels   = []string{"주제", "topic"}   //nolint:gochecknoglobals // fixed synonym set
	toneLabels    = []string{"톤", "tone"}     //nolint:gochecknoglobals // fixed synonym set
	keywordLabels = []string{"키워드", "keyword"} //nolint:gochecknoglobals // fixed synonym set
	lengthLabels  = []string{"길이", "length"}  //nolint:gochecknoglobals // fixed synonym set
)

// Parse extracts a Request from a free-text brief.
//
// fallbackTitle fills the topic when the brief names none; fallbackKeywords
// (typically the caller's tags) fill the keyword list the same way. Malformed
// input degrades to defaults rather than failing.
func Parse(text, fallbackTitle string, fallbackKeywords []string, locale Locale) Request {
	req := Request{
		TargetLength: DefaultTargetLength,
		Locale:       locale,
	}

	for _, line := range strings.Split(text, "\n") {
		label, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		label = strings.ToLower(strings.TrimSpace(label))
		value = strings.TrimSpace(value)

		switch {
		case matchesLabel(label, topicLabels):
			req.Topic = value
		case matchesLabel(label, toneLabels):
			req.Tone = Tone(value)
		case matchesLabel(label, keywordLabels):
			req.Keywords = splitKeywords(value)
		case matchesLabel(label, lengthLabels):
			req.TargetLength = parseLength(value)
		}
	}

	if req.Topic == "" {
		req.Topic = fallbackTitle
	}
	if req.Topic == "" {
		req.Topic = PlaceholderTopic
	}
	if len(req.Keywords) == 0 {
		req.Keywords = append([]string{}, fallbackKeywords...)
	}
	if req.Keywords == nil {
		req.Keywords = []string{}
	}

	return req
}

func matchesLabel(label string, synonyms []string) bool {
	for _, synonym := range synonyms {
		if strings.Contains(label, synonym) {
			return true
		}
	}
	return false
}

func splitKeywords(value string) []string {
	parts := strings.Split(value, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

var digitRun = regexp.MustCompile(`[0-9]+`) //nolint:gochecknoglobals // compiled once

// parseLength extracts the first run of digits from the value.
func parseLength(value string) int {
	digits := digitRun.FindString(value)
	if digits == "" {
		return DefaultTargetLength
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return DefaultTargetLength
	}
	return n
}

// ToneInstruction returns the writing-voice directive for the Draft stage.
// Unknown or absent tones get the professional instruction.
func (t Tone) ToneInstruction() string {
	switch t {
	case ToneCasual:
		return "친근하고 편안한 대화체로 작성"
	case ToneEducational:
		return "교육적이고 설명적인 톤으로, 예시를 많이 사용"
	case ToneConversational:
		return "대화하듯 자연스럽게, 독자에게 말하듯이"
	case ToneProfessional:
		return "전문적이고 신뢰감 있는 톤으로 작성하되, 딱딱하지 않게"
	default:
		return "전문적이고 신뢰감 있는 톤으로 작성하되, 딱딱하지 않게"
	}
}
