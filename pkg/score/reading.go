package score

import (
	"math"
	"regexp"
	"unicode/utf8"

	"blogsmith/pkg/brief"
)

// Reading rates in characters per minute.
const (
	ReadingRateKorean  = 400
	ReadingRateEnglish = 1000
)

var whitespaceRun = regexp.MustCompile(`\s+`) //nolint:gochecknoglobals // compiled once

// ReadingTime estimates reading time in minutes: whitespace-stripped
// character count over the locale rate, rounded, floored at 1.
func ReadingTime(content string, locale brief.Locale) int {
	rate := ReadingRateKorean
	if locale == brief.LocaleEnglish {
		rate = ReadingRateEnglish
	}

	charCount := utf8.RuneCountInString(whitespaceRun.ReplaceAllString(content, ""))
	minutes := int(math.Round(float64(charCount) / float64(rate)))
	if minutes < 1 {
		return 1
	}
	return minutes
}
