package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildSEOContent builds content with "kayak tours" appearing 4 times, three
// ## headings, and a body over 2200 characters.
func buildSEOContent() string {
	var b strings.Builder
	b.WriteString("# Guide\n\n")
	b.WriteString("Planning kayak tours takes more preparation than most paddlers expect. ")
	b.WriteString(strings.Repeat("The water conditions change with every season and every coastline. ", 6))
	b.WriteString("\n\n## Choosing a Route\n\n")
	b.WriteString("The best kayak tours start with an honest look at your endurance. ")
	b.WriteString(strings.Repeat("Distance on a map rarely matches distance against a headwind. ", 6))
	b.WriteString("\n\n## Gear That Matters\n\n")
	b.WriteString("Outfitters who run kayak tours daily will tell you the paddle matters more than the boat. ")
	b.WriteString(strings.Repeat("A lighter blade saves your shoulders over a long afternoon. ", 6))
	b.WriteString("\n\n## Safety On The Water\n\n")
	b.WriteString("Guided kayak tours carry radios for a reason. ")
	b.WriteString(strings.Repeat("Weather windows close faster on open water than on shore. ", 6))
	return b.String()
}

func TestSEO_CompositeScenario(t *testing.T) {
	content := buildSEOContent()
	meta := strings.Repeat("Kayak tour planning advice. ", 5) // 140 chars

	report := SEO(content, []string{"kayak tours"}, "Best Kayak Tours Guide", meta)

	assert.Equal(t, 4, report.KeywordCounts["kayak tours"])
	assert.Greater(t, report.Score, 0)

	// Meta description and content length hit their top bands; one keyword in
	// the title scores 50. The composite sits well above the floor.
	assert.GreaterOrEqual(t, report.Score, 55, "issues: %v", report.Issues)
	assert.LessOrEqual(t, report.Score, 100)
}

func TestSEO_IsDeterministic(t *testing.T) {
	content := buildSEOContent()
	first := SEO(content, []string{"kayak tours"}, "Best Kayak Tours Guide", "")
	second := SEO(content, []string{"kayak tours"}, "Best Kayak Tours Guide", "")
	assert.Equal(t, first, second)
}

func TestSEO_MissingMetaDescriptionFlagged(t *testing.T) {
	report := SEO("short", []string{"kw"}, "title", "")
	assert.Contains(t, report.Issues, "메타 디스크립션 없음")
}

func TestSEO_UnderusedKeywordFlagged(t *testing.T) {
	report := SEO("the keyword appears once: golf", []string{"golf"}, "Golf", "")
	assert.Equal(t, 1, report.KeywordCounts["golf"])

	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "golf") {
			found = true
		}
	}
	assert.True(t, found, "expected an underuse issue for 'golf', got %v", report.Issues)
}

func TestSEO_KeywordMatchIsCaseInsensitive(t *testing.T) {
	report := SEO("Kayak Tours and kayak tours and KAYAK TOURS", []string{"kayak tours"}, "t", "")
	assert.Equal(t, 3, report.KeywordCounts["kayak tours"])
}

func TestSEO_EmptyContentDoesNotPanic(t *testing.T) {
	report := SEO("", nil, "", "")
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
}
