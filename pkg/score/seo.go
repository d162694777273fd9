package score

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SEOReport is the outcome of the search-optimization heuristic.
type SEOReport struct {
	Score         int
	Issues        []string
	KeywordCounts map[string]int
}

// SEO computes the search-optimization score with the default configuration.
func SEO(content string, keywords []string, title, metaDescription string) SEOReport {
	return NewScorer(DefaultConfig()).SEO(content, keywords, title, metaDescription)
}

// SEO scores content against its keywords, title, and meta description.
// Six sub-scores are averaged unweighted: keyword density, title keyword
// presence, title length band, meta-description length band, heading count,
// and content length band.
func (s *Scorer) SEO(content string, keywords []string, title, metaDescription string) SEOReport {
	var scores []int
	issues := []string{}

	// 1. Keyword density.
	contentLower := strings.ToLower(content)
	keywordCounts := make(map[string]int, len(keywords))
	totalKeywordCount := 0
	for _, keyword := range keywords {
		count := strings.Count(contentLower, strings.ToLower(keyword))
		keywordCounts[keyword] = count
		totalKeywordCount += count
		if count < 3 {
			issues = append(issues, fmt.Sprintf("키워드 '%s' 사용 부족 (%d회)", keyword, count))
		}
	}
	wordCount := len(strings.Fields(content))
	density := 0.0
	if wordCount > 0 {
		density = float64(totalKeywordCount) / float64(wordCount) * 100
	}
	scores = append(scores, min(100, int(density*20)))

	// 2. Title keyword presence.
	titleLower := strings.ToLower(title)
	titleKeywordCount := 0
	for _, keyword := range keywords {
		if strings.Contains(titleLower, strings.ToLower(keyword)) {
			titleKeywordCount++
		}
	}
	scores = append(scores, min(100, titleKeywordCount*50))
	if titleKeywordCount == 0 {
		issues = append(issues, "제목에 키워드가 포함되지 않음")
	}

	// 3. Title length band (50-60 chars ideal).
	titleLen := utf8.RuneCountInString(title)
	switch {
	case titleLen >= 50 && titleLen <= 60:
		scores = append(scores, 100)
	case titleLen >= 40 && titleLen <= 70:
		scores = append(scores, 80)
	default:
		scores = append(scores, 50)
		issues = append(issues, fmt.Sprintf("제목 길이 최적화 필요 (%d자, 권장: 50-60자)", titleLen))
	}

	// 4. Meta-description length band (120-160 chars ideal).
	if metaDescription != "" {
		metaLen := utf8.RuneCountInString(metaDescription)
		switch {
		case metaLen >= 120 && metaLen <= 160:
			scores = append(scores, 100)
		case metaLen >= 100 && metaLen <= 170:
			scores = append(scores, 80)
		default:
			scores = append(scores, 50)
			issues = append(issues, fmt.Sprintf("메타 디스크립션 길이 최적화 필요 (%d자, 권장: 120-160자)", metaLen))
		}
	} else {
		scores = append(scores, 0)
		issues = append(issues, "메타 디스크립션 없음")
	}

	// 5. Heading usage ("## " also matches inside "### ", as shipped).
	h2Count := strings.Count(content, "## ")
	h3Count := strings.Count(content, "### ")
	scores = append(scores, min(100, (h2Count+h3Count)*20))
	if h2Count < 3 {
		issues = append(issues, fmt.Sprintf("소제목(H2) 부족 (%d개, 권장: 3-5개)", h2Count))
	}

	// 6. Content length band.
	contentLen := utf8.RuneCountInString(content)
	switch {
	case contentLen >= 2000:
		scores = append(scores, 100)
	case contentLen >= 1500:
		scores = append(scores, 80)
	case contentLen >= 1000:
		scores = append(scores, 60)
	default:
		scores = append(scores, 40)
		issues = append(issues, fmt.Sprintf("콘텐츠 길이 부족 (%d자, 권장: 1500자 이상)", contentLen))
	}

	total := 0
	for _, sc := range scores {
		total += sc
	}

	return SEOReport{
		Score:         total / len(scores),
		Issues:        issues,
		KeywordCounts: keywordCounts,
	}
}
