package score

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Report is the outcome of the synthetic-likelihood heuristic. Higher scores
// mean the text reads more machine-typical; Passed reflects the configured
// pass threshold.
type Report struct {
	Score     int
	Passed    bool
	Issues    []string
	Subscores map[string]int
}

// Subscore metric names.
const (
	MetricStockPhrases     = "stock_phrases"
	MetricOpeningDiversity = "opening_diversity"
	MetricPassiveVoice     = "passive_voice"
	MetricLengthUniformity = "length_uniformity"
	MetricTransitionWords  = "transition_words"
	MetricGenericClaims    = "generic_claims"
)

// Fixed phrase lists. These are the hand-curated production lists; they are
// applied regardless of locale.
//
//nolint:gochecknoglobals // fixed heuristic vocabularies
var (
	stockPhrases = []string{
		"중요합니다", "필수적입니다", "핵심입니다",
		"이러한", "이것은", "그것은",
		"따라서", "결론적으로", "요약하자면",
		"이를 통해", "이로 인해",
		"알아보겠습니다", "살펴보겠습니다",
		"마무리하며", "정리하자면",
	}

	passiveMarkers = []string{"되었", "됩니다", "되며", "되어", "된다", "받았", "받습니다"}

	transitionWords = []string{
		"또한", "그러나", "하지만", "따라서", "그리고", "더불어",
		"뿐만 아니라", "결과적으로", "마찬가지로", "반면에", "게다가",
	}

	genericClaims = []string{
		"많은 사람들이", "일반적으로", "대부분의 경우",
		"흔히", "보통", "대체로", "전반적으로",
	}

	headingMarkers  = regexp.MustCompile(`#+ `)
	emphasisMarkers = regexp.MustCompile("\\*\\*|\\*|`{3}|`")
	sentenceEnders  = regexp.MustCompile(`[.!?。]\s*`)
)

// Scorer evaluates text against a fixed threshold configuration.
// Both scoring methods are pure functions of their inputs.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer with the given threshold configuration.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Synthetic evaluates content with the default configuration.
func Synthetic(content string) Report {
	return NewScorer(DefaultConfig()).Synthetic(content)
}

// Synthetic computes the synthetic-likelihood score for content.
//
// Text under the minimum signal thresholds (too short, too few qualifying
// sentences) short-circuits to a passing zero report: there is not enough to
// judge.
//
//nolint:gocyclo // six independent sub-metrics, splitting them would obscure the averaging
func (s *Scorer) Synthetic(content string) Report {
	pass := Report{Score: 0, Passed: true, Issues: []string{}, Subscores: map[string]int{}}

	// Strip markdown before analysis.
	text := headingMarkers.ReplaceAllString(content, "")
	text = emphasisMarkers.ReplaceAllString(text, "")

	if utf8.RuneCountInString(strings.TrimSpace(text)) < s.cfg.MinContentChars {
		return pass
	}

	sentences := qualifyingSentences(text)
	if len(sentences) < s.cfg.MinSentences {
		return pass
	}

	issues := []string{}
	var scores []int
	subscores := make(map[string]int)

	// 1. Stock-phrase density: distinct fixed phrases present in the text.
	phraseCount := 0
	for _, phrase := range stockPhrases {
		if strings.Contains(content, phrase) {
			phraseCount++
		}
	}
	phraseScore := min(100, phraseCount*s.cfg.StockPhraseWeight)
	scores = append(scores, phraseScore)
	subscores[MetricStockPhrases] = phraseScore
	if phraseScore > s.cfg.StockPhraseFlagAt {
		issues = append(issues, fmt.Sprintf("AI 특유의 반복 문구 과다 사용 (%d개)", phraseCount))
	}

	// 2. Sentence-opening diversity: unique 10-character prefixes.
	var starts []string
	for _, sentence := range sentences {
		runes := []rune(sentence)
		if len(runes) >= 10 {
			starts = append(starts, string(runes[:10]))
		}
	}
	diversity := 1.0
	if len(starts) > 0 {
		unique := make(map[string]struct{}, len(starts))
		for _, start := range starts {
			unique[start] = struct{}{}
		}
		diversity = float64(len(unique)) / float64(len(starts))
	}
	startScore := int((1 - diversity) * 100)
	scores = append(scores, startScore)
	subscores[MetricOpeningDiversity] = startScore
	if diversity < s.cfg.DiversityFlagBelow {
		issues = append(issues, fmt.Sprintf("문장 시작 패턴이 반복적 (다양성: %.0f%%)", diversity*100))
	}

	// 3. Passive-voice density.
	passiveCount := 0
	for _, marker := range passiveMarkers {
		passiveCount += strings.Count(content, marker)
	}
	passiveRatio := float64(passiveCount) / float64(len(sentences))
	passiveScore := min(100, int(passiveRatio*float64(s.cfg.PassiveWeight)))
	scores = append(scores, passiveScore)
	subscores[MetricPassiveVoice] = passiveScore
	if passiveRatio > s.cfg.PassiveFlagAbove {
		issues = append(issues, fmt.Sprintf("수동태 과다 사용 (비율: %.0f%%)", passiveRatio*100))
	}

	// 4. Sentence-length uniformity: low coefficient of variation reads
	// machine-flat.
	if len(sentences) > 3 {
		cv := lengthVariation(sentences)
		uniformityScore := int((1 - math.Min(cv, 1)) * float64(s.cfg.UniformityScale))
		scores = append(scores, uniformityScore)
		subscores[MetricLengthUniformity] = uniformityScore
		if cv < s.cfg.UniformityFlagBelow {
			issues = append(issues, fmt.Sprintf("문장 길이가 너무 균일함 (변동계수: %.2f)", cv))
		}
	}

	// 5. Transition-word overuse.
	transitionCount := 0
	for _, word := range transitionWords {
		transitionCount += strings.Count(content, word)
	}
	transitionRatio := float64(transitionCount) / float64(len(sentences))
	transitionScore := min(100, int(transitionRatio*float64(s.cfg.TransitionWeight)))
	scores = append(scores, transitionScore)
	subscores[MetricTransitionWords] = transitionScore
	if transitionRatio > s.cfg.TransitionFlagAbove {
		issues = append(issues, fmt.Sprintf("전환어 과다 사용 (문장당 %.1f개)", transitionRatio))
	}

	// 6. Generic-claim density.
	genericCount := 0
	for _, claim := range genericClaims {
		genericCount += strings.Count(content, claim)
	}
	genericScore := min(100, genericCount*s.cfg.GenericClaimWeight)
	scores = append(scores, genericScore)
	subscores[MetricGenericClaims] = genericScore
	if genericCount > s.cfg.GenericClaimFlagOver {
		issues = append(issues, fmt.Sprintf("일반화 표현 과다 (%d개)", genericCount))
	}

	total := 0
	for _, sc := range scores {
		total += sc
	}
	finalScore := total / len(scores)

	return Report{
		Score:     finalScore,
		Passed:    finalScore < s.cfg.PassBelow,
		Issues:    issues,
		Subscores: subscores,
	}
}

// qualifyingSentences splits on terminal punctuation and keeps sentences
// longer than 10 characters after trimming.
func qualifyingSentences(text string) []string {
	parts := sentenceEnders.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if utf8.RuneCountInString(trimmed) > 10 {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// lengthVariation returns the coefficient of variation of sentence lengths.
func lengthVariation(sentences []string) float64 {
	lengths := make([]float64, len(sentences))
	var sum float64
	for i, sentence := range sentences {
		lengths[i] = float64(utf8.RuneCountInString(sentence))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, length := range lengths {
		variance += (length - mean) * (length - mean)
	}
	variance /= float64(len(lengths))

	return math.Sqrt(variance) / mean
}
