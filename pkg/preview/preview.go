// Package preview implements the fast test mode: one writer call producing
// a short style sample instead of the full pipeline, optionally conditioned
// on the caller's own writing samples.
package preview

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"blogsmith/pkg/brief"
	"blogsmith/pkg/gen"
	"blogsmith/pkg/logx"
	"blogsmith/pkg/score"
)

// Sample-conditioning bounds.
const (
	maxWritingSamples = 3
	sampleCharLimit   = 500
)

// WritingSample is one caller-supplied style reference.
type WritingSample struct {
	Content string `json:"content"`
}

// Result is the preview outcome. On failure only Success, Error, and
// AIModel are populated.
type Result struct {
	Success           bool         `json:"success"`
	Content           string       `json:"content,omitempty"`
	WordCount         int          `json:"wordCount,omitempty"`
	CharacterCount    int          `json:"characterCount,omitempty"`
	AIModel           string       `json:"aiModel"`
	Locale            brief.Locale `json:"locale,omitempty"`
	AIDetectionScore  int          `json:"aiDetectionScore"`
	AIDetectionPassed bool         `json:"aiDetectionPassed"`
	AIDetectionIssues []string     `json:"aiDetectionIssues,omitempty"`
	Error             string       `json:"error,omitempty"`
}

// Previewer generates short writing samples through the configured writer
// provider.
type Previewer struct {
	port   gen.Port
	writer string
	scorer *score.Scorer
	logger *logx.Logger
}

func New(port gen.Port, writerProvider string, cfg score.Config) *Previewer {
	if writerProvider == "" {
		writerProvider = gen.ProviderOpenAI
	}
	return &Previewer{
		port:   port,
		writer: writerProvider,
		scorer: score.NewScorer(cfg),
		logger: logx.NewLogger("preview"),
	}
}

var (
	emphasisMarkers = regexp.MustCompile("\\*\\*|\\*|```|`")
	blankRuns       = regexp.MustCompile(`\n{3,}`)
)

// Generate produces one short sample. Generation failure is reported inside
// the Result, not as an error: test mode always answers with JSON.
func (p *Previewer) Generate(ctx context.Context, topic string, locale brief.Locale, samples []WritingSample, layoutInstruction string) Result {
	styleReference := buildStyleReference(samples)
	system, user := buildPrompts(topic, locale, styleReference, layoutInstruction)

	content, err := p.port.Generate(ctx, p.writer, user, system)
	if err != nil {
		p.logger.Warn("preview generation failed: %v", err)
		return Result{Success: false, Error: err.Error(), AIModel: p.writer}
	}

	content = strings.TrimSpace(content)
	content = emphasisMarkers.ReplaceAllString(content, "")
	content = blankRuns.ReplaceAllString(content, "\n\n")

	report := p.scorer.Synthetic(content)

	wordCount := len(strings.Fields(content))
	if locale == brief.LocaleKorean {
		wordCount = utf8.RuneCountInString(content)
	}

	return Result{
		Success:           true,
		Content:           content,
		WordCount:         wordCount,
		CharacterCount:    utf8.RuneCountInString(content),
		AIModel:           p.writer,
		Locale:            locale,
		AIDetectionScore:  report.Score,
		AIDetectionPassed: report.Passed,
		AIDetectionIssues: report.Issues,
	}
}

// buildStyleReference embeds up to three writing samples, clipped to their
// leading characters, as a style block for the prompt.
func buildStyleReference(samples []WritingSample) string {
	if len(samples) > maxWritingSamples {
		samples = samples[:maxWritingSamples]
	}

	var texts []string
	for _, sample := range samples {
		content := sample.Content
		if utf8.RuneCountInString(content) > sampleCharLimit {
			content = string([]rune(content)[:sampleCharLimit])
		}
		if content != "" {
			texts = append(texts, content)
		}
	}
	if len(texts) == 0 {
		return ""
	}

	return fmt.Sprintf(`
다음은 참고할 문체 샘플입니다. 이 글쓰기 스타일을 분석하고 최대한 비슷하게 작성하세요:

--- 샘플 시작 ---
%s
--- 샘플 끝 ---

`, strings.Join(texts, "\n"))
}

func buildPrompts(topic string, locale brief.Locale, styleReference, layoutInstruction string) (system, user string) {
	if locale == brief.LocaleKorean {
		var layoutNote string
		if layoutInstruction != "" {
			layoutNote = fmt.Sprintf("\n\n## 글 구조 참고:\n%s\n\n위 구조의 축약 버전으로 미리보기를 작성하세요. '서론', '본문1', '결론' 등 구조 라벨은 절대 사용하지 마세요.", layoutInstruction)
		}

		system = fmt.Sprintf(`당신은 전문 블로그 작가입니다. 주어진 주제에 대해 짧은 테스트 문단(200-300자)을 작성하세요.

규칙:
- 자연스럽고 인간적인 문체로 작성
- 마크다운 소제목(##)을 2-3개 사용하여 구조를 보여주세요
- 딱딱한 서론 없이 바로 시작
- AI가 쓴 것처럼 보이지 않게 주의
- '서론', '본론', '결론' 등 구조 라벨 절대 금지%s`, layoutNote)

		user = fmt.Sprintf(`%s주제: %s

위 주제에 대해 200-300자 정도의 짧은 문단을 작성하세요. 자연스럽고 인간적인 톤으로 작성하되, 제공된 문체 샘플이 있다면 그 스타일을 최대한 반영하세요.`, styleReference, topic)
		return system, user
	}

	var layoutNote string
	if layoutInstruction != "" {
		layoutNote = fmt.Sprintf("\n\n## Structure reference:\n%s\n\nWrite a condensed preview following this structure. Never use structural labels like 'Introduction:', 'Body 1:', 'Conclusion:' etc.", layoutInstruction)
	}

	system = fmt.Sprintf(`You are a professional blog writer. Write a short test paragraph (100-150 words) on the given topic.

Rules:
- Write in a natural, human-like style
- Use 2-3 markdown subheadings (##) to show structure
- Start directly with the content, no formal introductions
- Avoid sounding like AI-generated content
- Never use structural labels like 'Introduction', 'Body', 'Conclusion'%s`, layoutNote)

	user = fmt.Sprintf(`%sTopic: %s

Write a short paragraph of about 100-150 words on this topic. Use a natural, human-like tone, and if writing samples are provided, reflect that style as much as possible.`, styleReference, topic)
	return system, user
}
