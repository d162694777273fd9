// Package sanitize detects mechanical section labels left in generated
// drafts ("## 서론", "Body 1:", ordinal prefixes) and requests a corrective
// rewrite that swaps flagged subheadings for content-specific titles.
package sanitize

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"blogsmith/pkg/gen"
	"blogsmith/pkg/logx"
)

// labelPatterns are tried in order against each trimmed line. The first
// match flags the line; later patterns are not consulted for it.
var labelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*#{1,3}\s*(서론|본론|결론|마무리|인트로|아웃트로|Introduction|Conclusion|Intro|Outro)[:\s]?$`),
	regexp.MustCompile(`(?i)^\s*#{1,3}\s*(본문|Body)\s*\d+`),
	regexp.MustCompile(`(?i)^\s*\d+[.)\s]+(서론|본론|결론|마무리|Introduction|Body|Conclusion)`),
	regexp.MustCompile(`(?i)^(첫\s*번째|두\s*번째|세\s*번째|네\s*번째|다섯\s*번째|First|Second|Third)[:\s]`),
	regexp.MustCompile(`(?i)^\s*#{1,3}\s*\d+\s*[.)\s]+(서론|본론|결론|Introduction|Body|Conclusion)`),
}

// Detection is one flagged line from a pattern scan.
type Detection struct {
	Line int    // 1-based line number
	Text string // trimmed line content
}

// Result reports what the sanitizer did to a draft.
type Result struct {
	Content    string      // corrected text, or the original when no rewrite was accepted
	Detections []Detection // flagged lines, empty when the draft was clean
	Note       string      // human-readable outcome, empty when nothing was detected
	Corrected  bool        // true when a rewrite replaced the original
}

// Sanitizer runs the two-phase label cleanup: a pattern scan, then one
// corrective generation call when the scan found anything.
type Sanitizer struct {
	port   gen.Port
	logger *logx.Logger
}

func New(port gen.Port) *Sanitizer {
	return &Sanitizer{port: port, logger: logx.NewLogger("sanitize")}
}

// Scan runs only the pattern phase. It never calls the generation port.
func Scan(content string) []Detection {
	var detections []Detection
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, pattern := range labelPatterns {
			if pattern.MatchString(trimmed) {
				detections = append(detections, Detection{Line: i + 1, Text: trimmed})
				break
			}
		}
	}
	return detections
}

const cleanupSystem = `당신은 편집 전문가입니다.
주어진 블로그 글에서 '서론:', '본문1:', '## 결론' 등 기계적인 구조 라벨이 소제목에 사용되었다면,
해당 소제목을 섹션 내용에 맞는 구체적이고 자연스러운 소제목으로 교체하세요.
글의 내용 자체는 절대 수정하지 마세요. 소제목만 교체합니다.
라벨이 없는 소제목은 그대로 유지하세요.`

func cleanupPrompt(content string) string {
	return fmt.Sprintf(`다음 블로그 글의 소제목 중 구조 라벨('서론', '본론', '결론', '본문1' 등)이 있으면 자연스러운 소제목으로 교체하세요.

%s

규칙:
- '## 서론' → 도입 내용에 맞는 소제목
- '## 본론 1' → 해당 섹션 내용을 반영하는 소제목
- '## 결론' → 마무리 내용에 맞는 소제목
- 내용은 수정하지 않고 소제목만 교체
- 마크다운 형식 유지

전체 글을 반환하세요.`, content)
}

// Clean scans content for structural labels and, when any are found, asks
// the given provider for a rewrite. The rewrite is accepted only when it is
// at least half the original's length; a short or failed rewrite keeps the
// original and records the detection in the note instead.
func (s *Sanitizer) Clean(ctx context.Context, provider, content string) Result {
	detections := Scan(content)
	if len(detections) == 0 {
		return Result{Content: content}
	}

	s.logger.Debug("detected %d structural labels, requesting cleanup", len(detections))

	rewritten, err := s.port.Generate(ctx, provider, cleanupPrompt(content), cleanupSystem)
	if err != nil {
		s.logger.Warn("label cleanup call failed: %v", err)
		return Result{
			Content:    content,
			Detections: detections,
			Note:       fmt.Sprintf("구조 라벨 %d개 감지됨 (자동 제거 실패: %v)", len(detections), err),
		}
	}

	if utf8.RuneCountInString(rewritten) <= utf8.RuneCountInString(content)/2 {
		s.logger.Warn("cleanup rewrite too short (%d of %d chars), keeping original",
			utf8.RuneCountInString(rewritten), utf8.RuneCountInString(content))
		return Result{
			Content:    content,
			Detections: detections,
			Note:       fmt.Sprintf("구조 라벨 %d개 감지됨 (자동 제거 실패: 재작성 결과가 너무 짧음)", len(detections)),
		}
	}

	return Result{
		Content:    rewritten,
		Detections: detections,
		Note:       fmt.Sprintf("구조 라벨 %d개 감지 및 제거됨", len(detections)),
		Corrected:  true,
	}
}
