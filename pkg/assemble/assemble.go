// Package assemble builds the final output record from a completed pipeline
// run: title, excerpt, hashtags, and the metadata block with scores, FAQ
// schema, slug, and the full stage trace.
package assemble

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark"

	"blogsmith/pkg/brief"
	"blogsmith/pkg/pipeline"
	"blogsmith/pkg/score"
)

// Generator identifies this pipeline version in result metadata.
const Generator = "blogsmith-4stage"

// Excerpt shaping bounds, in runes.
const (
	excerptWindow   = 300
	excerptMax      = 200
	excerptTruncate = 197
)

// Metadata is the diagnostic and SEO block attached to every result.
type Metadata struct {
	Locale    brief.Locale    `json:"locale"`
	Tags      []string        `json:"tags"`
	Generator string          `json:"generator"`
	Keywords  []string        `json:"seoKeywords"`
	Agents    pipeline.Agents `json:"aiAgents"`
	Stages    *pipeline.Trace `json:"stages"`

	MetaDescription string              `json:"metaDescription"`
	FAQSchema       []pipeline.FAQEntry `json:"faqSchema"`
	Slug            string              `json:"slug"`
	ReadingTime     int                 `json:"readingTime"`

	SEOScore          int      `json:"seoScore"`
	SEOIssues         []string `json:"seoIssues"`
	AIDetectionScore  int      `json:"aiDetectionScore"`
	AIDetectionIssues []string `json:"aiDetectionIssues"`
	QualityWarning    bool     `json:"qualityWarning"`
	IterationsUsed    int      `json:"iterationsUsed"`
}

// FinalResult is the complete output record written to stdout.
type FinalResult struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Excerpt  string   `json:"excerpt"`
	Hashtags []string `json:"hashtags"`
	Metadata Metadata `json:"metadata"`
}

// Assembler turns pipeline results into FinalResults. It re-scores the
// final content so the reported numbers always describe exactly the text
// being returned.
type Assembler struct {
	scorer *score.Scorer
}

func New(cfg score.Config) *Assembler {
	return &Assembler{scorer: score.NewScorer(cfg)}
}

// Assemble builds the output record for one completed run.
func (a *Assembler) Assemble(req brief.Request, agents pipeline.Agents, tags []string, result *pipeline.Result) FinalResult {
	edit := result.Edit

	seoReport := a.scorer.SEO(result.Content, req.Keywords, edit.SEOTitle, edit.MetaDescription)
	aiReport := a.scorer.Synthetic(result.Content)

	slug := edit.Slug
	if slug == "" {
		slug = Slugify(edit.SEOTitle, result.Trace.RunID)
	}

	if tags == nil {
		tags = []string{}
	}

	return FinalResult{
		Title:    edit.SEOTitle,
		Content:  result.Content,
		Excerpt:  Excerpt(result.Content),
		Hashtags: edit.Hashtags,
		Metadata: Metadata{
			Locale:    req.Locale,
			Tags:      tags,
			Generator: Generator,
			Keywords:  result.Ideation.AdditionalKeywords,
			Agents:    agents,
			Stages:    result.Trace,

			MetaDescription: edit.MetaDescription,
			FAQSchema:       edit.FAQ,
			Slug:            slug,
			ReadingTime:     score.ReadingTime(result.Content, req.Locale),

			SEOScore:          seoReport.Score,
			SEOIssues:         seoReport.Issues,
			AIDetectionScore:  aiReport.Score,
			AIDetectionIssues: aiReport.Issues,
			QualityWarning:    result.QualityWarning,
			IterationsUsed:    result.IterationsUsed,
		},
	}
}

var (
	htmlTag       = regexp.MustCompile(`<[^>]+>`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// PlainText renders markdown and strips the markup, leaving readable prose
// with single spaces between fragments.
func PlainText(markdown string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		// goldmark does not fail on any text input in practice; fall back to
		// the raw source rather than dropping content.
		return strings.TrimSpace(markdown)
	}
	text := htmlTag.ReplaceAllString(buf.String(), " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Excerpt produces the short preview text: the leading window of the
// plain-text content, truncated with an ellipsis when it runs long.
func Excerpt(content string) string {
	text := PlainText(content)

	runes := []rune(text)
	if len(runes) > excerptWindow {
		runes = runes[:excerptWindow]
	}
	excerpt := strings.TrimSpace(string(runes))

	if utf8.RuneCountInString(excerpt) > excerptMax {
		excerpt = string([]rune(excerpt)[:excerptTruncate]) + "..."
	}
	return excerpt
}

// Slugify lowercases title into a url-safe slug. Titles with no usable
// ASCII (Korean titles, typically) fall back to a run-ID-derived slug.
func Slugify(title, runID string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		short := runID
		if len(short) > 8 {
			short = short[:8]
		}
		return "post-" + short
	}
	return slug
}
