package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SearchIntent classifies why a reader searches the topic.
type SearchIntent struct {
	Type           string `json:"type"`
	Reason         string `json:"reason"`
	DesiredOutcome string `json:"desired_outcome"`
}

// TargetAudience describes the core readership persona.
type TargetAudience struct {
	Persona        string   `json:"persona"`
	KnowledgeLevel string   `json:"knowledge_level"`
	PainPoints     []string `json:"pain_points"`
}

// IdeationResult is the opener stage's output. Structured is false when the
// model response could not be decoded and TopicAnalysis holds the raw text.
type IdeationResult struct {
	SearchIntent         SearchIntent   `json:"search_intent"`
	TargetAudience       TargetAudience `json:"target_audience"`
	TopicAnalysis        string         `json:"topic_analysis"`
	ResearchInstructions []string       `json:"research_instructions"`
	FAQCandidates        []string       `json:"faq_candidates"`
	AdditionalKeywords   []string       `json:"additional_keywords"`
	Structured           bool           `json:"-"`
}

// ResearchResult is the researcher stage's output: free-text notes plus the
// FAQ candidates forwarded unchanged.
type ResearchResult struct {
	Notes         string   `json:"research_data"`
	FAQCandidates []string `json:"faq_research"`
}

// FAQEntry is one question/answer pair for the FAQ schema.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// EditResult is the editor stage's output. Structured is false when the
// model response degraded to the raw-content fallback.
type EditResult struct {
	ImprovedContent string     `json:"improved_content"`
	SEOTitle        string     `json:"seo_title"`
	MetaDescription string     `json:"meta_description"`
	Hashtags        []string   `json:"hashtags"`
	FAQ             []FAQEntry `json:"faq"`
	Slug            string     `json:"slug"`
	QualityIssues   []string   `json:"quality_issues"`
	Structured      bool       `json:"-"`
}

// DraftCandidate is one writer-stage output. A new candidate supersedes the
// previous one each revision iteration; candidates are never mutated.
type DraftCandidate struct {
	Text      string
	Iteration int
}

// Context accumulates stage outputs across one pipeline run. Each slot is
// write-once: the revision loop re-runs drafting and editing, but the
// ideation and research outputs it reads must never change underneath it.
type Context struct {
	ideation    IdeationResult
	research    ResearchResult
	hasIdeation bool
	hasResearch bool
}

func (c *Context) SetIdeation(r IdeationResult) error {
	if c.hasIdeation {
		return fmt.Errorf("ideation result already recorded")
	}
	c.ideation = r
	c.hasIdeation = true
	return nil
}

func (c *Context) SetResearch(r ResearchResult) error {
	if c.hasResearch {
		return fmt.Errorf("research result already recorded")
	}
	c.research = r
	c.hasResearch = true
	return nil
}

func (c *Context) Ideation() IdeationResult { return c.ideation }
func (c *Context) Research() ResearchResult { return c.research }

// extractJSON locates the outermost braces in a raw model response and
// returns the enclosed candidate object. Models routinely wrap JSON in prose
// or code fences; this recovers the object without caring about either.
func extractJSON(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// decodeStructured unmarshals the brace-extracted portion of raw into out.
// It reports whether decoding succeeded; callers degrade to a raw-text
// fallback on false rather than failing the stage.
func decodeStructured(raw string, out any) bool {
	candidate, ok := extractJSON(raw)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(candidate), out) == nil
}
