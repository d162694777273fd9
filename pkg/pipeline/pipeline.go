// Package pipeline drives the four-stage generation flow: ideation,
// research, then a bounded draft/edit/score revision loop. Stage calls go
// through a generation port; quality gating is heuristic and local.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"blogsmith/pkg/brief"
	"blogsmith/pkg/gen"
	"blogsmith/pkg/logx"
	"blogsmith/pkg/sanitize"
	"blogsmith/pkg/score"
	"blogsmith/pkg/utils"
)

// MaxIterations bounds the draft/edit/score revision loop.
const MaxIterations = 3

// researchNotesTokenLimit caps how much of the research notes is replayed
// into each writer prompt.
const researchNotesTokenLimit = 3000

// Agents assigns a provider to each pipeline role.
type Agents struct {
	Opener     string `json:"opener"`
	Researcher string `json:"researcher"`
	Writer     string `json:"writer"`
	Editor     string `json:"editor"`
}

// DefaultAgents is the production role assignment.
func DefaultAgents() Agents {
	return Agents{
		Opener:     gen.ProviderOpenAI,
		Researcher: gen.ProviderPerplexity,
		Writer:     gen.ProviderGemini,
		Editor:     gen.ProviderOpenAI,
	}
}

// withDefaults fills unset roles from DefaultAgents.
func (a Agents) withDefaults() Agents {
	defaults := DefaultAgents()
	if a.Opener == "" {
		a.Opener = defaults.Opener
	}
	if a.Researcher == "" {
		a.Researcher = defaults.Researcher
	}
	if a.Writer == "" {
		a.Writer = defaults.Writer
	}
	if a.Editor == "" {
		a.Editor = defaults.Editor
	}
	return a
}

// EventSink receives stage events as they complete. Implementations must
// not fail the run; persistence problems are theirs to swallow or log.
type EventSink interface {
	RecordStage(runID, stage string, iteration int, note string)
}

// Config assembles a Pipeline.
type Config struct {
	Port        gen.Port
	Agents      Agents
	ScoreConfig score.Config
	Events      EventSink // optional
}

// Pipeline owns one run's orchestration. It is not safe for concurrent use;
// build one per run.
type Pipeline struct {
	port      gen.Port
	agents    Agents
	scorer    *score.Scorer
	scoreCfg  score.Config
	sanitizer *sanitize.Sanitizer
	events    EventSink
	counter   *utils.TokenCounter
	logger    *logx.Logger
}

func New(cfg Config) *Pipeline {
	logger := logx.NewLogger("pipeline")

	counter, err := utils.NewTokenCounter()
	if err != nil {
		logger.Warn("token counter unavailable, research notes pass untruncated: %v", err)
	}

	return &Pipeline{
		port:      cfg.Port,
		agents:    cfg.Agents.withDefaults(),
		scorer:    score.NewScorer(cfg.ScoreConfig),
		scoreCfg:  cfg.ScoreConfig,
		sanitizer: sanitize.New(cfg.Port),
		events:    cfg.Events,
		counter:   counter,
		logger:    logger,
	}
}

// Result is the full outcome of a pipeline run, before final assembly.
type Result struct {
	Content        string
	Ideation       IdeationResult
	Research       ResearchResult
	Edit           EditResult
	FinalScore     score.Report
	QualityWarning bool
	IterationsUsed int
	Trace          *Trace
}

// Run executes the pipeline to completion. Any generation failure aborts
// the run; quality-gate exhaustion does not, it surfaces as QualityWarning.
func (p *Pipeline) Run(ctx context.Context, req brief.Request, layoutInstruction string) (*Result, error) {
	trace := NewTrace()
	stageCtx := &Context{}

	p.logger.Info("run %s starting: topic=%q tone=%s length=%d",
		trace.RunID, req.Topic, req.Tone, req.TargetLength)

	if err := p.runIdeation(ctx, req, stageCtx, trace); err != nil {
		return nil, err
	}
	if err := p.runResearch(ctx, req, stageCtx, trace); err != nil {
		return nil, err
	}

	ideation := stageCtx.Ideation()
	additionalKeywords := ideation.AdditionalKeywords
	if len(additionalKeywords) > 3 {
		additionalKeywords = additionalKeywords[:3]
	}
	researchNotes := p.truncateNotes(stageCtx.Research().Notes)

	result := &Result{
		Ideation:       ideation,
		Research:       stageCtx.Research(),
		IterationsUsed: MaxIterations,
		Trace:          trace,
	}

	var previousDraft DraftCandidate
	var revisionFeedback string

	for iteration := 1; iteration <= MaxIterations; iteration++ {
		draft, err := p.runWriter(ctx, req, ideation, additionalKeywords,
			researchNotes, layoutInstruction, revisionFeedback, iteration, previousDraft, trace)
		if err != nil {
			return nil, err
		}

		edit, err := p.runEditor(ctx, req, draft, ideation.FAQCandidates, iteration, trace)
		if err != nil {
			return nil, err
		}
		result.Edit = edit
		result.Content = edit.ImprovedContent

		report := p.scoreIteration(result.Content, iteration, trace)

		if report.Passed {
			result.IterationsUsed = iteration
			result.FinalScore = report
			break
		}
		if iteration == MaxIterations {
			result.QualityWarning = true
			result.FinalScore = report
			p.logger.Warn("run %s exhausted %d revision iterations, score %d",
				trace.RunID, MaxIterations, report.Score)
			break
		}

		revisionFeedback = p.buildRevisionFeedback(report)
		previousDraft = draft
	}

	p.logger.Info("run %s done: iterations=%d score=%d warning=%v",
		trace.RunID, result.IterationsUsed, result.FinalScore.Score, result.QualityWarning)
	return result, nil
}

func (p *Pipeline) runIdeation(ctx context.Context, req brief.Request, stageCtx *Context, trace *Trace) error {
	started := time.Now()

	raw, err := p.port.Generate(ctx, p.agents.Opener, openerPrompt(req), openerSystem)
	if err != nil {
		return fmt.Errorf("ideation stage failed: %w", err)
	}

	var ideation IdeationResult
	if decodeStructured(raw, &ideation) {
		ideation.Structured = true
	} else {
		p.logger.Warn("run %s: ideation response not decodable, keeping raw analysis", trace.RunID)
		ideation = IdeationResult{TopicAnalysis: raw}
	}

	if err := stageCtx.SetIdeation(ideation); err != nil {
		return err
	}
	trace.Record("opener", 0, started, ideation)
	p.emit(trace.RunID, "opener", 0, fmt.Sprintf("structured=%v directives=%d",
		ideation.Structured, len(ideation.ResearchInstructions)))
	return nil
}

func (p *Pipeline) runResearch(ctx context.Context, req brief.Request, stageCtx *Context, trace *Trace) error {
	started := time.Now()
	ideation := stageCtx.Ideation()

	notes, err := p.port.Generate(ctx, p.agents.Researcher,
		researcherPrompt(req.Topic, ideation.ResearchInstructions, ideation.FAQCandidates),
		researcherSystem)
	if err != nil {
		return fmt.Errorf("research stage failed: %w", err)
	}

	research := ResearchResult{Notes: notes, FAQCandidates: ideation.FAQCandidates}
	if err := stageCtx.SetResearch(research); err != nil {
		return err
	}
	trace.Record("researcher", 0, started, map[string]int{"noteChars": len(notes)})
	p.emit(trace.RunID, "researcher", 0, fmt.Sprintf("noteChars=%d", len(notes)))
	return nil
}

func (p *Pipeline) runWriter(ctx context.Context, req brief.Request, ideation IdeationResult,
	additionalKeywords []string, researchNotes, layoutInstruction, revisionFeedback string,
	iteration int, previous DraftCandidate, trace *Trace) (DraftCandidate, error) {
	started := time.Now()

	text, err := p.port.Generate(ctx, p.agents.Writer,
		writerPrompt(req, researchNotes, layoutInstruction),
		writerSystem(req, ideation, additionalKeywords, revisionFeedback))
	if err != nil {
		return DraftCandidate{}, fmt.Errorf("draft stage failed (iteration %d): %w", iteration, err)
	}

	draft := DraftCandidate{Text: text, Iteration: iteration}
	trace.RecordDraft(iteration, started, previous.Text, text)
	p.emit(trace.RunID, "writer", iteration, fmt.Sprintf("chars=%d", len(text)))
	return draft, nil
}

func (p *Pipeline) runEditor(ctx context.Context, req brief.Request, draft DraftCandidate,
	faqCandidates []string, iteration int, trace *Trace) (EditResult, error) {
	started := time.Now()

	cleaned := p.sanitizer.Clean(ctx, p.agents.Editor, draft.Text)

	raw, err := p.port.Generate(ctx, p.agents.Editor,
		editorPrompt(cleaned.Content, req.Topic, req.Keywords, faqCandidates, iteration),
		editorSystem)
	if err != nil {
		return EditResult{}, fmt.Errorf("edit stage failed (iteration %d): %w", iteration, err)
	}

	var edit EditResult
	if decodeStructured(raw, &edit) {
		edit.Structured = true
		if edit.ImprovedContent == "" {
			edit.ImprovedContent = cleaned.Content
		}
		if edit.SEOTitle == "" {
			edit.SEOTitle = req.Topic
		}
	} else {
		p.logger.Warn("run %s: editor response not decodable at iteration %d, keeping draft",
			trace.RunID, iteration)
		edit = EditResult{ImprovedContent: cleaned.Content, SEOTitle: req.Topic}
	}

	edit.Hashtags = padHashtags(edit.Hashtags)
	if cleaned.Note != "" {
		edit.QualityIssues = append(edit.QualityIssues, cleaned.Note)
	}

	trace.Record("editor", iteration, started, map[string]any{
		"structured":     edit.Structured,
		"labelsDetected": len(cleaned.Detections),
		"hashtags":       len(edit.Hashtags),
	})
	p.emit(trace.RunID, "editor", iteration, fmt.Sprintf("structured=%v labels=%d",
		edit.Structured, len(cleaned.Detections)))
	return edit, nil
}

func (p *Pipeline) scoreIteration(content string, iteration int, trace *Trace) score.Report {
	started := time.Now()
	report := p.scorer.Synthetic(content)
	trace.Record("ai_check", iteration, started, report)
	p.emit(trace.RunID, "ai_check", iteration, fmt.Sprintf("score=%d passed=%v",
		report.Score, report.Passed))
	return report
}

// buildRevisionFeedback turns a failed score report into the bullet list the
// next draft iteration must address.
func (p *Pipeline) buildRevisionFeedback(report score.Report) string {
	var b strings.Builder
	for _, issue := range report.Issues {
		b.WriteString("- ")
		b.WriteString(issue)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("\nAI 감지 점수: %d점 (%d점 미만 필요)", report.Score, p.scoreCfg.PassBelow))
	return b.String()
}

func (p *Pipeline) truncateNotes(notes string) string {
	if p.counter == nil {
		return notes
	}
	return p.counter.TruncateToTokenLimit(notes, researchNotesTokenLimit)
}

func (p *Pipeline) emit(runID, stage string, iteration int, note string) {
	if p.events == nil {
		return
	}
	p.events.RecordStage(runID, stage, iteration, note)
}
