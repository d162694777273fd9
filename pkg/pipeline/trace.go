package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// StageRecord is one entry in the run trace: a named stage result with its
// wall-clock duration and, for revision drafts, a patch against the previous
// iteration's draft.
type StageRecord struct {
	Name       string `json:"name"`
	Iteration  int    `json:"iteration,omitempty"`
	DurationMS int64  `json:"durationMs"`
	Detail     any    `json:"detail,omitempty"`
	DraftDiff  string `json:"draftDiff,omitempty"`
}

// Trace is the ordered, append-only record of everything a run did. It is
// returned in the final output for audit and debugging and never discarded.
type Trace struct {
	RunID  string        `json:"runId"`
	Stages []StageRecord `json:"stages"`
}

func NewTrace() *Trace {
	return &Trace{RunID: uuid.NewString()}
}

func (t *Trace) add(record StageRecord) {
	t.Stages = append(t.Stages, record)
}

// Record appends a stage result with its duration.
func (t *Trace) Record(name string, iteration int, started time.Time, detail any) {
	t.add(StageRecord{
		Name:       name,
		Iteration:  iteration,
		DurationMS: time.Since(started).Milliseconds(),
		Detail:     detail,
	})
}

// RecordDraft appends a writer-stage result. From the second iteration on it
// carries a text patch against the previous draft, so a reviewer can see
// what the revision feedback actually changed.
func (t *Trace) RecordDraft(iteration int, started time.Time, previous, current string) {
	record := StageRecord{
		Name:       "writer",
		Iteration:  iteration,
		DurationMS: time.Since(started).Milliseconds(),
	}
	if iteration > 1 && previous != "" {
		dmp := diffmatchpatch.New()
		record.DraftDiff = dmp.PatchToText(dmp.PatchMake(previous, current))
	}
	t.add(record)
}
