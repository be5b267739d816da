package domain

import "time"

// Qualification is the decision taken on an event before any stage runs
type Qualification string

const (
	QualificationAccepted  Qualification = "accepted"
	QualificationDebounced Qualification = "debounced"
	QualificationIgnored   Qualification = "ignored"
)

// Outcome is the final state of one pipeline run
type Outcome string

const (
	OutcomeCommitFailed Outcome = "commit_failed"
	OutcomeCommitted    Outcome = "committed"
	OutcomeInterrupted  Outcome = "interrupted"
	OutcomeRevertFailed Outcome = "revert_failed"
	OutcomeReverted     Outcome = "reverted"
	OutcomeSkipped      Outcome = "skipped"
)

// RunReport describes everything that happened for one event
type RunReport struct {
	Error         string
	FailedStage   Stage
	FinishedAt    time.Time
	ID            string
	Outcome       Outcome
	Qualification Qualification
	Stages        []StageResult
	StartedAt     time.Time
	Trigger       []string
}

// Escalated reports whether the run ended with an error surfaced to the caller
func (r *RunReport) Escalated() bool {
	return r.Outcome == OutcomeCommitFailed || r.Outcome == OutcomeRevertFailed
}

// RunSummary aggregates run reports by outcome
type RunSummary struct {
	CommitFailed int
	Committed    int
	Debounced    int
	Ignored      int
	Interrupted  int
	RevertFailed int
	Reverted     int
	Total        int
}
