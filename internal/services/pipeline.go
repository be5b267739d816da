package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tcr/internal/domain"
	"tcr/internal/logging"
	"tcr/internal/ports"
)

// Runners holds one runner per pipeline stage
type Runners struct {
	Build  ports.Runner
	Commit ports.Runner
	Revert ports.Runner
	Test   ports.Runner
}

func (r Runners) forStage(stage domain.Stage) ports.Runner {
	switch stage {
	case domain.StageBuild:
		return r.Build
	case domain.StageCommit:
		return r.Commit
	case domain.StageRevert:
		return r.Revert
	case domain.StageTest:
		return r.Test
	}
	return nil
}

// Pipeline qualifies change events and drives build -> test -> commit, reverting on failure.
// Stages run synchronously; callers must not invoke it concurrently.
type Pipeline struct {
	debouncer *Debouncer
	filter    *IgnoreFilter
	recorder  ports.RunRecorder
	reporter  ports.StageReporter
	runners   Runners
}

// NewPipeline creates a new Pipeline. recorder may be nil.
func NewPipeline(
	filter *IgnoreFilter,
	debouncer *Debouncer,
	runners Runners,
	reporter ports.StageReporter,
	recorder ports.RunRecorder,
) *Pipeline {
	return &Pipeline{
		debouncer: debouncer,
		filter:    filter,
		recorder:  recorder,
		reporter:  reporter,
		runners:   runners,
	}
}

// HandleEvent processes one change event.
// Build and test failures are handled by reverting and are not errors.
// An error is returned only when the revert could not run or the commit failed.
func (p *Pipeline) HandleEvent(ctx context.Context, event domain.ChangeEvent) error {
	if p.filter.ShouldIgnore(event) {
		logging.Logger.Debug("Event ignored", "paths", event.Paths, "is_dir", event.IsDirectory)
		p.skip(ctx, event, domain.QualificationIgnored)
		return nil
	}

	if p.debouncer.ShouldDebounce() {
		logging.Logger.Debug("Event debounced", "paths", event.Paths, "window", p.debouncer.Window())
		p.skip(ctx, event, domain.QualificationDebounced)
		return nil
	}

	p.reporter.ReportQualified(event, domain.QualificationAccepted)
	_, err := p.Run(ctx, event.Paths)
	return err
}

// Run executes the stages unconditionally for the given trigger paths
func (p *Pipeline) Run(ctx context.Context, trigger []string) (*domain.RunReport, error) {
	report := &domain.RunReport{
		ID:            uuid.New().String(),
		Qualification: domain.QualificationAccepted,
		StartedAt:     time.Now(),
		Trigger:       trigger,
	}
	logging.Logger.Info("Pipeline started", "run_id", report.ID, "trigger", trigger)

	err := p.execute(ctx, report)

	report.FinishedAt = time.Now()
	if err != nil {
		report.Error = err.Error()
		logging.Logger.Error("Pipeline escalated failure",
			"run_id", report.ID,
			"outcome", report.Outcome,
			"error", err)
	} else {
		logging.Logger.Info("Pipeline finished",
			"run_id", report.ID,
			"outcome", report.Outcome,
			"duration", report.FinishedAt.Sub(report.StartedAt))
	}

	p.reporter.ReportRun(report)
	p.record(ctx, report)

	return report, err
}

func (p *Pipeline) execute(ctx context.Context, report *domain.RunReport) error {
	for _, stage := range []domain.Stage{domain.StageBuild, domain.StageTest} {
		result, err := p.runStage(ctx, report, stage)
		if err == nil && result.Success {
			continue
		}

		report.FailedStage = stage
		if ctx.Err() != nil {
			// Shutting down; leave the tree alone
			report.Outcome = domain.OutcomeInterrupted
			return ctx.Err()
		}
		return p.revert(ctx, report)
	}

	result, err := p.runStage(ctx, report, domain.StageCommit)
	if err != nil {
		report.FailedStage = domain.StageCommit
		report.Outcome = domain.OutcomeCommitFailed
		return fmt.Errorf("%w: %w", domain.ErrCommitFailed, err)
	}
	if !result.Success {
		report.FailedStage = domain.StageCommit
		report.Outcome = domain.OutcomeCommitFailed
		return fmt.Errorf("%w: exit status %d", domain.ErrCommitFailed, result.ExitCode)
	}

	report.Outcome = domain.OutcomeCommitted
	return nil
}

// revert restores the last good state; only a revert that could not run is escalated
func (p *Pipeline) revert(ctx context.Context, report *domain.RunReport) error {
	result, err := p.runStage(ctx, report, domain.StageRevert)
	if err != nil {
		report.Outcome = domain.OutcomeRevertFailed
		return fmt.Errorf("%w: %w", domain.ErrRevertFailed, err)
	}

	if !result.Success {
		logging.Logger.Error("Revert exited with non-zero status",
			"run_id", report.ID,
			"exit_code", result.ExitCode)
		report.Error = fmt.Sprintf("revert exited with status %d", result.ExitCode)
	}

	report.Outcome = domain.OutcomeReverted
	return nil
}

// runStage returns the result of a process that ran, or an error if it could not run
func (p *Pipeline) runStage(ctx context.Context, report *domain.RunReport, stage domain.Stage) (*domain.StageResult, error) {
	runner := p.runners.forStage(stage)
	if runner == nil {
		return nil, fmt.Errorf("no runner configured for %s stage", stage)
	}

	logging.Logger.Debug("Running stage", "run_id", report.ID, "stage", stage)

	result, err := runner.Run(ctx)
	if err != nil {
		logging.Logger.Warn("Stage could not run", "run_id", report.ID, "stage", stage, "error", err)
		p.reporter.ReportStageError(stage, err)
		return nil, fmt.Errorf("%s stage: %w", stage, err)
	}

	result.Stage = stage
	report.Stages = append(report.Stages, *result)
	p.reporter.ReportStage(result)

	logging.Logger.Debug("Stage finished",
		"run_id", report.ID,
		"stage", stage,
		"success", result.Success,
		"exit_code", result.ExitCode,
		"duration", result.Duration)

	return result, nil
}

func (p *Pipeline) skip(ctx context.Context, event domain.ChangeEvent, qualification domain.Qualification) {
	p.reporter.ReportQualified(event, qualification)

	now := time.Now()
	p.record(ctx, &domain.RunReport{
		FinishedAt:    now,
		ID:            uuid.New().String(),
		Outcome:       domain.OutcomeSkipped,
		Qualification: qualification,
		StartedAt:     now,
		Trigger:       event.Paths,
	})
}

func (p *Pipeline) record(ctx context.Context, report *domain.RunReport) {
	if p.recorder == nil {
		return
	}
	// Record even when ctx is cancelled so the shutdown summary is complete
	if err := p.recorder.Record(context.WithoutCancel(ctx), report); err != nil {
		logging.Logger.Warn("Failed to record run", "run_id", report.ID, "error", err)
	}
}
