package storage

import (
	"strings"
	"time"

	"tcr/internal/domain"
)

// maxStoredOutput caps the bytes of stdout/stderr kept per stage; the tail is kept
const maxStoredOutput = 64 * 1024

const triggerSeparator = "\n"

// runModelToDomain converts a RunModel (GORM) to domain.RunReport
func runModelToDomain(m RunModel) domain.RunReport {
	stages := make([]domain.StageResult, 0, len(m.Stages))
	for _, s := range m.Stages {
		stages = append(stages, stageModelToDomain(s))
	}

	var trigger []string
	if m.Trigger != "" {
		trigger = strings.Split(m.Trigger, triggerSeparator)
	}

	return domain.RunReport{
		Error:         m.Error,
		FailedStage:   domain.Stage(m.FailedStage),
		FinishedAt:    m.FinishedAt,
		ID:            m.ID,
		Outcome:       domain.Outcome(m.Outcome),
		Qualification: domain.Qualification(m.Qualification),
		Stages:        stages,
		StartedAt:     m.StartedAt,
		Trigger:       trigger,
	}
}

// domainToRunModel converts a domain.RunReport to RunModel (GORM)
func domainToRunModel(r *domain.RunReport) RunModel {
	stages := make([]StageModel, 0, len(r.Stages))
	for i, s := range r.Stages {
		stages = append(stages, domainToStageModel(r.ID, i, s))
	}

	return RunModel{
		Error:         r.Error,
		FailedStage:   string(r.FailedStage),
		FinishedAt:    r.FinishedAt,
		ID:            r.ID,
		Outcome:       string(r.Outcome),
		Qualification: string(r.Qualification),
		Stages:        stages,
		StartedAt:     r.StartedAt,
		Trigger:       strings.Join(r.Trigger, triggerSeparator),
	}
}

func stageModelToDomain(m StageModel) domain.StageResult {
	return domain.StageResult{
		Duration: time.Duration(m.DurationMS) * time.Millisecond,
		ExitCode: m.ExitCode,
		Stage:    domain.Stage(m.Stage),
		Stderr:   m.Stderr,
		Stdout:   m.Stdout,
		Success:  m.Success,
	}
}

func domainToStageModel(runID string, position int, s domain.StageResult) StageModel {
	return StageModel{
		DurationMS: s.Duration.Milliseconds(),
		ExitCode:   s.ExitCode,
		Position:   position,
		RunID:      runID,
		Stage:      string(s.Stage),
		Stderr:     tail(s.Stderr),
		Stdout:     tail(s.Stdout),
		Success:    s.Success,
	}
}

func tail(b []byte) []byte {
	if len(b) <= maxStoredOutput {
		return b
	}
	return b[len(b)-maxStoredOutput:]
}
