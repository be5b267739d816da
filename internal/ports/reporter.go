package ports

import "tcr/internal/domain"

// StageReporter surfaces pipeline progress to the operator
type StageReporter interface {
	// ReportQualified is called once per event with the qualification decision
	ReportQualified(event domain.ChangeEvent, qualification domain.Qualification)
	// ReportStage is called after every stage process completes, successful or not
	ReportStage(result *domain.StageResult)
	// ReportStageError is called when a stage process could not be run
	ReportStageError(stage domain.Stage, err error)
	// ReportRun is called once per accepted event after the last stage
	ReportRun(report *domain.RunReport)
}
