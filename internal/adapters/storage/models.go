package storage

import "time"

// RunModel is the GORM model for runs table
type RunModel struct {
	CreatedAt     time.Time
	Error         string       `gorm:"not null;default:''"`
	FailedStage   string       `gorm:"not null;default:''"`
	FinishedAt    time.Time    `gorm:"not null"`
	ID            string       `gorm:"primaryKey"`
	Outcome       string       `gorm:"not null;index:idx_outcome;check:outcome IN ('committed','reverted','revert_failed','commit_failed','interrupted','skipped')"`
	Qualification string       `gorm:"not null;index:idx_qualification;check:qualification IN ('accepted','debounced','ignored')"`
	Stages        []StageModel `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
	StartedAt     time.Time    `gorm:"not null;index:idx_started_at"`
	Trigger       string       `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (RunModel) TableName() string { return "runs" }

// StageModel is the GORM model for stage results
type StageModel struct {
	DurationMS int64  `gorm:"not null;default:0"`
	ExitCode   int    `gorm:"not null;default:0"`
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Position   int    `gorm:"not null"`
	RunID      string `gorm:"not null;index:idx_run_id"`
	Stage      string `gorm:"not null;check:stage IN ('build','test','commit','revert')"`
	Stderr     []byte
	Stdout     []byte
	Success    bool `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (StageModel) TableName() string { return "stages" }
