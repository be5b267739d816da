package domain

import "time"

// Stage identifies one command invocation within the pipeline
type Stage string

const (
	StageBuild  Stage = "build"
	StageCommit Stage = "commit"
	StageRevert Stage = "revert"
	StageTest   Stage = "test"
)

// Stage symbols (Unicode)
const (
	SymbolFailed  = "✗"
	SymbolPassed  = "✓"
	SymbolSkipped = "·"
)

// StageResult is the outcome of one completed process run.
// A process that could not be run at all has no StageResult; the runner returns an error instead.
type StageResult struct {
	Duration time.Duration
	ExitCode int
	Stage    Stage
	Stderr   []byte
	Stdout   []byte
	Success  bool
}
