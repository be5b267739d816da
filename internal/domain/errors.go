package domain

import "errors"

var (
	ErrCommitFailed = errors.New("commit failed")
	ErrEmptyCommand = errors.New("expected command to not be empty")
	ErrEmptyEvent   = errors.New("change event has no paths")
	ErrRevertFailed = errors.New("revert failed")
	ErrStageTimeout = errors.New("stage timed out")
)
