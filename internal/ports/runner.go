package ports

import (
	"context"

	"tcr/internal/domain"
)

// Runner executes one pipeline stage.
// A process that ran to completion returns a StageResult (Success reflects the exit status).
// A process that could not be run returns an error.
type Runner interface {
	Run(ctx context.Context) (*domain.StageResult, error)
}
