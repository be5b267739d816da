package ports

import (
	"context"

	"tcr/internal/domain"
)

// RunRecorder keeps the pipeline runs of the current process
type RunRecorder interface {
	Close() error
	List(ctx context.Context, limit int) ([]domain.RunReport, error)
	Record(ctx context.Context, report *domain.RunReport) error
	Summary(ctx context.Context) (*domain.RunSummary, error)
}
