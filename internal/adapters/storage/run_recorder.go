package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tcr/internal/domain"
	"tcr/internal/logging"
	"tcr/internal/ports"
)

// SQLiteRunRecorder implements ports.RunRecorder with an in-memory SQLite database.
// Runs live only as long as the process; nothing is written to disk.
type SQLiteRunRecorder struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RunRecorder = (*SQLiteRunRecorder)(nil)

// gormLogger wraps the tcr logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("TCR_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewInMemoryRunRecorder creates a recorder backed by a private in-memory database
func NewInMemoryRunRecorder() (*SQLiteRunRecorder, error) {
	// Each recorder gets its own named in-memory database
	dsn := fmt.Sprintf("file:tcr-%s?mode=memory&cache=shared", uuid.New().String())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	// The in-memory database disappears with its last connection
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&RunModel{}, &StageModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate run schema: %w", err)
	}

	return &SQLiteRunRecorder{db: db}, nil
}

// Record stores a run and its stage results
func (r *SQLiteRunRecorder) Record(ctx context.Context, report *domain.RunReport) error {
	model := domainToRunModel(report)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", report.ID, err)
	}
	return nil
}

// List returns the most recent runs first; limit <= 0 returns all runs
func (r *SQLiteRunRecorder) List(ctx context.Context, limit int) ([]domain.RunReport, error) {
	var models []RunModel
	query := r.db.WithContext(ctx).
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("started_at DESC").
		Order("rowid DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	reports := make([]domain.RunReport, 0, len(models))
	for _, m := range models {
		reports = append(reports, runModelToDomain(m))
	}
	return reports, nil
}

// Summary counts runs by outcome and qualification
func (r *SQLiteRunRecorder) Summary(ctx context.Context) (*domain.RunSummary, error) {
	var rows []struct {
		Count         int
		Outcome       string
		Qualification string
	}
	err := r.db.WithContext(ctx).
		Model(&RunModel{}).
		Select("outcome, qualification, COUNT(*) AS count").
		Group("outcome, qualification").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize runs: %w", err)
	}

	summary := &domain.RunSummary{}
	for _, row := range rows {
		summary.Total += row.Count
		switch domain.Qualification(row.Qualification) {
		case domain.QualificationDebounced:
			summary.Debounced += row.Count
			continue
		case domain.QualificationIgnored:
			summary.Ignored += row.Count
			continue
		}

		switch domain.Outcome(row.Outcome) {
		case domain.OutcomeCommitFailed:
			summary.CommitFailed += row.Count
		case domain.OutcomeCommitted:
			summary.Committed += row.Count
		case domain.OutcomeInterrupted:
			summary.Interrupted += row.Count
		case domain.OutcomeRevertFailed:
			summary.RevertFailed += row.Count
		case domain.OutcomeReverted:
			summary.Reverted += row.Count
		}
	}

	return summary, nil
}

// Close closes the database, discarding all runs
func (r *SQLiteRunRecorder) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
