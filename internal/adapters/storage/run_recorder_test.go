package storage

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcr/internal/domain"
)

func newTestRecorder(t *testing.T) *SQLiteRunRecorder {
	t.Helper()
	r, err := NewInMemoryRunRecorder()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func report(id string, started time.Time, q domain.Qualification, o domain.Outcome, stages ...domain.StageResult) *domain.RunReport {
	return &domain.RunReport{
		FinishedAt:    started.Add(time.Second),
		ID:            id,
		Outcome:       o,
		Qualification: q,
		Stages:        stages,
		StartedAt:     started,
		Trigger:       []string{"/repo/" + id + ".go"},
	}
}

func TestSQLiteRunRecorder_RecordAndList(t *testing.T) {
	r := newTestRecorder(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, r.Record(ctx, report("first", base, domain.QualificationAccepted, domain.OutcomeCommitted,
		domain.StageResult{Stage: domain.StageBuild, Success: true, Stdout: []byte("built"), Duration: 1500 * time.Millisecond},
		domain.StageResult{Stage: domain.StageTest, Success: true},
		domain.StageResult{Stage: domain.StageCommit, Success: true},
	)))
	require.NoError(t, r.Record(ctx, report("second", base.Add(time.Minute), domain.QualificationAccepted, domain.OutcomeReverted,
		domain.StageResult{Stage: domain.StageBuild, ExitCode: 2, Stderr: []byte("syntax error")},
		domain.StageResult{Stage: domain.StageRevert, Success: true},
	)))
	require.NoError(t, r.Record(ctx, report("third", base.Add(2*time.Minute), domain.QualificationDebounced, domain.OutcomeSkipped)))

	runs, err := r.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "third", runs[0].ID)
	assert.Empty(t, runs[0].Stages)

	second := runs[1]
	assert.Equal(t, "second", second.ID)
	assert.Equal(t, domain.OutcomeReverted, second.Outcome)
	assert.Equal(t, []string{"/repo/second.go"}, second.Trigger)
	require.Len(t, second.Stages, 2)
	assert.Equal(t, domain.StageBuild, second.Stages[0].Stage)
	assert.Equal(t, 2, second.Stages[0].ExitCode)
	assert.Equal(t, "syntax error", string(second.Stages[0].Stderr))
	assert.Equal(t, domain.StageRevert, second.Stages[1].Stage)

	all, err := r.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	first := all[2]
	require.Len(t, first.Stages, 3)
	assert.Equal(t, 1500*time.Millisecond, first.Stages[0].Duration)
	assert.Equal(t, []domain.Stage{domain.StageBuild, domain.StageTest, domain.StageCommit},
		[]domain.Stage{first.Stages[0].Stage, first.Stages[1].Stage, first.Stages[2].Stage})
}

func TestSQLiteRunRecorder_Summary(t *testing.T) {
	r := newTestRecorder(t)
	ctx := context.Background()
	now := time.Now()

	records := []*domain.RunReport{
		report("a", now, domain.QualificationAccepted, domain.OutcomeCommitted),
		report("b", now, domain.QualificationAccepted, domain.OutcomeCommitted),
		report("c", now, domain.QualificationAccepted, domain.OutcomeReverted),
		report("d", now, domain.QualificationAccepted, domain.OutcomeCommitFailed),
		report("e", now, domain.QualificationAccepted, domain.OutcomeRevertFailed),
		report("f", now, domain.QualificationDebounced, domain.OutcomeSkipped),
		report("g", now, domain.QualificationIgnored, domain.OutcomeSkipped),
		report("h", now, domain.QualificationIgnored, domain.OutcomeSkipped),
	}
	for _, rec := range records {
		require.NoError(t, r.Record(ctx, rec))
	}

	summary, err := r.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.RunSummary{
		CommitFailed: 1,
		Committed:    2,
		Debounced:    1,
		Ignored:      2,
		RevertFailed: 1,
		Reverted:     1,
		Total:        8,
	}, *summary)
}

func TestSQLiteRunRecorder_DuplicateIDFails(t *testing.T) {
	r := newTestRecorder(t)
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, report("dup", time.Now(), domain.QualificationAccepted, domain.OutcomeCommitted)))
	assert.Error(t, r.Record(ctx, report("dup", time.Now(), domain.QualificationAccepted, domain.OutcomeCommitted)))
}

func TestSQLiteRunRecorder_Isolated(t *testing.T) {
	ctx := context.Background()
	a := newTestRecorder(t)
	b := newTestRecorder(t)

	require.NoError(t, a.Record(ctx, report("only-in-a", time.Now(), domain.QualificationAccepted, domain.OutcomeCommitted)))

	runs, err := b.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestTail_KeepsEndOfOutput(t *testing.T) {
	big := append(bytes.Repeat([]byte("a"), maxStoredOutput), []byte("END")...)

	kept := tail(big)

	assert.Len(t, kept, maxStoredOutput)
	assert.True(t, bytes.HasSuffix(kept, []byte("END")))
	assert.Equal(t, []byte("short"), tail([]byte("short")))
}
