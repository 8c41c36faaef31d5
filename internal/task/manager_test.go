package task

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"esaj-lookup/internal/record"
)

type stubRunner struct {
	outcome record.Batch
	release chan struct{} // when non-nil, Run blocks until closed
	mu      sync.Mutex
	got     []string
}

func (r *stubRunner) Run(ctx context.Context, numbers []string, progress func(current, total int)) record.Batch {
	r.mu.Lock()
	r.got = append([]string(nil), numbers...)
	r.mu.Unlock()

	for i := range numbers {
		if progress != nil {
			progress(i+1, len(numbers))
		}
	}
	if r.release != nil {
		<-r.release
	}
	return r.outcome
}

func waitCompleted(t *testing.T, m *Manager, id, owner string) Task {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got, err := m.Status(id, owner)
		require.NoError(t, err)
		if got.Completed() {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("task never completed")
	return Task{}
}

func TestManager_SubmitRunsToCompletion(t *testing.T) {
	runner := &stubRunner{outcome: record.Batch{
		Results: []record.CaseRecord{{Number: "1234567-89.2020.8.26.0100"}},
		Errors:  []record.ErrorEntry{{Number: "7654321-01.2019.8.26.0053", Reason: "x"}},
	}}
	m := NewManager(NewStore(), runner, time.UTC, zap.NewNop())

	id, err := m.Submit([]string{"1234567-89.2020.8.26.0100", "7654321-01.2019.8.26.0053"}, "owner-1")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got := waitCompleted(t, m, id, "owner-1")
	assert.Equal(t, 2, got.Progress.Total)
	assert.Equal(t, 2, got.Progress.Current)
	assert.Len(t, got.Outcome.Results, 1)
	assert.Len(t, got.Outcome.Errors, 1)
	assert.False(t, got.CompletedAt.IsZero())
	assert.Equal(t, []string{"1234567-89.2020.8.26.0100", "7654321-01.2019.8.26.0053"}, runner.got)
}

func TestManager_SubmitRejectsEmptyBatch(t *testing.T) {
	m := NewManager(NewStore(), &stubRunner{}, time.UTC, zap.NewNop())

	_, err := m.Submit(nil, "owner-1")
	assert.ErrorIs(t, err, record.ErrNoCaseNumbers)
}

func TestManager_StatusHidesForeignTasks(t *testing.T) {
	m := NewManager(NewStore(), &stubRunner{}, time.UTC, zap.NewNop())

	id, err := m.Submit([]string{"1234567-89.2020.8.26.0100"}, "owner-1")
	require.NoError(t, err)

	_, err = m.Status(id, "owner-2")
	assert.ErrorIs(t, err, record.ErrNotFound, "foreign owner must look like a missing task")

	_, err = m.Status("no-such-task", "owner-1")
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestManager_ResultNotReadyWhileRunning(t *testing.T) {
	release := make(chan struct{})
	runner := &stubRunner{release: release}
	m := NewManager(NewStore(), runner, time.UTC, zap.NewNop())

	id, err := m.Submit([]string{"1234567-89.2020.8.26.0100"}, "owner-1")
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for {
		_, err = m.Result(id, "owner-1")
		if err != nil {
			break
		}
		require.True(t, time.Now().Before(deadline))
	}
	assert.ErrorIs(t, err, record.ErrNotReady)

	close(release)
	waitCompleted(t, m, id, "owner-1")
	_, err = m.Result(id, "owner-1")
	assert.NoError(t, err)
}

func TestManager_ProgressNeverDecreases(t *testing.T) {
	runner := &stubRunner{}
	m := NewManager(NewStore(), runner, time.UTC, zap.NewNop())

	numbers := []string{
		"1111111-11.2011.8.26.0001",
		"2222222-22.2012.8.26.0002",
		"3333333-33.2013.8.26.0003",
	}
	id, err := m.Submit(numbers, "owner-1")
	require.NoError(t, err)

	last := 0
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got, err := m.Status(id, "owner-1")
		require.NoError(t, err)
		require.GreaterOrEqual(t, got.Progress.Current, last)
		require.LessOrEqual(t, got.Progress.Current, got.Progress.Total)
		last = got.Progress.Current
		if got.Completed() {
			assert.Equal(t, got.Progress.Total, got.Progress.Current)
			return
		}
	}
	t.Fatal("task never completed")
}

func TestManager_ConcurrentTasksAreIsolated(t *testing.T) {
	runner := &stubRunner{outcome: record.Batch{
		Results: []record.CaseRecord{{Number: "1234567-89.2020.8.26.0100"}},
	}}
	m := NewManager(NewStore(), runner, time.UTC, zap.NewNop())

	idA, err := m.Submit([]string{"1234567-89.2020.8.26.0100"}, "owner-a")
	require.NoError(t, err)
	idB, err := m.Submit([]string{"1234567-89.2020.8.26.0100"}, "owner-b")
	require.NoError(t, err)
	require.NotEqual(t, idA, idB)

	a := waitCompleted(t, m, idA, "owner-a")
	b := waitCompleted(t, m, idB, "owner-b")
	assert.Len(t, a.Outcome.Results, 1)
	assert.Len(t, b.Outcome.Results, 1)

	_, err = m.Status(idA, "owner-b")
	assert.ErrorIs(t, err, record.ErrNotFound)
}
