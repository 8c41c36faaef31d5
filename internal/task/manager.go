package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"esaj-lookup/internal/record"
)

// BatchRunner processes a batch of case numbers to completion. The real
// implementation is classify.Runner; tests substitute fakes.
type BatchRunner interface {
	Run(ctx context.Context, numbers []string, progress func(current, total int)) record.Batch
}

// Manager creates tasks and runs one dedicated worker per task. Workers run
// independently of each other; the shared store is the only thing they touch
// concurrently.
type Manager struct {
	store  *Store
	runner BatchRunner
	tz     *time.Location
	log    *zap.Logger
}

func NewManager(store *Store, runner BatchRunner, tz *time.Location, log *zap.Logger) *Manager {
	if tz == nil {
		tz = time.UTC
	}
	return &Manager{store: store, runner: runner, tz: tz, log: log}
}

// Submit registers a batch and starts its worker, returning the task id
// immediately. Once started, a task always runs to completion; there is no
// cancellation.
func (m *Manager) Submit(numbers []string, ownerID string) (string, error) {
	if len(numbers) == 0 {
		return "", record.ErrNoCaseNumbers
	}

	t := &Task{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		Status:   StatusInitiating,
		Progress: Progress{Total: len(numbers)},
	}
	m.store.Put(t)

	m.log.Info("task submitted",
		zap.String("task_id", t.ID),
		zap.Int("cases", len(numbers)),
	)

	go m.work(t.ID, numbers)
	return t.ID, nil
}

func (m *Manager) work(id string, numbers []string) {
	m.store.MarkProcessing(id)

	outcome := m.runner.Run(context.Background(), numbers, func(current, total int) {
		m.store.SetProgress(id, current)
	})

	m.store.Complete(id, outcome, time.Now().In(m.tz))
	m.log.Info("task completed",
		zap.String("task_id", id),
		zap.Int("results", len(outcome.Results)),
		zap.Int("errors", len(outcome.Errors)),
		zap.Int("inconclusive", len(outcome.Inconclusive)),
	)
}

// Status returns a point-in-time copy of the task for its owner.
func (m *Manager) Status(id, ownerID string) (Task, error) {
	return m.store.Snapshot(id, ownerID)
}

// Result returns the completed task, or ErrNotReady while the worker is
// still on it.
func (m *Manager) Result(id, ownerID string) (Task, error) {
	t, err := m.store.Snapshot(id, ownerID)
	if err != nil {
		return Task{}, err
	}
	if !t.Completed() {
		return Task{}, record.ErrNotReady
	}
	return t, nil
}
