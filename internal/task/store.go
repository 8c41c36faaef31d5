package task

import (
	"sync"
	"time"

	"esaj-lookup/internal/record"
)

// Store is the in-memory task registry: task id to task, guarded for the one
// point of contention in the system (worker writes vs. status/export reads).
// It is injected where needed; there is no package-level instance.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]*Task
}

func NewStore() *Store {
	return &Store{tasks: make(map[string]*Task)}
}

// Put registers a new task.
func (s *Store) Put(t *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = t
}

// Snapshot returns a copy of the task for the given owner. Unknown ids and
// foreign owners are indistinguishable: both answer ErrNotFound, so probing
// for other users' task ids reveals nothing.
func (s *Store) Snapshot(id, ownerID string) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return Task{}, record.ErrNotFound
	}
	return *t, nil
}

// MarkProcessing flips the task out of its initial state.
func (s *Store) MarkProcessing(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		t.Status = StatusProcessing
	}
}

// SetProgress records how far the worker got.
func (s *Store) SetProgress(id string, current int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		t.Progress.Current = current
	}
}

// Complete stores the outcome and moves the task to its terminal state in a
// single step, so readers never observe a completed task without results.
func (s *Store) Complete(id string, outcome record.Batch, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		t.Outcome = outcome
		t.Status = StatusCompleted
		t.CompletedAt = at
	}
}

// Count reports how many tasks the registry holds.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
