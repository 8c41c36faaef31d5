// Package task owns the asynchronous batch units: the task model, the
// in-memory registry and the manager that runs one worker per submission.
package task

import (
	"time"

	"esaj-lookup/internal/record"
)

// Status values travel on the wire to the existing front-end; keep the
// Portuguese strings.
type Status string

const (
	StatusInitiating Status = "iniciando"
	StatusProcessing Status = "processando"
	StatusCompleted  Status = "concluido"
)

// Progress counts processed case numbers. Total is fixed at submission,
// Current only ever grows.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Task is one submitted batch. It is mutated only by its own worker until it
// reaches StatusCompleted; afterwards it is read-only.
type Task struct {
	ID          string
	OwnerID     string
	Status      Status
	Progress    Progress
	Outcome     record.Batch
	CompletedAt time.Time
}

func (t *Task) Completed() bool {
	return t.Status == StatusCompleted
}
