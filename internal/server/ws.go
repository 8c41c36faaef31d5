package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"esaj-lookup/internal/task"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser front-end lives on another origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const progressInterval = 500 * time.Millisecond

type progressFrame struct {
	Status   task.Status   `json:"status"`
	Progress task.Progress `json:"progress"`
}

// handleProgress streams progress snapshots over a websocket until the task
// completes, sparing the front-end the status polling loop.
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	id, owner := chi.URLParam(r, "taskID"), identity(r)

	if _, err := s.tasks.Status(id, owner); err != nil {
		s.writeNotFound(w)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		t, err := s.tasks.Status(id, owner)
		if err != nil {
			return
		}
		if err := conn.WriteJSON(progressFrame{Status: t.Status, Progress: t.Progress}); err != nil {
			return
		}
		if t.Completed() {
			return
		}
		<-ticker.C
	}
}
