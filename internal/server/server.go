// Package server exposes the batch lookup pipeline over HTTP, keeping the
// wire contract of the existing front-end: Portuguese status strings, the
// /api/processar + /api/status polling flow and the two report downloads.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"go.uber.org/zap"

	"esaj-lookup/internal/task"
)

// taskService is the slice of the task manager the handlers need.
type taskService interface {
	Submit(numbers []string, ownerID string) (string, error)
	Status(id, ownerID string) (task.Task, error)
	Result(id, ownerID string) (task.Task, error)
}

type Config struct {
	JWTSecret string
	// Timezone for report timestamps and download filenames.
	Timezone *time.Location
}

type Server struct {
	tasks     taskService
	jwtSecret string
	tz        *time.Location
	log       *zap.Logger
}

func New(cfg Config, tasks taskService, log *zap.Logger) *Server {
	tz := cfg.Timezone
	if tz == nil {
		tz = time.UTC
	}
	return &Server{tasks: tasks, jwtSecret: cfg.JWTSecret, tz: tz, log: log}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(httplog.RequestLogger(httplog.NewLogger("esaj-lookup", httplog.Options{
		JSON:    true,
		Concise: true,
	})))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.auth)
		r.Post("/processar", s.handleSubmit)
		r.Get("/status/{taskID}", s.handleStatus)
		r.Get("/progress/{taskID}", s.handleProgress)
		r.Get("/download_excel/{taskID}", s.handleDownloadExcel)
		r.Get("/download_txt/{taskID}", s.handleDownloadTxt)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
