package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"esaj-lookup/internal/caseid"
	"esaj-lookup/internal/export"
	"esaj-lookup/internal/record"
	"esaj-lookup/internal/task"
)

type submitRequest struct {
	Processos    string `json:"processos"`
	FileContents string `json:"file_contents"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := s.readJSON(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{
			"erro": "Corpo da requisição precisa ser um JSON.",
		})
		return
	}

	numbers := caseid.Recognize(req.Processos, req.FileContents)
	if len(numbers) == 0 {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{
			"erro": "Nenhum número de processo válido encontrado.",
		})
		return
	}

	id, err := s.tasks.Submit(numbers, identity(r))
	if err != nil {
		s.log.Error("submit failed", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"erro": "Falha ao registrar a tarefa.",
		})
		return
	}

	s.writeJSON(w, http.StatusAccepted, map[string]string{"task_id": id})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	t, err := s.tasks.Status(chi.URLParam(r, "taskID"), identity(r))
	if err != nil {
		s.writeNotFound(w)
		return
	}

	if !t.Completed() {
		s.writeJSON(w, http.StatusOK, map[string]any{
			"status":   t.Status,
			"progress": t.Progress,
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":        t.Status,
		"progress":      t.Progress,
		"resultados":    export.ResultRows(t.Outcome),
		"erros":         export.ErrorRows(t.Outcome),
		"inconclusivos": export.InconclusiveRows(t.Outcome),
	})
}

func (s *Server) handleDownloadExcel(w http.ResponseWriter, r *http.Request) {
	t, ok := s.completedTask(w, r)
	if !ok {
		return
	}

	buf, err := export.Excel(t.Outcome)
	if err != nil {
		s.log.Error("excel export failed", zap.String("task_id", t.ID), zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"erro": "Falha ao gerar a planilha.",
		})
		return
	}

	s.attach(w, export.Filename("xlsx", s.reportTime(t)),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Write(buf.Bytes())
}

func (s *Server) handleDownloadTxt(w http.ResponseWriter, r *http.Request) {
	t, ok := s.completedTask(w, r)
	if !ok {
		return
	}

	at := s.reportTime(t)
	s.attach(w, export.Filename("txt", at), "text/plain; charset=utf-8")
	w.Write(export.Text(t.Outcome, at))
}

// completedTask fetches the caller's finished task, answering the error
// cases itself: unknown/foreign ids are not-found, unfinished tasks are a
// conflict.
func (s *Server) completedTask(w http.ResponseWriter, r *http.Request) (task.Task, bool) {
	t, err := s.tasks.Result(chi.URLParam(r, "taskID"), identity(r))
	switch {
	case errors.Is(err, record.ErrNotReady):
		s.writeJSON(w, http.StatusConflict, map[string]string{
			"erro": "Tarefa ainda não concluída.",
		})
		return task.Task{}, false
	case err != nil:
		s.writeNotFound(w)
		return task.Task{}, false
	}
	return t, true
}

func (s *Server) writeNotFound(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusNotFound, map[string]string{"status": "nao_encontrado"})
}

func (s *Server) attach(w http.ResponseWriter, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
}

func (s *Server) reportTime(t task.Task) time.Time {
	if t.CompletedAt.IsZero() {
		return time.Now().In(s.tz)
	}
	return t.CompletedAt.In(s.tz)
}
