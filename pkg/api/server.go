// Package api exposes the schedule board over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/core/engine"
	"github.com/nextshift/shiftboard/pkg/db"
)

// Handler holds the dependencies shared by all HTTP handlers. Notifier may
// be nil, in which case approvals and rejections send no mail.
type Handler struct {
	Store     db.Store
	Logger    *zap.Logger
	Notifier  engine.Notifier
	ExportDir string
}

// NewHandler creates a handler over the given store
func NewHandler(store db.Store, logger *zap.Logger, notifier engine.Notifier, exportDir string) *Handler {
	return &Handler{
		Store:     store,
		Logger:    logger,
		Notifier:  notifier,
		ExportDir: exportDir,
	}
}

// NewRouter creates the router with all routes configured. allowedOrigins
// controls CORS; empty means local development defaults.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/assignments", func(r chi.Router) {
			r.Post("/", h.CreateAssignment)
			r.Put("/{id}", h.UpdateAssignment)
			r.Delete("/{id}", h.DeleteAssignment)
			r.Post("/{id}/times", h.RecordActualTimes)
			r.Post("/{id}/approve", h.ApproveRequest)
			r.Post("/{id}/reject", h.RejectRequest)
		})

		r.Get("/requests/pending", h.ListPendingRequests)

		r.Route("/board", func(r chi.Router) {
			r.Get("/", h.GetBoard)
			r.Get("/export", h.ExportBoard)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Put("/{id}", h.UpdateEmployee)
			r.Delete("/{id}", h.DeleteEmployee)
			r.Get("/{id}/schedule", h.GetEmployeeSchedule)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.ListShiftTemplates)
			r.Get("/active", h.ListActiveShiftTemplates)
			r.Post("/", h.CreateShiftTemplate)
			r.Put("/{id}", h.UpdateShiftTemplate)
			r.Post("/{id}/toggle", h.ToggleShiftTemplate)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps storage sentinels to HTTP statuses and renders the error
// body. A zero status picks the status from the error itself.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string, err error) {
	if status == 0 {
		switch {
		case errors.Is(err, db.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, db.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, db.ErrConflict):
			status = http.StatusConflict
		default:
			status = http.StatusInternalServerError
		}
	}

	if status >= http.StatusInternalServerError {
		h.Logger.Error("Request failed", zap.String("message", message), zap.Error(err))
	}

	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
